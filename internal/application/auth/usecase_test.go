package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/horeca-stock/internal/application/auth"
	"github.com/tu-usuario/horeca-stock/internal/application/dto"
	"github.com/tu-usuario/horeca-stock/internal/domain"
	"github.com/tu-usuario/horeca-stock/internal/domain/entity"
)

var testJWT = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "horeca-stock-test"}

// fakeUserRepo repositorio en memoria; findErr fuerza el fallo de FindByEmail.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
	findErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	uu := *u
	r.byEmail[u.Email] = &uu
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			uu := *u
			return &uu, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	uu := *u
	return &uu, nil
}

func TestRegisterUser_LuegoLogin(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	user, err := uc.RegisterUser(dto.RegisterRequest{Email: "dueno@horeca.com", Password: "secreta123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendedor, user.Role, "sin rol explícito se asigna vendedor")

	resp, err := uc.Login(dto.LoginRequest{Email: "dueno@horeca.com", Password: "secreta123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "dueno@horeca.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "dueno@horeca.com", Password: "otra456"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_PropagaErrorDeFindByEmail(t *testing.T) {
	repo := newFakeUserRepo()
	repo.findErr = errors.New("db caída")
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "dueno@horeca.com", Password: "secreta123"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrEmailAlreadyExists, "un fallo de DB no es un duplicado")
	assert.Empty(t, repo.byEmail, "nada se persiste si la verificación de email falló")
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "dueno@horeca.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "dueno@horeca.com", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
