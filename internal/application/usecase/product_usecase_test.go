package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/horeca-stock/internal/application/dto"
	"github.com/tu-usuario/horeca-stock/internal/application/usecase"
)

func TestProductCreate_CodificaSpecsContraCamposEfectivos(t *testing.T) {
	catRepo := newFakeCategoryRepo(categoriaFritozler())
	prodRepo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(prodRepo, catRepo, nil)

	resp, err := uc.Create(dto.CreateProductRequest{
		CategoryID:  "cat-fritoz",
		ProductType: "tek_hazneli",
		Name:        "Fritöz 8L",
		RawSpecs:    map[string]string{"guc_kw": "3.5"},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"guc_kw": 3.5}, resp.ExtraSpecs)
	assert.Equal(t, "3.5", resp.RawSpecs["guc_kw"], "el response trae también la forma cruda decodificada")
}

func TestProductCreate_SpecsVaciosSeGuardanComoNil(t *testing.T) {
	catRepo := newFakeCategoryRepo(categoriaFritozler())
	prodRepo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(prodRepo, catRepo, nil)

	resp, err := uc.Create(dto.CreateProductRequest{
		CategoryID:  "cat-fritoz",
		ProductType: "tek_hazneli",
		Name:        "Fritöz sin specs",
		RawSpecs:    map[string]string{"guc_kw": ""},
	})
	require.NoError(t, err)
	// NULL, nunca objeto vacío: semántica "sin especificaciones".
	stored, _ := prodRepo.GetByID(resp.ID)
	assert.Nil(t, stored.ExtraSpecs)
}

func TestProductCreate_NumeroInvalidoEsErrorDeValidacion(t *testing.T) {
	catRepo := newFakeCategoryRepo(categoriaFritozler())
	prodRepo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(prodRepo, catRepo, nil)

	_, err := uc.Create(dto.CreateProductRequest{
		CategoryID:  "cat-fritoz",
		ProductType: "tek_hazneli",
		Name:        "Fritöz",
		RawSpecs:    map[string]string{"guc_kw": "tres"},
	})
	var verr *usecase.SpecValidationError
	require.ErrorAs(t, err, &verr, "la validación numérica ocurre antes de Encode")
	assert.Contains(t, verr.Fields, "guc_kw")
	assert.Empty(t, prodRepo.byID, "nada se persiste ante specs inválidos")
}

func TestProductUpdate_DerivaDeEsquemaSobreviveALaLectura(t *testing.T) {
	catRepo := newFakeCategoryRepo(categoriaFritozler())
	prodRepo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(prodRepo, catRepo, nil)

	created, err := uc.Create(dto.CreateProductRequest{
		CategoryID:  "cat-fritoz",
		ProductType: "tek_hazneli",
		Name:        "Fritöz",
		RawSpecs:    map[string]string{"guc_kw": "3.5"},
	})
	require.NoError(t, err)

	// El esquema cambia: se elimina el campo. Los specs guardados quedan
	// huérfanos pero intactos.
	cat, _ := catRepo.GetByID("cat-fritoz")
	cat.DefaultFields = nil
	require.NoError(t, catRepo.Update(cat))

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "3.5", got.RawSpecs["guc_kw"], "sin poda destructiva al cargar")
}

func TestProductCreate_SinCategoriaNoCodificaSpecs(t *testing.T) {
	catRepo := newFakeCategoryRepo()
	prodRepo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(prodRepo, catRepo, nil)

	resp, err := uc.Create(dto.CreateProductRequest{
		Name:     "Mixer sin categoría",
		RawSpecs: map[string]string{"ancho": "40"},
	})
	require.NoError(t, err)
	assert.Nil(t, resp.ExtraSpecs, "sin categoría no hay campos efectivos que codificar")
}
