package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/horeca-stock/internal/domain"
	"github.com/tu-usuario/horeca-stock/internal/domain/entity"
	"github.com/tu-usuario/horeca-stock/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo persistencia de Category sobre PostgreSQL. El esquema dinámico
// (product_types y default_fields) se guarda como JSONB: el agregado viaja
// completo y las mutaciones en memoria se persisten con un solo Update.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Acepta pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una categoría nueva.
func (r *CategoryRepo) Create(category *entity.Category) error {
	types, fields, err := marshalSchema(category)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO categories (id, name, description, is_active, product_types, default_fields, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.IsActive,
		types, fields, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID con su esquema completo.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	return r.getBy("id = $1", id)
}

// GetByName obtiene una categoría por nombre (comparación exacta).
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	return r.getBy("name = $1", name)
}

func (r *CategoryRepo) getBy(cond string, arg any) (*entity.Category, error) {
	query := `
		SELECT id, name, description, is_active, product_types, default_fields, created_at, updated_at
		FROM categories WHERE ` + cond
	row := r.q.QueryRow(context.Background(), query, arg)
	category, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return category, nil
}

// Update persiste el agregado completo (atributos planos + esquema).
func (r *CategoryRepo) Update(category *entity.Category) error {
	types, fields, err := marshalSchema(category)
	if err != nil {
		return err
	}
	query := `
		UPDATE categories SET name = $2, description = $3, is_active = $4,
			product_types = $5, default_fields = $6, updated_at = $7
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.IsActive,
		types, fields, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// List lista las categorías, opcionalmente solo las activas.
func (r *CategoryRepo) List(onlyActive bool) ([]*entity.Category, error) {
	query := `
		SELECT id, name, description, is_active, product_types, default_fields, created_at, updated_at
		FROM categories`
	if onlyActive {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []*entity.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, category)
	}
	return out, rows.Err()
}

// Delete elimina una categoría. Los productos que la referencian no se tocan.
func (r *CategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

func marshalSchema(category *entity.Category) (types, fields []byte, err error) {
	types, err = json.Marshal(category.ProductTypes)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal product_types: %w", err)
	}
	fields, err = json.Marshal(category.DefaultFields)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal default_fields: %w", err)
	}
	return types, fields, nil
}

func scanCategory(row pgx.Row) (*entity.Category, error) {
	var c entity.Category
	var types, fields []byte
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.IsActive, &types, &fields, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	if len(types) > 0 {
		if err := json.Unmarshal(types, &c.ProductTypes); err != nil {
			return nil, fmt.Errorf("unmarshal product_types: %w", err)
		}
	}
	if len(fields) > 0 {
		if err := json.Unmarshal(fields, &c.DefaultFields); err != nil {
			return nil, fmt.Errorf("unmarshal default_fields: %w", err)
		}
	}
	return &c, nil
}
