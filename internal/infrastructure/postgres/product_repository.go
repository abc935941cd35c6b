package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/horeca-stock/internal/domain/entity"
	"github.com/tu-usuario/horeca-stock/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo persistencia de Product sobre PostgreSQL. extra_specs se guarda
// como JSONB y NULL cuando no hay especificaciones (nunca '{}'): la columna
// conserva la semántica "sin especificar" del dominio.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Acepta pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(product *entity.Product) error {
	specs, err := marshalSpecs(product.ExtraSpecs)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO products (id, category_id, product_type, name, material, notes,
			purchase_price, sale_price, negotiation_margin, negotiation_type, status,
			extra_specs, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = r.q.Exec(context.Background(), query,
		product.ID, nullIfEmpty(product.CategoryID), product.ProductType, product.Name,
		product.Material, product.Notes, product.PurchasePrice, product.SalePrice,
		product.NegotiationMargin, product.NegotiationType, product.Status,
		specs, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := selectProduct + ` WHERE id = $1`
	product, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return product, nil
}

// Update actualiza un producto existente (incluye re-codificación de specs).
func (r *ProductRepo) Update(product *entity.Product) error {
	specs, err := marshalSpecs(product.ExtraSpecs)
	if err != nil {
		return err
	}
	query := `
		UPDATE products SET category_id = $2, product_type = $3, name = $4, material = $5,
			notes = $6, purchase_price = $7, sale_price = $8, negotiation_margin = $9,
			negotiation_type = $10, status = $11, extra_specs = $12, updated_at = $13
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		product.ID, nullIfEmpty(product.CategoryID), product.ProductType, product.Name,
		product.Material, product.Notes, product.PurchasePrice, product.SalePrice,
		product.NegotiationMargin, product.NegotiationType, product.Status,
		specs, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// List lista productos con filtros opcionales de estado y categoría.
func (r *ProductRepo) List(status, categoryID string, limit, offset int) ([]*entity.Product, error) {
	query := selectProduct + `
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR category_id = $2::uuid)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, status, categoryID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, product)
	}
	return out, rows.Err()
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

const selectProduct = `
	SELECT id, category_id, product_type, name, material, notes,
		purchase_price, sale_price, negotiation_margin, negotiation_type, status,
		extra_specs, created_at, updated_at
	FROM products`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var categoryID *string
	var specs []byte
	if err := row.Scan(&p.ID, &categoryID, &p.ProductType, &p.Name, &p.Material, &p.Notes,
		&p.PurchasePrice, &p.SalePrice, &p.NegotiationMargin, &p.NegotiationType, &p.Status,
		&specs, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if categoryID != nil {
		p.CategoryID = *categoryID
	}
	if len(specs) > 0 {
		if err := json.Unmarshal(specs, &p.ExtraSpecs); err != nil {
			return nil, fmt.Errorf("unmarshal extra_specs: %w", err)
		}
	}
	return &p, nil
}

// marshalSpecs serializa extra_specs; mapa vacío o nil → NULL, nunca '{}'.
func marshalSpecs(specs map[string]any) ([]byte, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(specs)
	if err != nil {
		return nil, fmt.Errorf("marshal extra_specs: %w", err)
	}
	return b, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
