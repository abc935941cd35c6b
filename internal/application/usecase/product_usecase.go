package usecase

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/horeca-stock/internal/application/dto"
	"github.com/tu-usuario/horeca-stock/internal/domain"
	"github.com/tu-usuario/horeca-stock/internal/domain/entity"
	"github.com/tu-usuario/horeca-stock/internal/domain/repository"
	"github.com/tu-usuario/horeca-stock/internal/domain/schema"
)

// SpecValidationError entrada numérica inválida detectada antes de codificar:
// la frontera de validación es del caller del codec, no del codec.
type SpecValidationError struct {
	Fields map[string]string
}

func (e *SpecValidationError) Error() string {
	return fmt.Sprintf("especificaciones inválidas en %d campo(s)", len(e.Fields))
}

// ProductCSVParser parsea un CSV de productos (puerto hacia infrastructure/parsers).
type ProductCSVParser interface {
	Parse(r io.Reader) ([]dto.CreateProductRequest, []string, error)
}

// ProductUseCase casos de uso CRUD de productos. Las especificaciones técnicas
// entran y salen exclusivamente por el codec de schema: valores crudos del
// formulario → ValidateRaw → Encode → extra_specs; y extra_specs → Decode →
// valores crudos al leer.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	csvParser    ProductCSVParser
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository, csvParser ProductCSVParser) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, csvParser: csvParser}
}

// Create crea un producto codificando RawSpecs contra los campos efectivos del
// par categoría/tipo. Un mapa resultante vacío se guarda como nil (NULL en DB,
// nunca objeto vacío) para conservar la semántica "sin especificaciones".
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	negotiationType := in.NegotiationType
	if negotiationType == "" {
		negotiationType = entity.NegotiationFixed
	}
	if negotiationType != entity.NegotiationFixed && negotiationType != entity.NegotiationPercent {
		return nil, domain.ErrInvalidInput
	}

	specs, err := uc.encodeSpecs(in.CategoryID, in.ProductType, in.RawSpecs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		CategoryID:        in.CategoryID,
		ProductType:       in.ProductType,
		Name:              in.Name,
		Material:          in.Material,
		Notes:             in.Notes,
		PurchasePrice:     in.PurchasePrice,
		SalePrice:         in.SalePrice,
		NegotiationMargin: in.NegotiationMargin,
		NegotiationType:   negotiationType,
		Status:            entity.ProductAvailable,
		ExtraSpecs:        specs,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product, schema.Decode(product.ExtraSpecs)), nil
}

// GetByID obtiene un producto; sus extra_specs se decodifican a valores crudos
// para el formulario. La deriva de esquema se tolera: los valores huérfanos se
// conservan en el mapa aunque la UI no los muestre.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return dto.ToProductResponse(product, schema.Decode(product.ExtraSpecs)), nil
}

// Update edita un producto. Si llegan RawSpecs se re-codifican desde cero
// contra los campos efectivos del par categoría/tipo resultante.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.ProductType != nil {
		product.ProductType = *in.ProductType
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Material != nil {
		product.Material = *in.Material
	}
	if in.Notes != nil {
		product.Notes = *in.Notes
	}
	if in.PurchasePrice != nil {
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.SalePrice != nil {
		product.SalePrice = *in.SalePrice
	}
	if in.NegotiationMargin != nil {
		product.NegotiationMargin = *in.NegotiationMargin
	}
	if in.NegotiationType != nil {
		if *in.NegotiationType != entity.NegotiationFixed && *in.NegotiationType != entity.NegotiationPercent {
			return nil, domain.ErrInvalidInput
		}
		product.NegotiationType = *in.NegotiationType
	}
	if in.RawSpecs != nil {
		specs, err := uc.encodeSpecs(product.CategoryID, product.ProductType, in.RawSpecs)
		if err != nil {
			return nil, err
		}
		product.ExtraSpecs = specs
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return dto.ToProductResponse(product, schema.Decode(product.ExtraSpecs)), nil
}

// List lista productos con filtros opcionales de estado y categoría.
func (uc *ProductUseCase) List(status, categoryID string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(status, categoryID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *dto.ToProductResponse(p, schema.Decode(p.ExtraSpecs)))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// ImportCSV importa productos en lote desde un CSV (exportes de Excel en
// Windows-1254 o UTF-8). Las filas inválidas se saltan con advertencia; las
// válidas pasan por el mismo Create que el formulario.
func (uc *ProductUseCase) ImportCSV(r io.Reader) (*dto.ImportProductsResponse, error) {
	if uc.csvParser == nil {
		return nil, fmt.Errorf("importación CSV no configurada")
	}
	requests, warnings, err := uc.csvParser.Parse(r)
	if err != nil {
		return nil, err
	}
	out := &dto.ImportProductsResponse{Warnings: warnings}
	for _, req := range requests {
		if _, err := uc.Create(req); err != nil {
			out.Skipped++
			out.Warnings = append(out.Warnings, fmt.Sprintf("producto %q: %v", req.Name, err))
			continue
		}
		out.Imported++
	}
	return out, nil
}

// encodeSpecs valida y codifica los valores crudos contra los campos efectivos.
// Sin categoría o con tipo desconocido la lista efectiva queda vacía y no se
// codifica nada (los specs propuestos se pierden solo si el caller lo decide;
// el borrador IA conserva su mapa crudo aparte).
func (uc *ProductUseCase) encodeSpecs(categoryID, productType string, raw map[string]string) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var fields []entity.SpecField
	if categoryID != "" {
		category, err := uc.categoryRepo.GetByID(categoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrNotFound
		}
		fields = schema.EffectiveFields(*category, productType)
	}
	if problems := schema.ValidateRaw(fields, raw); len(problems) > 0 {
		return nil, &SpecValidationError{Fields: problems}
	}
	specs := schema.Encode(fields, raw)
	if len(specs) == 0 {
		return nil, nil // NULL, nunca objeto vacío
	}
	return specs, nil
}
