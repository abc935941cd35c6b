package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/horeca-stock/internal/application/dto"
	"github.com/tu-usuario/horeca-stock/internal/domain"
	"github.com/tu-usuario/horeca-stock/internal/domain/entity"
	"github.com/tu-usuario/horeca-stock/internal/domain/repository"
	"github.com/tu-usuario/horeca-stock/internal/domain/schema"
)

// CategoryUseCase casos de uso del esquema dinámico: CRUD de categorías y las
// mutaciones de tipos/campos. Cada mutación carga el agregado, opera sobre el
// draft en memoria con las funciones puras de schema y persiste el resultado;
// un rechazo (identificador duplicado, etc.) vuelve al caller como valor sin
// tocar la DB.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría vacía (sin tipos ni campos por defecto).
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return dto.ToCategoryResponse(category), nil
}

// GetByID obtiene una categoría con su esquema completo.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return dto.ToCategoryResponse(category), nil
}

// List lista las categorías (opcionalmente solo las activas).
func (uc *CategoryUseCase) List(onlyActive bool) (*dto.CategoryListResponse, error) {
	list, err := uc.repo.List(onlyActive)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *dto.ToCategoryResponse(c))
	}
	return &dto.CategoryListResponse{Items: items}, nil
}

// Update edita los atributos planos de la categoría (no el esquema).
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	if in.Name != nil && *in.Name != category.Name {
		existing, err := uc.repo.GetByName(*in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return dto.ToCategoryResponse(category), nil
}

// Delete elimina la categoría. Los productos que la referencian quedan
// huérfanos a propósito: sus extra_specs siguen siendo legibles.
func (uc *CategoryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// AddProductType agrega un tipo de producto derivando su value de la etiqueta.
func (uc *CategoryUseCase) AddProductType(categoryID string, in dto.AddProductTypeRequest) (*dto.CategoryResponse, error) {
	return uc.mutate(categoryID, func(draft entity.Category) (entity.Category, error) {
		return schema.AddProductType(draft, in.Label)
	})
}

// RemoveProductType elimina el tipo indicado.
func (uc *CategoryUseCase) RemoveProductType(categoryID, typeValue string) (*dto.CategoryResponse, error) {
	return uc.mutate(categoryID, func(draft entity.Category) (entity.Category, error) {
		return schema.RemoveProductType(draft, typeValue)
	})
}

// AddTypeField agrega un campo técnico a la lista propia del tipo.
func (uc *CategoryUseCase) AddTypeField(categoryID, typeValue string, in dto.AddSpecFieldRequest) (*dto.CategoryResponse, error) {
	field, err := buildField(in)
	if err != nil {
		return nil, err
	}
	return uc.mutate(categoryID, func(draft entity.Category) (entity.Category, error) {
		return schema.AddTypeField(draft, typeValue, field)
	})
}

// RemoveTypeField elimina un campo del tipo; si era el último, el tipo vuelve
// a heredar los defaults de la categoría.
func (uc *CategoryUseCase) RemoveTypeField(categoryID, typeValue, fieldName string) (*dto.CategoryResponse, error) {
	return uc.mutate(categoryID, func(draft entity.Category) (entity.Category, error) {
		return schema.RemoveTypeField(draft, typeValue, fieldName)
	})
}

// AddDefaultField agrega un campo a los defaults de la categoría.
func (uc *CategoryUseCase) AddDefaultField(categoryID string, in dto.AddSpecFieldRequest) (*dto.CategoryResponse, error) {
	field, err := buildField(in)
	if err != nil {
		return nil, err
	}
	return uc.mutate(categoryID, func(draft entity.Category) (entity.Category, error) {
		return schema.AddDefaultField(draft, field)
	})
}

// RemoveDefaultField elimina un campo de los defaults de la categoría.
func (uc *CategoryUseCase) RemoveDefaultField(categoryID, fieldName string) (*dto.CategoryResponse, error) {
	return uc.mutate(categoryID, func(draft entity.Category) (entity.Category, error) {
		return schema.RemoveDefaultField(draft, fieldName)
	})
}

// EffectiveFields expone la lista de campos vigente para el formulario de
// producto del par (categoría, tipo).
func (uc *CategoryUseCase) EffectiveFields(categoryID, typeValue string) (*dto.EffectiveFieldsResponse, error) {
	category, err := uc.repo.GetByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return &dto.EffectiveFieldsResponse{
		CategoryID:  categoryID,
		ProductType: typeValue,
		Fields:      dto.ToSpecFieldResponses(schema.EffectiveFields(*category, typeValue)),
	}, nil
}

// mutate carga el agregado, aplica la mutación pura sobre el draft y persiste.
func (uc *CategoryUseCase) mutate(categoryID string, op func(entity.Category) (entity.Category, error)) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	updated, err := op(*category)
	if err != nil {
		return nil, err
	}
	updated.UpdatedAt = time.Now()
	if err := uc.repo.Update(&updated); err != nil {
		return nil, err
	}
	return dto.ToCategoryResponse(&updated), nil
}

func buildField(in dto.AddSpecFieldRequest) (entity.SpecField, error) {
	ftype := entity.FieldType(in.Type)
	switch ftype {
	case entity.FieldText, entity.FieldNumber, entity.FieldSelect:
	default:
		return entity.SpecField{}, domain.ErrInvalidInput
	}
	return schema.NewSpecField(in.Label, ftype, in.Unit, in.Options)
}
