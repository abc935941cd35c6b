package schema

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/horeca-stock/internal/domain/entity"
)

// Extraction es el resultado sin estructura del colaborador de extracción IA
// (imagen/texto → adivinanza de producto). Todos los campos son opcionales:
// el modelo puede no reconocer nada.
type Extraction struct {
	CategoryName      string           `json:"category_name"`
	ProductTypeValue  string           `json:"product_type_value,omitempty"`
	Name              string           `json:"name,omitempty"`
	PurchasePrice     *decimal.Decimal `json:"purchase_price,omitempty"`
	SalePrice         *decimal.Decimal `json:"sale_price,omitempty"`
	NegotiationMargin *decimal.Decimal `json:"negotiation_margin,omitempty"`
	NegotiationType   string           `json:"negotiation_type,omitempty"`
	Material          string           `json:"material,omitempty"`
	Notes             string           `json:"notes,omitempty"`
	ExtraSpecs        map[string]any   `json:"extra_specs,omitempty"`
	Warnings          []string         `json:"warnings,omitempty"`
}

// ProductDraft es el borrador de producto que produce la reconciliación,
// siempre usable aunque quede parcialmente vacío. RawSpecs guarda los valores
// crudos propuestos; pasan por Encode con los campos efectivos del par
// categoría/tipo que termine seleccionado cuando el usuario confirma.
type ProductDraft struct {
	CategoryID        string            `json:"category_id,omitempty"`
	ProductType       string            `json:"product_type,omitempty"`
	Name              string            `json:"name,omitempty"`
	PurchasePrice     *decimal.Decimal  `json:"purchase_price,omitempty"`
	SalePrice         *decimal.Decimal  `json:"sale_price,omitempty"`
	NegotiationMargin *decimal.Decimal  `json:"negotiation_margin,omitempty"`
	NegotiationType   string            `json:"negotiation_type,omitempty"`
	Material          string            `json:"material,omitempty"`
	Notes             string            `json:"notes,omitempty"`
	RawSpecs          map[string]string `json:"raw_specs,omitempty"`
}

// Reconcile mapea una extracción IA sobre el esquema vivo y devuelve un
// borrador de producto más la lista de advertencias para revisión humana.
//
// La categoría se busca por nombre con comparación exacta (sin fuzzy matching);
// si no hay match, el borrador conserva los atributos que no dependen del
// esquema y se advierte nombrando la categoría no reconocida para que el
// usuario la seleccione a mano. Un token de tipo que no resuelve se conserva
// igual como valor libre: no resolverá campos hasta que alguien lo reasigne,
// pero descartarlo perdería información. Las claves de extra_specs se filtran
// de nulos y strings vacíos, se stringifican y se conservan aunque no
// correspondan a ningún campo vigente (misma tolerancia a deriva que Decode).
//
// Nunca falla: el peor caso es un borrador sin categoría ni tipo acompañado de
// advertencias. Las advertencias propias van primero; las del paso de
// extracción upstream se concatenan después, en su orden original.
func Reconcile(categories []entity.Category, ext Extraction) (ProductDraft, []string) {
	var warnings []string

	draft := ProductDraft{
		Name:              ext.Name,
		PurchasePrice:     ext.PurchasePrice,
		SalePrice:         ext.SalePrice,
		NegotiationMargin: ext.NegotiationMargin,
		NegotiationType:   ext.NegotiationType,
		Material:          ext.Material,
		Notes:             ext.Notes,
	}

	matched := findCategoryByName(categories, ext.CategoryName)
	switch {
	case ext.CategoryName == "":
		warnings = append(warnings, "la extracción no indicó categoría; selecciónala manualmente")
	case matched == nil:
		warnings = append(warnings, fmt.Sprintf("categoría %q no encontrada; selecciónala manualmente", ext.CategoryName))
	default:
		draft.CategoryID = matched.ID
		if ext.ProductTypeValue != "" {
			if t := matched.FindType(ext.ProductTypeValue); t != nil {
				draft.ProductType = t.Value
				if draft.Name == "" {
					draft.Name = t.Label
				}
			} else {
				// Token libre: se conserva aunque no resuelva a ningún tipo conocido.
				draft.ProductType = ext.ProductTypeValue
				warnings = append(warnings, fmt.Sprintf("tipo de producto %q no existe en la categoría %q; revísalo", ext.ProductTypeValue, matched.Name))
			}
		}
	}

	if len(ext.ExtraSpecs) > 0 {
		raw := make(map[string]string, len(ext.ExtraSpecs))
		for key, v := range ext.ExtraSpecs {
			if v == nil {
				continue
			}
			if s, isStr := v.(string); isStr && s == "" {
				continue
			}
			raw[key] = stringifyValue(v)
		}
		if len(raw) > 0 {
			draft.RawSpecs = raw
		}
	}

	warnings = append(warnings, ext.Warnings...)
	return draft, warnings
}

func findCategoryByName(categories []entity.Category, name string) *entity.Category {
	if name == "" {
		return nil
	}
	for i := range categories {
		if categories[i].Name == name {
			return &categories[i]
		}
	}
	return nil
}
