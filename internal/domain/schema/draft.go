package schema

import (
	"fmt"
	"strings"

	"github.com/tu-usuario/horeca-stock/internal/domain"
	"github.com/tu-usuario/horeca-stock/internal/domain/entity"
)

// Las mutaciones de este archivo operan sobre un draft en memoria de una
// Category antes de persistirla. Cada operación recibe el draft por valor y
// devuelve un draft nuevo o un error de rechazo; nunca muta el original, lo
// que las hace seguras de encadenar y triviales de testear.

// NewSpecField construye un campo técnico a partir de su etiqueta.
// Para campos select, optionsRaw es la entrada separada por comas del editor;
// una lista de opciones vacía no degrada el tipo a text: el campo se crea
// igual como select sin opciones y el editor lo marca como dato incompleto.
func NewSpecField(label string, ftype entity.FieldType, unit, optionsRaw string) (entity.SpecField, error) {
	name := Normalize(label)
	if name == "" {
		return entity.SpecField{}, fmt.Errorf("etiqueta %q: %w", label, domain.ErrEmptyIdentifier)
	}
	field := entity.SpecField{
		Name:  name,
		Label: label,
		Type:  ftype,
		Unit:  unit,
	}
	if ftype == entity.FieldSelect {
		field.Options = ParseSelectOptions(optionsRaw)
	}
	return field, nil
}

// ParseSelectOptions separa la entrada por comas, recorta cada token y
// descarta los vacíos.
func ParseSelectOptions(raw string) []string {
	var options []string
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			options = append(options, tok)
		}
	}
	return options
}

// AddProductType agrega un tipo de producto con el identificador derivado de
// label. Rechaza con ErrDuplicateIdentifier si el identificador ya existe
// entre los tipos de la categoría (resultado negativo normal, no excepción).
// El tipo nuevo arranca sin campos propios: hereda los defaults de la categoría.
func AddProductType(draft entity.Category, label string) (entity.Category, error) {
	value := Normalize(label)
	if value == "" {
		return draft, fmt.Errorf("etiqueta %q: %w", label, domain.ErrEmptyIdentifier)
	}
	if draft.FindType(value) != nil {
		return draft, fmt.Errorf("tipo %q: %w", value, domain.ErrDuplicateIdentifier)
	}
	types := make([]entity.ProductType, 0, len(draft.ProductTypes)+1)
	types = append(types, draft.ProductTypes...)
	types = append(types, entity.ProductType{Value: value, Label: label})
	draft.ProductTypes = types
	return draft, nil
}

// RemoveProductType elimina el tipo indicado. Los productos que lo referencian
// no se tocan aquí: quedan con un product_type huérfano que el resolver
// simplemente deja de reconocer.
func RemoveProductType(draft entity.Category, value string) (entity.Category, error) {
	idx := typeIndex(draft, value)
	if idx < 0 {
		return draft, fmt.Errorf("tipo %q: %w", value, domain.ErrUnknownProductType)
	}
	types := make([]entity.ProductType, 0, len(draft.ProductTypes)-1)
	types = append(types, draft.ProductTypes[:idx]...)
	types = append(types, draft.ProductTypes[idx+1:]...)
	draft.ProductTypes = types
	return draft, nil
}

// AddTypeField agrega un campo a la lista propia del tipo. Si el tipo venía
// heredando los defaults, esta llamada establece su lista propia empezando por
// este campo (que desde entonces sombrea por completo los defaults).
func AddTypeField(draft entity.Category, typeValue string, field entity.SpecField) (entity.Category, error) {
	idx := typeIndex(draft, typeValue)
	if idx < 0 {
		return draft, fmt.Errorf("tipo %q: %w", typeValue, domain.ErrUnknownProductType)
	}
	current := draft.ProductTypes[idx].Fields
	if fieldIndex(current, field.Name) >= 0 {
		return draft, fmt.Errorf("campo %q: %w", field.Name, domain.ErrDuplicateIdentifier)
	}
	fields := make([]entity.SpecField, 0, len(current)+1)
	fields = append(fields, current...)
	fields = append(fields, field)

	draft.ProductTypes = cloneTypes(draft.ProductTypes)
	draft.ProductTypes[idx].Fields = fields
	return draft, nil
}

// RemoveTypeField elimina un campo de la lista propia del tipo. Si la lista
// queda vacía, el tipo vuelve explícitamente a "heredar defaults" (Fields nil):
// una lista vacía nunca se almacena como [].
func RemoveTypeField(draft entity.Category, typeValue, fieldName string) (entity.Category, error) {
	idx := typeIndex(draft, typeValue)
	if idx < 0 {
		return draft, fmt.Errorf("tipo %q: %w", typeValue, domain.ErrUnknownProductType)
	}
	fields, err := removeField(draft.ProductTypes[idx].Fields, fieldName)
	if err != nil {
		return draft, err
	}
	if len(fields) == 0 {
		fields = nil // colapsa de vuelta a herencia
	}
	draft.ProductTypes = cloneTypes(draft.ProductTypes)
	draft.ProductTypes[idx].Fields = fields
	return draft, nil
}

// AddDefaultField agrega un campo a los defaults de la categoría, con la misma
// regla de rechazo por identificador duplicado.
func AddDefaultField(draft entity.Category, field entity.SpecField) (entity.Category, error) {
	if fieldIndex(draft.DefaultFields, field.Name) >= 0 {
		return draft, fmt.Errorf("campo %q: %w", field.Name, domain.ErrDuplicateIdentifier)
	}
	fields := make([]entity.SpecField, 0, len(draft.DefaultFields)+1)
	fields = append(fields, draft.DefaultFields...)
	fields = append(fields, field)
	draft.DefaultFields = fields
	return draft, nil
}

// RemoveDefaultField elimina un campo de los defaults de la categoría.
func RemoveDefaultField(draft entity.Category, fieldName string) (entity.Category, error) {
	fields, err := removeField(draft.DefaultFields, fieldName)
	if err != nil {
		return draft, err
	}
	if len(fields) == 0 {
		fields = nil
	}
	draft.DefaultFields = fields
	return draft, nil
}

func typeIndex(c entity.Category, value string) int {
	for i := range c.ProductTypes {
		if c.ProductTypes[i].Value == value {
			return i
		}
	}
	return -1
}

func fieldIndex(fields []entity.SpecField, name string) int {
	for i := range fields {
		if fields[i].Name == name {
			return i
		}
	}
	return -1
}

func removeField(fields []entity.SpecField, name string) ([]entity.SpecField, error) {
	idx := fieldIndex(fields, name)
	if idx < 0 {
		return nil, fmt.Errorf("campo %q: %w", name, domain.ErrUnknownField)
	}
	out := make([]entity.SpecField, 0, len(fields)-1)
	out = append(out, fields[:idx]...)
	out = append(out, fields[idx+1:]...)
	return out, nil
}

func cloneTypes(types []entity.ProductType) []entity.ProductType {
	out := make([]entity.ProductType, len(types))
	copy(out, types)
	return out
}
