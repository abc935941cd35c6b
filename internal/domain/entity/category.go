package entity

import "time"

// FieldType tipo de dato de un campo técnico.
type FieldType string

const (
	FieldText   FieldType = "text"
	FieldNumber FieldType = "number"
	FieldSelect FieldType = "select"
)

// SpecField describe un atributo técnico de producto (ej. "Yükseklik (cm)").
// Name se deriva siempre de Label vía schema.Normalize y nunca se edita a mano;
// es único dentro de la lista a la que pertenece.
type SpecField struct {
	Name    string    `json:"name"`
	Label   string    `json:"label"`
	Type    FieldType `json:"type"`
	Unit    string    `json:"unit,omitempty"`    // sufijo de display (ej. "cm"); nunca afecta la validación
	Options []string  `json:"options,omitempty"` // solo para type = select
}

// ProductType sub-tipo nombrado dentro de una categoría.
// Fields == nil significa "heredar los campos por defecto de la categoría";
// una lista que queda vacía al borrar su último campo colapsa de vuelta a nil
// para que las dos representaciones no diverjan.
type ProductType struct {
	Value  string      `json:"value"` // identificador derivado de Label
	Label  string      `json:"label"`
	Fields []SpecField `json:"fields,omitempty"`
}

// OwnsFields indica si el tipo define su propia lista de campos
// (en cuyo caso esta sombrea por completo los defaults de la categoría).
func (t ProductType) OwnsFields() bool {
	return len(t.Fields) > 0
}

// Category agrupa productos y es dueña del esquema dinámico: sus tipos de
// producto y los campos técnicos por defecto. El orden de las listas es orden
// de presentación.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	IsActive      bool          `json:"is_active"`
	ProductTypes  []ProductType `json:"product_types"`
	DefaultFields []SpecField   `json:"default_fields"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// FindType busca un tipo por su value. Devuelve nil si no existe.
func (c Category) FindType(value string) *ProductType {
	for i := range c.ProductTypes {
		if c.ProductTypes[i].Value == value {
			return &c.ProductTypes[i]
		}
	}
	return nil
}
