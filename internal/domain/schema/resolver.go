package schema

import "github.com/tu-usuario/horeca-stock/internal/domain/entity"

// EffectiveFields calcula la lista ordenada de campos técnicos vigente para el
// par (categoría, tipo de producto):
//
//   - el tipo existe y tiene campos propios → esos campos, tal cual (sombrean
//     por completo los defaults; nunca se mezclan);
//   - el tipo existe sin campos propios → los defaults de la categoría;
//   - el tipo no existe (desconocido o sin asignar) → lista vacía, no se
//     muestra sección de campos técnicos.
//
// Pura y sin efectos: se puede llamar en cada render sin cachear y jamás muta
// el esquema. Los callers no deben modificar el slice devuelto.
func EffectiveFields(category entity.Category, productTypeValue string) []entity.SpecField {
	t := category.FindType(productTypeValue)
	if t == nil {
		return nil
	}
	if t.OwnsFields() {
		return t.Fields
	}
	return category.DefaultFields
}
