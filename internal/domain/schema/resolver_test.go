package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/horeca-stock/internal/domain/entity"
	"github.com/tu-usuario/horeca-stock/internal/domain/schema"
)

func TestEffectiveFields_TipoSinCamposHeredaDefaults(t *testing.T) {
	a := entity.SpecField{Name: "a", Label: "A", Type: entity.FieldText}
	b := entity.SpecField{Name: "b", Label: "B", Type: entity.FieldText}
	cat := entity.Category{
		DefaultFields: []entity.SpecField{a, b},
		ProductTypes:  []entity.ProductType{{Value: "tek_hazneli", Label: "Tek Hazneli"}},
	}

	assert.Equal(t, []entity.SpecField{a, b}, schema.EffectiveFields(cat, "tek_hazneli"))
}

func TestEffectiveFields_CamposPropiosSombreanSinMezclar(t *testing.T) {
	a := entity.SpecField{Name: "a", Label: "A", Type: entity.FieldText}
	b := entity.SpecField{Name: "b", Label: "B", Type: entity.FieldText}
	c := entity.SpecField{Name: "c", Label: "C", Type: entity.FieldNumber}
	cat := entity.Category{
		DefaultFields: []entity.SpecField{a, b},
		ProductTypes: []entity.ProductType{
			{Value: "tek_hazneli", Label: "Tek Hazneli", Fields: []entity.SpecField{c}},
		},
	}

	got := schema.EffectiveFields(cat, "tek_hazneli")
	assert.Equal(t, []entity.SpecField{c}, got, "los defaults no se mezclan con los campos propios")
}

func TestEffectiveFields_TipoDesconocidoListaVacia(t *testing.T) {
	cat := entity.Category{
		DefaultFields: []entity.SpecField{{Name: "a", Label: "A", Type: entity.FieldText}},
	}

	assert.Empty(t, schema.EffectiveFields(cat, "no_existe"))
	assert.Empty(t, schema.EffectiveFields(cat, ""), "tipo sin asignar tampoco muestra campos")
}

func TestEffectiveFields_NoMutaElEsquema(t *testing.T) {
	cat := entity.Category{
		DefaultFields: []entity.SpecField{{Name: "a", Label: "A", Type: entity.FieldText}},
		ProductTypes:  []entity.ProductType{{Value: "t", Label: "T"}},
	}
	before := cat.FindType("t").Fields

	_ = schema.EffectiveFields(cat, "t")
	_ = schema.EffectiveFields(cat, "t")

	assert.Equal(t, before, cat.FindType("t").Fields)
	assert.Len(t, cat.DefaultFields, 1)
}
