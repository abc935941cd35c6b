package schema_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/horeca-stock/internal/domain/entity"
	"github.com/tu-usuario/horeca-stock/internal/domain/schema"
)

func catalogoDePrueba() []entity.Category {
	return []entity.Category{
		{
			ID:   "cat-fritoz",
			Name: "Fritözler",
			ProductTypes: []entity.ProductType{
				{Value: "tek_hazneli", Label: "Tek Hazneli"},
				{Value: "cift_hazneli", Label: "Çift Hazneli"},
			},
		},
		{
			ID:   "cat-ocak",
			Name: "Ocaklar",
		},
	}
}

func TestReconcile_CategoriaNoEncontrada(t *testing.T) {
	price := decimal.NewFromInt(12000)
	draft, warnings := schema.Reconcile(catalogoDePrueba(), schema.Extraction{
		CategoryName: "Izgaralar",
		Name:         "Sanayi Izgara",
		SalePrice:    &price,
		Material:     "paslanmaz çelik",
	})

	// Sin match: los atributos que no dependen del esquema se conservan,
	// categoría y tipo quedan sin asignar y hay exactamente una advertencia
	// que nombra la categoría no reconocida.
	assert.Empty(t, draft.CategoryID)
	assert.Empty(t, draft.ProductType)
	assert.Equal(t, "Sanayi Izgara", draft.Name)
	assert.Equal(t, "paslanmaz çelik", draft.Material)
	require.NotNil(t, draft.SalePrice)
	assert.True(t, price.Equal(*draft.SalePrice))
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Izgaralar")
}

func TestReconcile_MatchEsSensibleAMayusculas(t *testing.T) {
	// Sin fuzzy matching: "fritözler" ≠ "Fritözler".
	draft, warnings := schema.Reconcile(catalogoDePrueba(), schema.Extraction{CategoryName: "fritözler"})
	assert.Empty(t, draft.CategoryID)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "fritözler")
}

func TestReconcile_TipoResuelto(t *testing.T) {
	draft, warnings := schema.Reconcile(catalogoDePrueba(), schema.Extraction{
		CategoryName:     "Fritözler",
		ProductTypeValue: "tek_hazneli",
	})

	assert.Equal(t, "cat-fritoz", draft.CategoryID)
	assert.Equal(t, "tek_hazneli", draft.ProductType)
	assert.Equal(t, "Tek Hazneli", draft.Name,
		"sin nombre usable en la extracción, se toma la etiqueta del tipo")
	assert.Empty(t, warnings)
}

func TestReconcile_NombreDeLaExtraccionTienePrioridad(t *testing.T) {
	draft, _ := schema.Reconcile(catalogoDePrueba(), schema.Extraction{
		CategoryName:     "Fritözler",
		ProductTypeValue: "tek_hazneli",
		Name:             "Fritöz 8L İkinci El",
	})
	assert.Equal(t, "Fritöz 8L İkinci El", draft.Name)
}

func TestReconcile_TokenDeTipoNoResueltoSeConserva(t *testing.T) {
	draft, warnings := schema.Reconcile(catalogoDePrueba(), schema.Extraction{
		CategoryName:     "Fritözler",
		ProductTypeValue: "uc_hazneli",
	})

	// El token se guarda como valor libre en vez de descartarse: no resolverá
	// campos hasta que un humano lo reasigne, pero no se pierde información.
	assert.Equal(t, "cat-fritoz", draft.CategoryID)
	assert.Equal(t, "uc_hazneli", draft.ProductType)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "uc_hazneli")
}

func TestReconcile_FiltraSpecsNulasYVacias(t *testing.T) {
	draft, _ := schema.Reconcile(catalogoDePrueba(), schema.Extraction{
		CategoryName: "Fritözler",
		ExtraSpecs: map[string]any{
			"length_cm": "",
			"width_cm":  "40",
			"depth_cm":  nil,
			"weight_kg": 32.5,
		},
	})

	assert.Equal(t, map[string]string{
		"width_cm":  "40",
		"weight_kg": "32.5",
	}, draft.RawSpecs)
}

func TestReconcile_ConservaClavesFueraDelEsquema(t *testing.T) {
	// Claves que no corresponden a ningún campo efectivo se conservan en el
	// mapa crudo (misma tolerancia a deriva que el codec): se vuelven visibles
	// si el usuario agrega después un campo con ese nombre.
	draft, _ := schema.Reconcile(catalogoDePrueba(), schema.Extraction{
		CategoryName:     "Fritözler",
		ProductTypeValue: "tek_hazneli",
		ExtraSpecs:       map[string]any{"campo_inexistente": "valor"},
	})
	assert.Equal(t, "valor", draft.RawSpecs["campo_inexistente"])
}

func TestReconcile_OrdenDeAdvertencias(t *testing.T) {
	// Las advertencias propias de la reconciliación van primero; las del paso
	// de extracción upstream se concatenan después en su orden original.
	_, warnings := schema.Reconcile(catalogoDePrueba(), schema.Extraction{
		CategoryName:     "Fritözler",
		ProductTypeValue: "uc_hazneli",
		Warnings:         []string{"upstream-1", "upstream-2"},
	})

	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "uc_hazneli")
	assert.Equal(t, "upstream-1", warnings[1])
	assert.Equal(t, "upstream-2", warnings[2])
}

func TestReconcile_ExtraccionVaciaNuncaFalla(t *testing.T) {
	// Peor caso: borrador usable aunque vacío, más advertencias.
	draft, warnings := schema.Reconcile(nil, schema.Extraction{})
	assert.Empty(t, draft.CategoryID)
	assert.Empty(t, draft.ProductType)
	assert.NotEmpty(t, warnings)
}
