package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/horeca-stock/internal/domain/entity"
	"github.com/tu-usuario/horeca-stock/internal/domain/schema"
)

func fritozFields() []entity.SpecField {
	return []entity.SpecField{
		{Name: "volume_liters", Label: "Hazne Hacmi", Type: entity.FieldNumber, Unit: "L"},
		{Name: "enerji_turu", Label: "Enerji Türü", Type: entity.FieldSelect, Options: []string{"Elektrik", "Gaz"}},
		{Name: "marka", Label: "Marka", Type: entity.FieldText},
	}
}

func TestEncode_EscenarioFritozler(t *testing.T) {
	// Categoría "Fritözler", tipo "tek_hazneli" con campo number volume_liters.
	specs := schema.Encode(fritozFields(), map[string]string{"volume_liters": "8.5"})
	assert.Equal(t, map[string]any{"volume_liters": 8.5}, specs)
}

func TestEncode_MapaVacioParaEntradaVacia(t *testing.T) {
	specs := schema.Encode(fritozFields(), map[string]string{})
	assert.Empty(t, specs, "sin valores crudos no se codifica nada")
}

func TestEncode_OmiteAusentesYVacios(t *testing.T) {
	specs := schema.Encode(fritozFields(), map[string]string{
		"volume_liters": "",
		"marka":         "Öztiryakiler",
	})
	// La especificación parcial siempre es legal: ausencia = "no especificado",
	// nunca un cero ni un string vacío por defecto.
	assert.Equal(t, map[string]any{"marka": "Öztiryakiler"}, specs)
}

func TestEncode_IgnoraClavesFueraDelEsquema(t *testing.T) {
	specs := schema.Encode(fritozFields(), map[string]string{"desconocido": "42"})
	assert.Empty(t, specs)
}

func TestEncode_SelectPasaSinRevalidar(t *testing.T) {
	// Brecha deliberada del diseño: el codec confía en que la UI solo ofrece
	// valores de field.Options, así que un valor fuera de rango pasa tal cual.
	specs := schema.Encode(fritozFields(), map[string]string{"enerji_turu": "Kömür"})
	assert.Equal(t, map[string]any{"enerji_turu": "Kömür"}, specs)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	raw := map[string]string{
		"volume_liters": "8.5",
		"enerji_turu":   "Gaz",
		"marka":         "İnoksan",
	}
	decoded := schema.Decode(schema.Encode(fritozFields(), raw))
	for name, want := range raw {
		assert.Equal(t, want, decoded[name], "round-trip de %s", name)
	}
}

func TestDecode_ConservaDerivaDeEsquema(t *testing.T) {
	// Valores guardados que ya no corresponden a ningún campo vigente se
	// conservan en el mapa crudo; la UI simplemente no los renderiza.
	stored := map[string]any{
		"volume_liters": 8.5,
		"campo_viejo":   "valor histórico",
	}
	raw := schema.Decode(stored)
	assert.Equal(t, "8.5", raw["volume_liters"])
	assert.Equal(t, "valor histórico", raw["campo_viejo"])
}

func TestDecode_StringificaNumerosSinCerosDeRelleno(t *testing.T) {
	raw := schema.Decode(map[string]any{"ancho": 120.0, "alto": 85.5})
	assert.Equal(t, "120", raw["ancho"])
	assert.Equal(t, "85.5", raw["alto"])
}

func TestValidateRaw_FronteraNumerica(t *testing.T) {
	problems := schema.ValidateRaw(fritozFields(), map[string]string{
		"volume_liters": "ocho litros",
		"marka":         "İnoksan",
	})
	require.Len(t, problems, 1)
	assert.Contains(t, problems["volume_liters"], "numérico")

	limpio := schema.ValidateRaw(fritozFields(), map[string]string{"volume_liters": "8.5"})
	assert.Empty(t, limpio)

	vacio := schema.ValidateRaw(fritozFields(), map[string]string{"volume_liters": ""})
	assert.Empty(t, vacio, "valor vacío = no especificado, no es error")
}
