package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/horeca-stock/internal/domain/schema"
)

func TestNormalize_VectoresTurcos(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"Yükseklik (cm)", "yukseklik_cm"},
		{"  Çap ", "cap"},
		{"Güç (kW)", "guc_kw"},
		{"Hazne Sayısı", "hazne_sayisi"},
		{"IŞIK", "isik"},
		{"İç Hacim", "ic_hacim"},
		{"Soğutma Gazı", "sogutma_gazi"},
		{"volume-liters", "volume_liters"},
		{"A  B---C", "a_b_c"},
		{"120", "120"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, schema.Normalize(c.label), "label: %q", c.label)
	}
}

func TestNormalize_Idempotente(t *testing.T) {
	labels := []string{"Yükseklik (cm)", "  Çap ", "tek_hazneli", "Ölçüler 60x40", "", "???"}
	for _, l := range labels {
		once := schema.Normalize(l)
		assert.Equal(t, once, schema.Normalize(once), "Normalize debe ser idempotente para %q", l)
	}
}

func TestNormalize_SinContenidoAlfanumerico(t *testing.T) {
	// Total: devuelve string vacío y es el caller quien rechaza.
	assert.Equal(t, "", schema.Normalize(""))
	assert.Equal(t, "", schema.Normalize("  ---  "))
	assert.Equal(t, "", schema.Normalize("(++)"))
}

func TestNormalize_SinGuionesBajosEnExtremos(t *testing.T) {
	assert.Equal(t, "ancho_cm", schema.Normalize("__Ancho (cm)__"))
	assert.Equal(t, "x", schema.Normalize("!x!"))
}
