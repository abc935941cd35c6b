package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_FilasValidasConSpecs(t *testing.T) {
	csvData := "name,category_id,product_type,purchase_price,sale_price,spec:volume_liters,spec:power_kw\n" +
		"Fritöz Pro 8L,cat-1,tek_hazneli,1500,2500,8.5,3\n" +
		"Izgara 60cm,cat-2,,800,1400,,\n"

	parser := NewProductCSVParser()
	requests, warnings, err := parser.Parse(strings.NewReader(csvData))

	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, requests, 2)

	first := requests[0]
	assert.Equal(t, "Fritöz Pro 8L", first.Name)
	assert.Equal(t, "cat-1", first.CategoryID)
	assert.Equal(t, "tek_hazneli", first.ProductType)
	assert.Equal(t, "1500", first.PurchasePrice.String())
	assert.Equal(t, "2500", first.SalePrice.String())
	assert.Equal(t, map[string]string{"volume_liters": "8.5", "power_kw": "3"}, first.RawSpecs)

	// Columnas spec vacías no generan claves.
	assert.Nil(t, requests[1].RawSpecs)
}

func TestParse_FilaSinNombreSeSaltaConAdvertencia(t *testing.T) {
	csvData := "name,sale_price\n" +
		",1000\n" +
		"Horno konveksiyonlu,3200\n"

	parser := NewProductCSVParser()
	requests, warnings, err := parser.Parse(strings.NewReader(csvData))

	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "Horno konveksiyonlu", requests[0].Name)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "fila 2")
}

func TestParse_PrecioInvalidoSaltaLaFila(t *testing.T) {
	csvData := "name,sale_price\n" +
		"Mesa de trabajo,no-es-numero\n"

	parser := NewProductCSVParser()
	requests, warnings, err := parser.Parse(strings.NewReader(csvData))

	require.NoError(t, err)
	assert.Empty(t, requests)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "sale_price")
}

func TestParse_ComaDecimalSeNormaliza(t *testing.T) {
	quoted := "name,sale_price\n" +
		"Fritöz,\"1250,50\"\n"

	parser := NewProductCSVParser()
	requests, warnings, err := parser.Parse(strings.NewReader(quoted))

	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, requests, 1)
	assert.Equal(t, "1250.5", requests[0].SalePrice.String())
}

func TestParse_SinColumnaNombreEsFatal(t *testing.T) {
	csvData := "category_id,sale_price\ncat-1,1000\n"

	parser := NewProductCSVParser()
	_, _, err := parser.Parse(strings.NewReader(csvData))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestParse_BOMUTF8SeDescarta(t *testing.T) {
	csvData := "\xEF\xBB\xBFname,sale_price\nÇay ocağı,450\n"

	parser := NewProductCSVParser()
	requests, _, err := parser.Parse(strings.NewReader(csvData))

	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "Çay ocağı", requests[0].Name)
}

func TestParse_Windows1254SeDecodifica(t *testing.T) {
	// "Fritöz Endüstriyel" codificado en Windows-1254: ö=0xF6, ü=0xFC.
	csvData := "name,sale_price\nFrit\xF6z End\xFCstriyel,2000\n"

	parser := NewProductCSVParser()
	requests, _, err := parser.Parse(strings.NewReader(csvData))

	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "Fritöz Endüstriyel", requests[0].Name)
}
