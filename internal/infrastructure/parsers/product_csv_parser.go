// Package parsers implementa la lectura de los CSV de inventario que el
// negocio exporta desde Excel. Los exportes suelen venir en Windows-1254
// (codificación turca) o en UTF-8 con BOM; el parser detecta y normaliza
// ambos antes de leer.
package parsers

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/horeca-stock/internal/application/dto"
	"github.com/tu-usuario/horeca-stock/internal/application/usecase"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var _ usecase.ProductCSVParser = (*ProductCSVParser)(nil)

// Columnas del CSV. Las fijas mapean a campos del producto; cualquier columna
// con prefijo "spec:" va al mapa de valores crudos de especificaciones (la
// clave es lo que sigue al prefijo, ya normalizada por quien exportó).
const (
	colName            = "name"
	colCategoryID      = "category_id"
	colProductType     = "product_type"
	colMaterial        = "material"
	colNotes           = "notes"
	colPurchasePrice   = "purchase_price"
	colSalePrice       = "sale_price"
	colNegotiationType = "negotiation_type"
	colNegotiationVal  = "negotiation_margin"

	specColPrefix = "spec:"
)

// ProductCSVParser implementa usecase.ProductCSVParser.
type ProductCSVParser struct{}

// NewProductCSVParser construye el parser.
func NewProductCSVParser() *ProductCSVParser { return &ProductCSVParser{} }

// Parse lee el CSV completo y devuelve una petición de alta por fila válida
// más las advertencias de las filas saltadas. Solo la cabecera es fatal:
// una fila rota nunca tumba el lote entero.
func (p *ProductCSVParser) Parse(r io.Reader) ([]dto.CreateProductRequest, []string, error) {
	reader := csv.NewReader(normalizeEncoding(r))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("csv: archivo vacío")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("csv: leer cabecera: %w", err)
	}

	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := colIndex[colName]; !ok {
		return nil, nil, fmt.Errorf("csv: falta la columna obligatoria %q", colName)
	}

	var (
		requests []dto.CreateProductRequest
		warnings []string
	)
	line := 1
	for {
		line++
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("fila %d: error de lectura, fila saltada: %v", line, err))
			continue
		}

		get := func(col string) string {
			idx, ok := colIndex[col]
			if !ok || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}

		name := get(colName)
		if name == "" {
			warnings = append(warnings, fmt.Sprintf("fila %d: sin nombre, fila saltada", line))
			continue
		}

		req := dto.CreateProductRequest{
			Name:            name,
			CategoryID:      get(colCategoryID),
			ProductType:     get(colProductType),
			Material:        get(colMaterial),
			Notes:           get(colNotes),
			NegotiationType: get(colNegotiationType),
		}

		ok := true
		for _, price := range []struct {
			col string
			dst *decimal.Decimal
		}{
			{colPurchasePrice, &req.PurchasePrice},
			{colSalePrice, &req.SalePrice},
			{colNegotiationVal, &req.NegotiationMargin},
		} {
			raw := get(price.col)
			if raw == "" {
				continue
			}
			d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("fila %d: %s %q no es un número, fila saltada", line, price.col, raw))
				ok = false
				break
			}
			*price.dst = d
		}
		if !ok {
			continue
		}

		for col, idx := range colIndex {
			if !strings.HasPrefix(col, specColPrefix) || idx >= len(rec) {
				continue
			}
			value := strings.TrimSpace(rec[idx])
			if value == "" {
				continue
			}
			if req.RawSpecs == nil {
				req.RawSpecs = make(map[string]string)
			}
			req.RawSpecs[strings.TrimPrefix(col, specColPrefix)] = value
		}

		requests = append(requests, req)
	}
	return requests, warnings, nil
}

// normalizeEncoding devuelve un reader UTF-8: salta el BOM si lo hay y, si el
// contenido no es UTF-8 válido, lo decodifica como Windows-1254.
func normalizeEncoding(r io.Reader) io.Reader {
	br := bufio.NewReader(r)

	if peeked, err := br.Peek(3); err == nil && peeked[0] == 0xEF && peeked[1] == 0xBB && peeked[2] == 0xBF {
		br.Discard(3)
		return br
	}

	// Muestra inicial: si no es UTF-8 válido asumimos el exporte turco de Excel.
	sample, _ := br.Peek(4096)
	if !utf8.Valid(trimPartialRune(sample)) {
		return transform.NewReader(br, charmap.Windows1254.NewDecoder())
	}
	return br
}

// trimPartialRune descarta los bytes finales que pueden ser una runa UTF-8
// cortada por el límite del Peek, para no marcar como inválido un archivo
// válido.
func trimPartialRune(b []byte) []byte {
	for i := 0; i < 3 && len(b) > 0; i++ {
		r, size := utf8.DecodeLastRune(b)
		if r != utf8.RuneError || size != 1 {
			break
		}
		b = b[:len(b)-1]
	}
	return b
}
