package schema

import (
	"fmt"
	"strconv"

	"github.com/tu-usuario/horeca-stock/internal/domain/entity"
)

// Codec entre los inputs crudos del formulario (strings) y los valores
// tipados almacenados en extra_specs. La especificación parcial siempre es
// legal: un campo sin valor simplemente no aparece en el resultado, nunca se
// rellena con cero ni con string vacío.

// Encode recorre los campos efectivos en orden y construye el mapa de valores
// tipados a almacenar:
//
//   - valor ausente o string vacío → el campo se omite del resultado;
//   - number → parse como float; Encode asume que el caller ya validó el
//     string con ValidateRaw, así que un valor no numérico se descarta en vez
//     de reintentar la validación aquí;
//   - select → el string pasa tal cual, sin re-validar contra field.Options
//     (se confía en que la UI solo ofrece opciones válidas; brecha conocida,
//     cubierta por tests);
//   - text → el string pasa tal cual.
//
// Las claves de rawValues que no correspondan a ningún campo efectivo no se
// codifican. El resultado es un mapa, el orden no significa nada.
func Encode(fields []entity.SpecField, rawValues map[string]string) map[string]any {
	specs := make(map[string]any)
	for _, f := range fields {
		raw, ok := rawValues[f.Name]
		if !ok || raw == "" {
			continue
		}
		switch f.Type {
		case entity.FieldNumber:
			n, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				continue // entrada pre-validada por contrato; ver ValidateRaw
			}
			specs[f.Name] = n
		default:
			specs[f.Name] = raw
		}
	}
	return specs
}

// Decode es el sentido almacenamiento→formulario: stringifica cada valor
// guardado. Las claves presentes en el storage pero ausentes de la lista de
// campos vigente (deriva de esquema) se conservan en el mapa crudo: la UI no
// las renderiza pero jamás se podan de forma destructiva al cargar.
func Decode(storedSpecs map[string]any) map[string]string {
	raw := make(map[string]string, len(storedSpecs))
	for name, v := range storedSpecs {
		raw[name] = stringifyValue(v)
	}
	return raw
}

// ValidateRaw es la frontera de validación del caller, previa a Encode:
// devuelve un mensaje por cada campo number cuyo valor no vacío no parsea como
// float. Un mapa vacío significa entrada limpia.
func ValidateRaw(fields []entity.SpecField, rawValues map[string]string) map[string]string {
	problems := make(map[string]string)
	for _, f := range fields {
		if f.Type != entity.FieldNumber {
			continue
		}
		raw, ok := rawValues[f.Name]
		if !ok || raw == "" {
			continue
		}
		if _, err := strconv.ParseFloat(raw, 64); err != nil {
			problems[f.Name] = fmt.Sprintf("%s debe ser un valor numérico", f.Label)
		}
	}
	return problems
}

// stringifyValue convierte un valor almacenado (o propuesto por la IA) a su
// representación cruda de formulario. Los números se formatean sin ceros de
// relleno para que el round-trip Encode∘Decode sea estable.
func stringifyValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
