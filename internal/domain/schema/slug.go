// Package schema implementa el esquema dinámico de especificaciones técnicas:
// normalización de identificadores, mutaciones del draft de categoría,
// resolución de campos efectivos, codec de valores y reconciliación de
// extracciones IA. Todas las operaciones son funciones puras sobre valores en
// memoria; la persistencia es responsabilidad de los repositorios.
package schema

import "strings"

// turkishReplacer translitera los caracteres turcos a su equivalente ASCII
// antes de normalizar. İ se mapea explícitamente porque strings.ToLower lo
// convierte en "i" + punto combinante (U+0307), que rompería el identificador.
var turkishReplacer = strings.NewReplacer(
	"ş", "s", "Ş", "s",
	"ç", "c", "Ç", "c",
	"ğ", "g", "Ğ", "g",
	"ü", "u", "Ü", "u",
	"ö", "o", "Ö", "o",
	"ı", "i", "İ", "i",
)

// Normalize convierte una etiqueta libre en un identificador estable y ASCII:
// minúsculas, transliteración turca (ş→s, ç→c, ğ→g, ü→u, ö→o, ı→i), toda
// secuencia fuera de [a-z0-9] colapsa a un solo guion bajo y se recortan los
// guiones bajos de los extremos.
//
// Es determinista, pura y total: siempre devuelve un string, posiblemente
// vacío si la etiqueta no tiene contenido alfanumérico (los callers deben
// rechazar ese caso). No es inyectiva: dos etiquetas distintas pueden producir
// el mismo identificador; el manejo de colisiones es del caller.
func Normalize(label string) string {
	lowered := strings.ToLower(turkishReplacer.Replace(label))

	var b strings.Builder
	b.Grow(len(lowered))
	pendingSep := false
	for _, r := range lowered {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !alnum {
			pendingSep = b.Len() > 0 // nunca guion bajo inicial
			continue
		}
		if pendingSep {
			b.WriteByte('_')
			pendingSep = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
