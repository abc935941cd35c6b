package ports

import (
	"context"

	"github.com/tu-usuario/horeca-stock/internal/domain/schema"
)

// ExtractionService define el puerto de salida hacia el modelo de extracción
// (imagen/texto → adivinanza estructurada de producto). Cualquier adaptador
// (Gemini, mock) debe implementar esta interfaz; la aplicación solo conoce
// este contrato (DIP). El núcleo trata cada campo del resultado como opcional.
type ExtractionService interface {
	// ExtractProduct analiza texto libre y/o una imagen y devuelve la
	// extracción sin reconciliar. El contexto debe llevar timeout para no
	// bloquear goroutines del servidor en llamadas externas.
	ExtractProduct(ctx context.Context, text string, image []byte, imageMIME string) (*schema.Extraction, error)
}

// TranscriptionService define el puerto de transcripción de audio. El núcleo
// solo anexa el texto devuelto a un campo de descripción libre, sin
// interpretarlo.
type TranscriptionService interface {
	Transcribe(ctx context.Context, audio []byte, audioMIME string) (string, error)
}
