package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/tu-usuario/horeca-stock/internal/application/dto"
	"github.com/tu-usuario/horeca-stock/internal/application/ports"
	"github.com/tu-usuario/horeca-stock/internal/domain"
	"github.com/tu-usuario/horeca-stock/internal/domain/entity"
	"github.com/tu-usuario/horeca-stock/internal/domain/repository"
	"github.com/tu-usuario/horeca-stock/internal/domain/schema"
)

// AssistUseCase orquesta la entrada de datos asistida por IA: llama al
// colaborador de extracción y reconcilia el resultado contra el esquema vivo.
// La reconciliación nunca falla: lo peor que recibe el caller es un borrador
// parcialmente vacío más la lista exhaustiva de advertencias. Cada llamada
// externa lleva timeout para no bloquear los goroutines del servidor.
type AssistUseCase struct {
	extractor    ports.ExtractionService
	transcriber  ports.TranscriptionService
	categoryRepo repository.CategoryRepository
}

// NewAssistUseCase construye el caso de uso.
func NewAssistUseCase(extractor ports.ExtractionService, transcriber ports.TranscriptionService, categoryRepo repository.CategoryRepository) *AssistUseCase {
	return &AssistUseCase{extractor: extractor, transcriber: transcriber, categoryRepo: categoryRepo}
}

// ExtractDraft corre la extracción sobre texto y/o imagen y devuelve el
// borrador reconciliado. Las categorías se leen frescas en cada llamada: la
// reconciliación siempre corre contra el esquema vigente.
func (uc *AssistUseCase) ExtractDraft(ctx context.Context, in dto.ExtractRequest) (*dto.AssistDraftResponse, error) {
	if uc.extractor == nil {
		return nil, fmt.Errorf("GEMINI_API_KEY no configurado")
	}
	if in.Text == "" && in.ImageBase64 == "" {
		return nil, domain.ErrInvalidInput
	}
	var image []byte
	if in.ImageBase64 != "" {
		decoded, err := base64.StdEncoding.DecodeString(in.ImageBase64)
		if err != nil {
			return nil, fmt.Errorf("imagen base64 inválida: %w", err)
		}
		image = decoded
	}

	// Timeout de 20 s: la extracción multimodal puede demorar varios segundos.
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	extraction, err := uc.extractor.ExtractProduct(ctx, in.Text, image, in.ImageMIME)
	if err != nil {
		return nil, fmt.Errorf("extracción IA: %w", err)
	}

	categories, err := uc.categoryRepo.List(true)
	if err != nil {
		return nil, err
	}
	live := make([]entity.Category, 0, len(categories))
	for _, c := range categories {
		live = append(live, *c)
	}

	draft, warnings := schema.Reconcile(live, *extraction)
	return &dto.AssistDraftResponse{Draft: draft, Warnings: warnings}, nil
}

// Transcribe transcribe el audio y anexa el texto a las notas existentes sin
// interpretarlo.
func (uc *AssistUseCase) Transcribe(ctx context.Context, in dto.TranscribeRequest) (*dto.TranscribeResponse, error) {
	if uc.transcriber == nil {
		return nil, fmt.Errorf("GEMINI_API_KEY no configurado")
	}
	if in.AudioBase64 == "" {
		return nil, domain.ErrInvalidInput
	}
	audio, err := base64.StdEncoding.DecodeString(in.AudioBase64)
	if err != nil {
		return nil, fmt.Errorf("audio base64 inválido: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	text, err := uc.transcriber.Transcribe(ctx, audio, in.AudioMIME)
	if err != nil {
		return nil, fmt.Errorf("transcripción: %w", err)
	}

	notes := in.Notes
	if notes == "" {
		notes = text
	} else if text != "" {
		notes = notes + "\n" + text
	}
	return &dto.TranscribeResponse{Text: text, Notes: notes}, nil
}
