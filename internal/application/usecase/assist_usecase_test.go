package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/horeca-stock/internal/application/dto"
	"github.com/tu-usuario/horeca-stock/internal/application/usecase"
	"github.com/tu-usuario/horeca-stock/internal/domain"
	"github.com/tu-usuario/horeca-stock/internal/domain/schema"
)

func TestAssistExtractDraft_ReconciliaContraElEsquemaVivo(t *testing.T) {
	catRepo := newFakeCategoryRepo(categoriaFritozler())
	extractor := &fakeExtractor{result: &schema.Extraction{
		CategoryName:     "Fritözler",
		ProductTypeValue: "tek_hazneli",
		ExtraSpecs:       map[string]any{"guc_kw": 3.5, "vacio": ""},
		Warnings:         []string{"imagen borrosa"},
	}}
	uc := usecase.NewAssistUseCase(extractor, nil, catRepo)

	resp, err := uc.ExtractDraft(context.Background(), dto.ExtractRequest{Text: "fritöz tek hazneli"})
	require.NoError(t, err)
	assert.Equal(t, "cat-fritoz", resp.Draft.CategoryID)
	assert.Equal(t, "tek_hazneli", resp.Draft.ProductType)
	assert.Equal(t, "Tek Hazneli", resp.Draft.Name)
	assert.Equal(t, map[string]string{"guc_kw": "3.5"}, resp.Draft.RawSpecs)
	// Advertencias del modelo al final, tras las de reconciliación.
	require.NotEmpty(t, resp.Warnings)
	assert.Equal(t, "imagen borrosa", resp.Warnings[len(resp.Warnings)-1])
}

func TestAssistExtractDraft_CategoriaDesconocidaNoEsFatal(t *testing.T) {
	catRepo := newFakeCategoryRepo(categoriaFritozler())
	extractor := &fakeExtractor{result: &schema.Extraction{
		CategoryName: "Izgaralar",
		Name:         "Sanayi Izgara",
	}}
	uc := usecase.NewAssistUseCase(extractor, nil, catRepo)

	resp, err := uc.ExtractDraft(context.Background(), dto.ExtractRequest{Text: "ızgara"})
	require.NoError(t, err, "la reconciliación nunca falla: borrador parcial + advertencias")
	assert.Empty(t, resp.Draft.CategoryID)
	assert.Equal(t, "Sanayi Izgara", resp.Draft.Name)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "Izgaralar")
}

func TestAssistExtractDraft_EntradaVacia(t *testing.T) {
	uc := usecase.NewAssistUseCase(&fakeExtractor{}, nil, newFakeCategoryRepo())
	_, err := uc.ExtractDraft(context.Background(), dto.ExtractRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAssistExtractDraft_Base64Invalido(t *testing.T) {
	uc := usecase.NewAssistUseCase(&fakeExtractor{}, nil, newFakeCategoryRepo())
	_, err := uc.ExtractDraft(context.Background(), dto.ExtractRequest{ImageBase64: "%%%no-base64%%%"})
	assert.Error(t, err)
}

type fakeTranscriber struct{ text string }

func (f *fakeTranscriber) Transcribe(_ context.Context, _ []byte, _ string) (string, error) {
	return f.text, nil
}

func TestAssistTranscribe_AnexaSinInterpretar(t *testing.T) {
	uc := usecase.NewAssistUseCase(nil, &fakeTranscriber{text: "motor revisado, falta termostato"}, newFakeCategoryRepo())

	resp, err := uc.Transcribe(context.Background(), dto.TranscribeRequest{
		AudioBase64: "aGVsbG8=", // contenido irrelevante para el fake
		Notes:       "Nota previa.",
	})
	require.NoError(t, err)
	assert.Equal(t, "motor revisado, falta termostato", resp.Text)
	assert.Equal(t, "Nota previa.\nmotor revisado, falta termostato", resp.Notes)
}
