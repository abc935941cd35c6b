package dto

import "github.com/tu-usuario/horeca-stock/internal/domain/schema"

// ExtractRequest entrada de la extracción IA: texto libre y/o una imagen en
// base64. Al menos uno de los dos debe venir.
type ExtractRequest struct {
	Text        string `json:"text,omitempty"`
	ImageBase64 string `json:"image_base64,omitempty"`
	ImageMIME   string `json:"image_mime,omitempty"` // ej. "image/jpeg"
}

// AssistDraftResponse borrador reconciliado contra el esquema vivo más las
// advertencias para revisión humana (las de reconciliación primero, las del
// modelo después).
type AssistDraftResponse struct {
	Draft    schema.ProductDraft `json:"draft"`
	Warnings []string            `json:"warnings"`
}

// TranscribeRequest audio en base64 a transcribir. Notes es el texto actual
// del campo de descripción; la transcripción se anexa sin interpretarla.
type TranscribeRequest struct {
	AudioBase64 string `json:"audio_base64"`
	AudioMIME   string `json:"audio_mime,omitempty"` // ej. "audio/ogg"
	Notes       string `json:"notes,omitempty"`
}

// TranscribeResponse texto transcrito y las notas resultantes.
type TranscribeResponse struct {
	Text  string `json:"text"`
	Notes string `json:"notes"`
}
