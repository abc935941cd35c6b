package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tu-usuario/horeca-stock/internal/application/ports"
	"github.com/tu-usuario/horeca-stock/internal/domain/schema"
)

// Verificar en tiempo de compilación que GeminiService implementa los puertos.
var (
	_ ports.ExtractionService    = (*GeminiService)(nil)
	_ ports.TranscriptionService = (*GeminiService)(nil)
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// extractionPrompt define el rol del modelo y el formato de salida.
	// Con response_mime_type=application/json Gemini devuelve JSON puro,
	// sin bloques de markdown que limpiar.
	extractionPrompt = `Eres asistente de inventario de un negocio de compraventa de equipo de cocina industrial de segunda mano (freidoras, hornos, parrillas, mesas de trabajo).
Dado texto libre y/o una foto de un equipo, devuelve ÚNICAMENTE un objeto JSON (sin texto adicional) con esta estructura exacta:
{
  "category_name": "<nombre de la categoría tal como la llamaría el negocio, o cadena vacía>",
  "product_type_value": "<identificador corto del tipo en minúsculas con guiones bajos, o cadena vacía>",
  "name": "<nombre comercial del producto, o cadena vacía>",
  "purchase_price": <número o null>,
  "sale_price": <número o null>,
  "negotiation_margin": <número o null>,
  "negotiation_type": "<fixed | percent | cadena vacía>",
  "material": "<material principal, o cadena vacía>",
  "notes": "<observaciones sobre estado y desgaste, o cadena vacía>",
  "extra_specs": {"<clave_tecnica>": "<valor>"},
  "warnings": ["<duda o dato ilegible que el usuario deba revisar>"]
}

Reglas:
- Omite todo dato del que no estés seguro: deja el campo vacío o null, nunca inventes.
- extra_specs usa claves técnicas en minúsculas con guiones bajos (ej. volume_liters, width_cm).
- warnings en español, una frase por duda.`

	// transcriptionPrompt pide solo la transcripción literal del audio.
	transcriptionPrompt = `Transcribe el audio literalmente al texto, en el idioma hablado. Devuelve solo la transcripción, sin comentarios ni formato.`
)

// GeminiService adaptador que implementa los puertos de extracción y
// transcripción llamando a la API REST de Google Gemini. Usa únicamente la
// librería estándar (net/http) para no añadir SDKs externos.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-1.5-flash".
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 30 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"` // base64
}

type genConfig struct {
	ResponseMIMEType string  `json:"responseMimeType,omitempty"` // "application/json" → JSON puro garantizado
	Temperature      float32 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación de los puertos ─────────────────────────────────────────────

// ExtractProduct envía el texto libre y la foto (si hay) a Gemini y devuelve
// la extracción sin reconciliar.
func (s *GeminiService) ExtractProduct(ctx context.Context, text string, image []byte, imageMIME string) (*schema.Extraction, error) {
	var parts []geminiPart
	if text != "" {
		parts = append(parts, geminiPart{Text: text})
	}
	if len(image) > 0 {
		parts = append(parts, geminiPart{InlineData: &inlineData{
			MIMEType: imageMIME,
			Data:     base64.StdEncoding.EncodeToString(image),
		}})
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("AI: extracción sin texto ni imagen")
	}

	raw, err := s.generate(ctx, extractionPrompt, parts, genConfig{
		ResponseMIMEType: "application/json",
		Temperature:      0.2, // baja temperatura para respuestas más deterministas
		MaxOutputTokens:  1024,
	})
	if err != nil {
		return nil, err
	}

	var ext schema.Extraction
	if err := json.Unmarshal([]byte(raw), &ext); err != nil {
		return nil, fmt.Errorf("AI: respuesta del modelo no es JSON válido: %w (respuesta: %s)", err, raw)
	}
	return &ext, nil
}

// Transcribe envía el audio a Gemini y devuelve la transcripción literal.
func (s *GeminiService) Transcribe(ctx context.Context, audio []byte, audioMIME string) (string, error) {
	if len(audio) == 0 {
		return "", fmt.Errorf("AI: transcripción sin audio")
	}
	parts := []geminiPart{{InlineData: &inlineData{
		MIMEType: audioMIME,
		Data:     base64.StdEncoding.EncodeToString(audio),
	}}}

	raw, err := s.generate(ctx, transcriptionPrompt, parts, genConfig{
		Temperature:     0,
		MaxOutputTokens: 2048,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

// generate ejecuta una llamada generateContent y devuelve el texto del primer
// candidato.
func (s *GeminiService) generate(ctx context.Context, system string, parts []geminiPart, cfg genConfig) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: system}},
		},
		Contents: []geminiContent{
			{Role: "user", Parts: parts},
		},
		GenerationConfig: cfg,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Intentar extraer el mensaje de error de Gemini
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}
	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}
	return strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text), nil
}
