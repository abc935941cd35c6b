package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/horeca-stock/internal/application/ports"
)

// Verificar en tiempo de compilación que Client implementa el puerto.
var _ ports.MarketResearchService = (*Client)(nil)

// Client consulta el servicio externo de investigación de precios de mercado.
// El scraping de portales de anuncios vive del otro lado: aquí solo se pide
// el resumen numérico ya calculado.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient construye el cliente. baseURL sin barra final.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// priceSummaryPayload es el JSON que devuelve el servicio externo.
type priceSummaryPayload struct {
	Query      string          `json:"query"`
	SampleSize int             `json:"sample_size"`
	Currency   string          `json:"currency"`
	Min        decimal.Decimal `json:"min"`
	Max        decimal.Decimal `json:"max"`
	Average    decimal.Decimal `json:"average"`
	Median     decimal.Decimal `json:"median"`
}

// ResearchPrices pide al servicio externo el resumen de precios para query.
func (c *Client) ResearchPrices(ctx context.Context, query string) (*ports.PriceSummary, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("market: MARKET_BASE_URL no configurado")
	}

	endpoint := fmt.Sprintf("%s/v1/prices?q=%s", c.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("market: crear HTTP request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("market: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("market: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return nil, fmt.Errorf("market: leer respuesta: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("market: HTTP %d: %s", resp.StatusCode, rawBody)
	}

	var payload priceSummaryPayload
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return nil, fmt.Errorf("market: deserializar respuesta: %w", err)
	}

	return &ports.PriceSummary{
		Query:      payload.Query,
		SampleSize: payload.SampleSize,
		Currency:   payload.Currency,
		Min:        payload.Min,
		Max:        payload.Max,
		Average:    payload.Average,
		Median:     payload.Median,
	}, nil
}
