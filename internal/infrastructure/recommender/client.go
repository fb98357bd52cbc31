package recommender

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/jhoicas/tienda-api/internal/application/ports"
	"github.com/jhoicas/tienda-api/internal/domain"
)

var _ ports.RecommenderModel = (*Client)(nil)

const breakerName = "recommender-model"

// Options configuración del cliente del servidor de modelo.
type Options struct {
	BaseURL          string        // ej. http://localhost:8000
	Timeout          time.Duration // timeout de red por petición
	FailureThreshold uint32        // fallos consecutivos que abren el breaker
	OpenTimeout      time.Duration // tiempo abierto antes de pasar a half-open
	HTTPClient       *http.Client  // opcional (tests)
}

// Client adaptador HTTP del servidor de recomendaciones (filtrado colaborativo),
// protegido con un circuit breaker para no encadenar timeouts cuando el modelo está caído.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker[[]string]
}

// recommendResponse cuerpo de GET /recommend/{user_id}.
type recommendResponse struct {
	UserID          string   `json:"user_id"`
	Recommendations []string `json:"recommendations"`
}

// NewClient construye el cliente. Valores cero en opts toman defaults razonables.
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.FailureThreshold == 0 {
		opts.FailureThreshold = 5
	}
	if opts.OpenTimeout <= 0 {
		opts.OpenTimeout = 30 * time.Second
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	threshold := opts.FailureThreshold
	cb := gobreaker.NewCircuitBreaker[[]string](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     opts.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// La cancelación del llamador no es culpa del modelo.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
				Msg("circuit breaker cambió de estado")
		},
	})

	return &Client{baseURL: opts.BaseURL, httpClient: httpClient, cb: cb}
}

// RecommendVariants pide al modelo hasta n variantes para el usuario.
// 404 significa "sin recomendaciones" y devuelve lista vacía sin error.
// Con el breaker abierto devuelve domain.ErrUpstreamUnavailable sin tocar la red.
func (c *Client) RecommendVariants(ctx context.Context, userID string, n int) ([]string, error) {
	ids, err := c.cb.Execute(func() ([]string, error) {
		return c.fetch(ctx, userID, n)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("recommender: %w: %v", domain.ErrUpstreamUnavailable, err)
		}
		return nil, err
	}
	return ids, nil
}

// State estado actual del breaker (closed, half-open, open).
func (c *Client) State() string {
	return c.cb.State().String()
}

func (c *Client) fetch(ctx context.Context, userID string, n int) ([]string, error) {
	endpoint := fmt.Sprintf("%s/recommend/%s?n=%s", c.baseURL, url.PathEscape(userID), strconv.Itoa(n))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("recommender: crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("recommender: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("recommender: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return nil, fmt.Errorf("recommender: leer respuesta: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return []string{}, nil
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("recommender: HTTP %d: %s", resp.StatusCode, truncate(string(rawBody), 200))
	}

	var body recommendResponse
	if err := json.Unmarshal(rawBody, &body); err != nil {
		return nil, fmt.Errorf("recommender: deserializar respuesta: %w", err)
	}
	if body.Recommendations == nil {
		return []string{}, nil
	}
	return body.Recommendations, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
