// Package transport implementa el cliente HTTP único hacia el API del taller.
//
// Orden de hooks fijo para toda llamada: el hook de request corre antes de
// enviar (bearer si hay token, Content-Type, X-Request-ID) y el hook de
// respuesta corre antes de que el llamador vea nada (un 401 limpia la sesión
// y dispara la redirección a login, pero el error igual se propaga para que
// el llamador detenga sus spinners).
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Taller-console/internal/session"
	"github.com/jhoicas/Taller-console/pkg/logger"
)

const (
	defaultTimeout = 15 * time.Second
	maxBodyBytes   = 4 << 20 // 4 MB
)

// Client cliente HTTP configurado contra el API del taller.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	sesion         session.Store
	onUnauthorized func()
	log            *logger.Logger
}

// Option opción de construcción del cliente.
type Option func(*Client)

// WithHTTPClient reemplaza el *http.Client subyacente (tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithOnUnauthorized registra el callback que fuerza la navegación a login
// tras un 401. Se invoca después de limpiar la sesión y antes de devolver el
// error al llamador.
func WithOnUnauthorized(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// New construye el cliente. baseURL sin barra final; sesion aporta el token.
func New(baseURL string, sesion session.Store, log *logger.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		sesion:     sesion,
		log:        log.Component("transport"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get GET path con query opcional; decodifica JSON en out (out nil descarta el cuerpo).
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post POST path con body JSON; decodifica la respuesta en out si no es nil.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Patch PATCH path con body JSON; decodifica la respuesta en out si no es nil.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

// Delete DELETE path; descarta el cuerpo de respuesta.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("transport: serializar body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return fmt.Errorf("transport: crear request: %w", err)
	}

	// Hook de request: headers por defecto + bearer solo si hay token.
	requestID := uuid.New().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if tok, ok := c.sesion.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("transport: %s %s cancelado: %w", method, path, ctx.Err())
		}
		return fmt.Errorf("transport: %s %s fallo de red: %w", method, path, err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("transport: leer respuesta de %s %s: %w", method, path, err)
	}

	// Hook de respuesta: un 401 limpia la sesión y fuerza la navegación a
	// login, pero el error sigue hacia el llamador.
	if resp.StatusCode == http.StatusUnauthorized {
		c.sesion.Clear()
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		c.log.Warn().Str("request_id", requestID).Str("path", path).Msg("sesión expirada (401), redirigiendo a login")
		return parseAPIError(resp.StatusCode, rawBody)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := parseAPIError(resp.StatusCode, rawBody)
		c.log.Debug().Str("request_id", requestID).Str("path", path).Int("status", resp.StatusCode).Msg("respuesta de error del API")
		return apiErr
	}

	if out != nil && len(rawBody) > 0 {
		if err := json.Unmarshal(rawBody, out); err != nil {
			return fmt.Errorf("transport: decodificar respuesta de %s %s: %w", method, path, err)
		}
	}
	return nil
}
