// Package backend es el cliente HTTP de la API REST del negocio.
//
// Cada petición lleva Authorization: Bearer <token> cuando la sesión tiene token.
// Los errores no-2xx se devuelven como *APIError con el mensaje del backend y los
// fallos de transporte como *UnreachableError; ambos envuelven el error de dominio.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/bizdash/internal/domain"
	"github.com/jhoicas/bizdash/pkg/logger"
)

const maxResponseBytes = 4 << 20 // 4 MiB

// TokenSource provee el bearer token de la sesión actual.
type TokenSource interface {
	Token() string
}

// TokenFunc adapta una función a TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// Client cliente HTTP con base URL, timeout y token de sesión.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        *logger.Logger
}

// NewClient construye el cliente. tokens puede ser nil (peticiones anónimas).
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		log:        log.Component("backend"),
	}
}

// request petición a la API.
type request struct {
	method  string
	path    string
	query   url.Values
	body    any
	headers map[string]string
	token   *string // si no es nil, reemplaza al de la sesión
}

// Do ejecuta method path con body JSON opcional y decodifica la respuesta en out.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	return c.do(ctx, request{method: method, path: path, query: query, body: in}, out)
}

func (c *Client) do(ctx context.Context, r request, out any) error {
	endpoint := c.baseURL + "/" + strings.TrimLeft(r.path, "/")
	if len(r.query) > 0 {
		endpoint += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("backend: serializar request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, body)
	if err != nil {
		return fmt.Errorf("backend: crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	token := ""
	if r.token != nil {
		token = *r.token
	} else if c.tokens != nil {
		token = c.tokens.Token()
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("backend: %s %s cancelado: %w", r.method, r.path, ctx.Err())
		}
		c.log.Warn().Err(err).Str("method", r.method).Str("path", r.path).Msg("backend inalcanzable")
		return &UnreachableError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &UnreachableError{Err: fmt.Errorf("leer respuesta: %w", err)}
	}
	c.log.Debug().
		Str("method", r.method).
		Str("path", r.path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("backend request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, raw)
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(unwrapEnvelope(raw), out); err != nil {
		return fmt.Errorf("backend: respuesta ilegible de %s: %v: %w", r.path, err, domain.ErrBackendUnavailable)
	}
	return nil
}

// unwrapEnvelope devuelve X para cuerpos {"data": X} o {"success": true, "data": X}.
func unwrapEnvelope(raw []byte) []byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return raw
	}
	var env map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return raw
	}
	data, ok := env["data"]
	if !ok || isNull(data) {
		return raw
	}
	return data
}

func isNull(v json.RawMessage) bool {
	t := bytes.TrimSpace(v)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}

// decodeList acepta un arreglo o un objeto que lo contenga bajo alguna de las claves.
// Sin arreglo devuelve un slice vacío.
func decodeList[T any](raw json.RawMessage, keys ...string) ([]T, error) {
	out := []T{}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || isNull(trimmed) {
		return out, nil
	}
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, err
		}
		if out == nil {
			out = []T{}
		}
		return out, nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, err
	}
	for _, k := range append(keys, "items", "results", "rows") {
		if v, ok := obj[k]; ok && !isNull(v) {
			return decodeList[T](v)
		}
	}
	return out, nil
}

// getList GET que devuelve una lista tolerante.
func getList[T any](ctx context.Context, c *Client, path string, query url.Values, keys ...string) ([]T, error) {
	var raw json.RawMessage
	if err := c.Do(ctx, http.MethodGet, path, query, nil, &raw); err != nil {
		return nil, err
	}
	rows, err := decodeList[T](raw, keys...)
	if err != nil {
		return nil, fmt.Errorf("backend: lista ilegible de %s: %v: %w", path, err, domain.ErrBackendUnavailable)
	}
	return rows, nil
}

// getOne GET de un recurso; el objeto puede venir directo o bajo alguna de las claves.
func getOne[T any](ctx context.Context, c *Client, method, path string, in any, headers map[string]string, keys ...string) (*T, error) {
	var raw json.RawMessage
	if err := c.do(ctx, request{method: method, path: path, body: in, headers: headers}, &raw); err != nil {
		return nil, err
	}
	raw = pickKey(raw, keys...)
	var out T
	if len(bytes.TrimSpace(raw)) > 0 && !isNull(raw) {
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, fmt.Errorf("backend: respuesta ilegible de %s: %v: %w", path, err, domain.ErrBackendUnavailable)
		}
	}
	return &out, nil
}

// pickKey si el objeto trae alguna de las claves, devuelve su valor.
func pickKey(raw json.RawMessage, keys ...string) json.RawMessage {
	if len(keys) == 0 {
		return raw
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return raw
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return raw
	}
	for _, k := range keys {
		if v, ok := obj[k]; ok && !isNull(v) {
			return v
		}
	}
	return raw
}

func escape(id fmt.Stringer) string {
	return url.PathEscape(id.String())
}
