// directory/http_client.go
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"partidas-service/utils"

	log "github.com/sirupsen/logrus"
)

const (
	juegoPartidasPath   = "/api/v1/juegos/partidas"
	jugadorPartidasPath = "/api/v1/jugadores/partidas"
)

type partidaIDsResponse struct {
	PartidaIDs []int64 `json:"partida_ids"`
}

// HTTPDirectory asks the service that owns juegos and jugadores which
// partidas they are linked to.
type HTTPDirectory struct {
	BaseURL string
	Token   string
	Client  *http.Client
}

func NewHTTPDirectory(baseURL, token string) (*HTTPDirectory, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid directory URL '%s': %w", baseURL, err)
	}
	return &HTTPDirectory{
		BaseURL: baseURL,
		Token:   token,
		Client:  utils.HTTPClient,
	}, nil
}

func (d *HTTPDirectory) PartidaIDsByJuegoNombre(ctx context.Context, nombre string) ([]int64, error) {
	return d.lookup(ctx, juegoPartidasPath, "nombre", nombre)
}

func (d *HTTPDirectory) PartidaIDsByJugadorApodo(ctx context.Context, apodo string) ([]int64, error) {
	return d.lookup(ctx, jugadorPartidasPath, "apodo", apodo)
}

func (d *HTTPDirectory) lookup(ctx context.Context, path, param, value string) ([]int64, error) {
	base, err := url.Parse(d.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid directory URL '%s': %w", d.BaseURL, err)
	}
	endpoint := base.JoinPath(path)
	q := endpoint.Query()
	q.Set(param, value)
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request to %s: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if d.Token != "" {
		req.Header.Set("X-Service-Token", d.Token)
	}

	resp, err := d.Client.Do(req)
	if err != nil {
		log.Errorf("[DIRECTORY] request to %s failed: %v", endpoint.Path, err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		// unknown juego/jugador: nothing is linked to it
		return []int64{}, nil
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Errorf("[DIRECTORY] %s returned %d: %s", endpoint.Path, resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var out partidaIDsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode directory response: %w", err)
	}
	if out.PartidaIDs == nil {
		out.PartidaIDs = []int64{}
	}
	return out.PartidaIDs, nil
}
