// Package mirror implementa el espejo remoto de mejor esfuerzo: en cada
// guardado se empuja el juego de datos completo a un almacén REST estilo
// RTDB (PUT {base}/.json reemplaza la raíz). Un fallo aquí se registra y se
// devuelve al llamador como dato, nunca como interrupción; las escrituras
// locales ya habrán terminado.
package mirror

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stock-erp/internal/infrastructure/jsonfile"
	"github.com/tu-usuario/stock-erp/pkg/logger"
)

// Client implementa jsonfile.Mirror sobre HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// New construye el cliente. El timeout cubre todo el push: el espejo no debe
// colgar indefinidamente la acción que disparó el guardado.
func New(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Push reemplaza el contenido completo del espejo con el dataset.
func (c *Client) Push(ctx context.Context, data jsonfile.Dataset) error {
	// Id de correlación para casar el log local con el del lado remoto.
	pushID := uuid.New().String()

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("serializar dataset: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut,
		c.baseURL+"/.json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("preparar petición: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", pushID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("push %s: %w", pushID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("push %s: estado %d: %s", pushID, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	c.log.Info().
		Str("push_id", pushID).
		Int("bytes", len(payload)).
		Dur("elapsed", time.Since(start)).
		Msg("datos subidos al espejo remoto")
	return nil
}
