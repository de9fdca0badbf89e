// Package barcode genera las imágenes de código de barras y QR que muestra
// el diálogo de códigos. Ambas se derivan siempre de la referencia del
// producto; el campo barcode almacenado no interviene.
package barcode

import (
	"bytes"
	"fmt"
	"image/png"
	"strings"

	bc "github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/qr"

	"github.com/tu-usuario/stock-erp/internal/domain"
)

// Dimensiones por defecto de las imágenes generadas.
const (
	DefaultWidth  = 400
	DefaultHeight = 120
	DefaultQRSize = 300
)

// Code128PNG codifica la referencia en Code 128 y la escala al tamaño dado.
// Dimensiones no positivas usan las de por defecto.
func Code128PNG(reference string, width, height int) ([]byte, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, fmt.Errorf("referencia vacía: %w", domain.ErrInvalidInput)
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	code, err := code128.Encode(reference)
	if err != nil {
		return nil, fmt.Errorf("codificar %q: %w", reference, err)
	}
	scaled, err := bc.Scale(code, width, height)
	if err != nil {
		return nil, fmt.Errorf("escalar código: %w", err)
	}
	return encodePNG(scaled)
}

// QRPNG codifica la referencia en un QR cuadrado del tamaño dado.
func QRPNG(reference string, size int) ([]byte, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, fmt.Errorf("referencia vacía: %w", domain.ErrInvalidInput)
	}
	if size <= 0 {
		size = DefaultQRSize
	}
	code, err := qr.Encode(reference, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("codificar %q: %w", reference, err)
	}
	scaled, err := bc.Scale(code, size, size)
	if err != nil {
		return nil, fmt.Errorf("escalar QR: %w", err)
	}
	return encodePNG(scaled)
}

func encodePNG(img bc.Barcode) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("codificar PNG: %w", err)
	}
	return buf.Bytes(), nil
}
