// Package encode turns text into a QR module matrix. It wraps the
// yeqown encoder behind a matrix-capturing writer; everything visual
// happens downstream in the engine and the renderers.
package encode

import (
	"errors"
	"fmt"

	qrcode "github.com/yeqown/go-qrcode/v2"

	"github.com/cristianadrielbraun/qrcanvas.link/internal/engine"
)

// ErrEmptyInput rejects encode requests with nothing to encode.
var ErrEmptyInput = errors.New("encode: empty input")

// matrixWriter satisfies qrcode.Writer and captures the encoded module
// grid instead of producing an image.
type matrixWriter struct {
	rows [][]bool
}

func (w *matrixWriter) Write(mat qrcode.Matrix) error {
	rows := make([][]bool, mat.Height())
	for i := range rows {
		rows[i] = make([]bool, mat.Width())
	}
	mat.Iterate(qrcode.IterDirection_ROW, func(x, y int, v qrcode.QRValue) {
		rows[y][x] = v.IsSet()
	})
	w.rows = rows
	return nil
}

func (w *matrixWriter) Close() error { return nil }

func levelOption(l engine.Level) qrcode.EncodeOption {
	switch l {
	case engine.LevelL:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionLow)
	case engine.LevelQ:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart)
	case engine.LevelH:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionHighest)
	}
	return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionMedium)
}

// Encode builds the QR symbol for text at the given error-correction
// level and returns its module matrix, without a quiet zone.
func Encode(text string, level engine.Level) (engine.Matrix, error) {
	if text == "" {
		return engine.Matrix{}, ErrEmptyInput
	}
	qrc, err := qrcode.NewWith(text, levelOption(level))
	if err != nil {
		return engine.Matrix{}, fmt.Errorf("failed to build QR code: %w", err)
	}
	var w matrixWriter
	if err := qrc.Save(&w); err != nil {
		return engine.Matrix{}, fmt.Errorf("failed to read QR matrix: %w", err)
	}
	return engine.NewMatrix(w.rows)
}
