package imgrender

import (
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/yeqown/go-qrcode/writer/standard/imgkit"

	"github.com/cristianadrielbraun/qrcanvas.link/internal/engine"
)

// drawLogo loads the plan's image from disk and composites it over
// the symbol. The placement is converted from module units back to
// whole pixels; the logo is pre-scaled to that box, stretching like
// the SVG frontend does.
func drawLogo(dc *gg.Context, p *engine.Plan, unit float64) error {
	m := float64(p.Margin)
	px := int(math.Round((p.Image.X + m) * unit))
	py := int(math.Round((p.Image.Y + m) * unit))
	pw := int(math.Round(p.Image.W * unit))
	ph := int(math.Round(p.Image.H * unit))
	if pw <= 0 || ph <= 0 {
		return nil
	}

	logo, err := loadLogo(p.Image.Src, pw, ph)
	if err != nil {
		return fmt.Errorf("failed to load logo: %w", err)
	}

	dc.Push()
	dc.Identity()
	dc.DrawImage(logo, px, py)
	dc.Pop()
	return nil
}

// loadLogo reads the logo at path and returns it scaled to w by h
// pixels. SVG logos are rasterized at the target size; raster formats
// are decoded and resampled.
func loadLogo(path string, w, h int) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".svg") {
		icon, err := oksvg.ReadIconStream(f)
		if err != nil {
			return nil, err
		}
		icon.SetTarget(0, 0, float64(w), float64(h))
		img := image.NewRGBA(image.Rect(0, 0, w, h))
		icon.Draw(rasterx.NewDasher(w, h, rasterx.NewScannerGV(w, h, img, img.Bounds())), 1)
		return img, nil
	}

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return imgkit.Scale(img, image.Rect(0, 0, w, h), nil), nil
}
