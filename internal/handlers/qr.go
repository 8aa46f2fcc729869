package handlers

import (
	"fmt"
	"image/color"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrcanvas.link/internal/encode"
	"github.com/cristianadrielbraun/qrcanvas.link/internal/engine"
	"github.com/cristianadrielbraun/qrcanvas.link/internal/imgrender"
	"github.com/cristianadrielbraun/qrcanvas.link/internal/svgrender"
)

// Rendered sizes are clamped to keep rasters affordable; the viewBox
// makes SVG output scale freely anyway.
const (
	defaultRenderSize = 512
	minRenderSize     = 64
	maxRenderSize     = 4096
)

// normalizeHTTPURL validates and normalizes a URL string for QR generation.
// It ensures an http/https scheme, a non-empty hostname, and returns a cleaned absolute URL.
func normalizeHTTPURL(s string) (string, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return "", fmt.Errorf("URL parameter is required")
	}
	// If missing scheme, default to https
	if !strings.Contains(v, "://") {
		v = "https://" + v
	}
	u, err := url.ParseRequestURI(v)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("only http and https URLs are supported")
	}
	if u.Host == "" {
		return "", fmt.Errorf("URL must include a valid host")
	}
	// Optional: cap length to avoid abuse
	if len(v) > 4096 {
		return "", fmt.Errorf("URL is too long")
	}
	return u.String(), nil
}

// QRCodeHandler renders a QR code for arbitrary data or a URL, with
// customization options for shape, color, margin, border and an
// embedded logo. Unknown option values are rejected, never silently
// replaced.
func (h *Handler) QRCodeHandler(c *gin.Context) {
	data := strings.TrimSpace(c.Query("data"))
	if data == "" {
		rawURL := strings.TrimSpace(c.Query("url"))
		if rawURL == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "data or url parameter is required"})
			return
		}
		normalized, err := normalizeHTTPURL(rawURL)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		data = normalized
	}

	format := strings.ToLower(c.DefaultQuery("format", "svg"))
	if format == "jpeg" {
		format = "jpg"
	}
	if format != "svg" && format != "png" && format != "jpg" {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported format %q", format)})
		return
	}

	size, err := parseSizeParam(c.DefaultQuery("size", strconv.Itoa(defaultRenderSize)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	level, err := engine.ParseLevel(c.DefaultQuery("level", "q"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fgShape, err := engine.ParseShape(c.Query("shape"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	bgShape, err := engine.ParseBackgroundShape(c.Query("bgShape"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fgColor := parseColorParam(c.Query("fg"), color.RGBA{0, 0, 0, 255})
	bgColor := parseColorParam(c.Query("bg"), color.RGBA{255, 255, 255, 255}) // Default white

	var gradient *engine.Gradient
	switch colorMode := c.DefaultQuery("colorMode", "flat"); colorMode {
	case "flat":
	case "gradient":
		gradient = &engine.Gradient{
			Start:  parseColorParam(c.Query("gradientStart"), color.RGBA{0, 0, 0, 255}),
			Middle: parseColorParam(c.Query("gradientMiddle"), color.RGBA{128, 128, 128, 255}),
			End:    parseColorParam(c.Query("gradientEnd"), color.RGBA{255, 0, 0, 255}),
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported color mode %q", colorMode)})
		return
	}

	includeMargin := c.DefaultQuery("includeMargin", "true") == "true"
	var marginSize *float64
	if raw := c.Query("margin"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid margin %q", raw)})
			return
		}
		marginSize = &v
	}

	borderSize := 0
	if raw := c.Query("border"); raw != "" {
		borderSize, err = strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid border %q", raw)})
			return
		}
	}

	imageSettings, err := h.parseLogoParams(c, format)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	matrix, err := encode.Encode(data, level)
	if err != nil {
		h.log.Error("encode failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}

	plan, err := engine.BuildPlan(matrix, engine.Options{
		Size:          size,
		Level:         level,
		FgColor:       fgColor,
		BgColor:       bgColor,
		Gradient:      gradient,
		IncludeMargin: includeMargin,
		MarginSize:    marginSize,
		BgShape:       bgShape,
		FgShape:       fgShape,
		BorderSize:    borderSize,
		Image:         imageSettings,
		Title:         c.Query("title"),
	})
	if err != nil {
		h.log.Error("plan failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to lay out QR code"})
		return
	}

	h.log.Info("qr render",
		"format", format, "size", size, "level", level.String(),
		"shape", fgShape.String(), "bgShape", bgShape.String(), "modules", plan.Total)

	c.Header("Cache-Control", "public, max-age=3600")
	switch format {
	case "svg":
		c.Header("Content-Type", "image/svg+xml")
		c.Status(http.StatusOK)
		if err := svgrender.Render(c.Writer, plan); err != nil {
			h.log.Error("svg write failed", "error", err)
		}
	case "png":
		img, err := imgrender.Render(plan)
		if err != nil {
			h.log.Error("raster failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code image"})
			return
		}
		c.Header("Content-Type", "image/png")
		c.Status(http.StatusOK)
		if err := imgrender.EncodePNG(c.Writer, img); err != nil {
			h.log.Error("png write failed", "error", err)
		}
	case "jpg":
		img, err := imgrender.Render(plan)
		if err != nil {
			h.log.Error("raster failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code image"})
			return
		}
		c.Header("Content-Type", "image/jpeg")
		c.Status(http.StatusOK)
		if err := imgrender.EncodeJPEG(c.Writer, img); err != nil {
			h.log.Error("jpeg write failed", "error", err)
		}
	}
}

// parseLogoParams resolves the logo query parameters into image
// settings. The logo name must refer to a previously uploaded file;
// path separators are rejected. SVG output references the public
// upload URL, raster output reads the file from disk.
func (h *Handler) parseLogoParams(c *gin.Context, format string) (*engine.ImageSettings, error) {
	logo := c.Query("logo")
	if logo == "" {
		return nil, nil
	}
	if filepath.Base(logo) != logo || logo == "." || logo == ".." {
		return nil, fmt.Errorf("invalid logo name")
	}
	diskPath := filepath.Join(h.cfg.UploadDir, logo)
	if _, err := os.Stat(diskPath); err != nil {
		return nil, fmt.Errorf("unknown logo %q", logo)
	}

	src := diskPath
	if format == "svg" {
		src = "/uploads/" + logo
	}
	settings := &engine.ImageSettings{
		Src:      src,
		Excavate: c.DefaultQuery("excavate", "true") == "true",
	}

	var err error
	if settings.Width, err = floatParam(c, "logoWidth"); err != nil {
		return nil, err
	}
	if settings.Height, err = floatParam(c, "logoHeight"); err != nil {
		return nil, err
	}
	if settings.X, err = floatPtrParam(c, "logoX"); err != nil {
		return nil, err
	}
	if settings.Y, err = floatPtrParam(c, "logoY"); err != nil {
		return nil, err
	}
	return settings, nil
}

func parseSizeParam(raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q", raw)
	}
	if v < minRenderSize {
		v = minRenderSize
	}
	if v > maxRenderSize {
		v = maxRenderSize
	}
	return v, nil
}

func floatParam(c *gin.Context, name string) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return v, nil
}

func floatPtrParam(c *gin.Context, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	return &v, nil
}

func parseColorParam(param string, defaultColor color.RGBA) color.RGBA {
	if param == "" {
		return defaultColor
	}

	// Handle transparent background
	if strings.ToLower(param) == "transparent" {
		return color.RGBA{0, 0, 0, 0} // Fully transparent
	}

	// Remove # if present
	param = strings.TrimPrefix(param, "#")

	// Ensure it's 6 characters
	if len(param) != 6 {
		return defaultColor
	}

	// Parse hex values
	r, err1 := strconv.ParseUint(param[0:2], 16, 8)
	g, err2 := strconv.ParseUint(param[2:4], 16, 8)
	b, err3 := strconv.ParseUint(param[4:6], 16, 8)

	if err1 != nil || err2 != nil || err3 != nil {
		return defaultColor
	}

	return color.RGBA{uint8(r), uint8(g), uint8(b), 255}
}
