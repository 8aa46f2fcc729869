// Package components holds the page building blocks for the QR
// generator UI.
package components

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
)

type selectOption struct {
	value, label string
}

var (
	formatOptions = []selectOption{
		{"svg", "SVG"},
		{"png", "PNG"},
		{"jpg", "JPG"},
	}
	shapeOptions = []selectOption{
		{"square", "Square"},
		{"circle", "Circle"},
		{"star", "Star"},
		{"heart", "Heart"},
	}
	bgShapeOptions = []selectOption{
		{"square", "Square"},
		{"circle", "Circle"},
	}
	levelOptions = []selectOption{
		{"l", "L (7%)"},
		{"m", "M (15%)"},
		{"q", "Q (25%)"},
		{"h", "H (30%)"},
	}
)

// QRForm renders the generator form and the live preview image. The
// preview is rebuilt by web/static/app.js, which maps the form state
// onto /api/qr query parameters.
func QRForm(d FormDefaults) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, renderForm(d))
		return err
	})
}

func renderForm(d FormDefaults) string {
	var b strings.Builder
	b.WriteString(`<form id="qr-form" class="grid gap-4 md:grid-cols-2" onsubmit="return false">`)

	b.WriteString(`<div class="flex flex-col gap-3">`)
	fmt.Fprintf(&b, `<label class="flex flex-col gap-1 text-sm font-medium">URL
<input type="url" name="url" value="%s" placeholder="https://example.com" class="rounded border px-3 py-2"></label>`,
		html.EscapeString(d.URL))
	b.WriteString(`<label class="flex flex-col gap-1 text-sm font-medium">Title
<input type="text" name="title" placeholder="Accessible label" class="rounded border px-3 py-2"></label>`)

	writeSelect(&b, "format", "Format", formatOptions, d.Format)
	writeSelect(&b, "shape", "Module shape", shapeOptions, "square")
	writeSelect(&b, "bgShape", "Background", bgShapeOptions, "square")
	writeSelect(&b, "level", "Error correction", levelOptions, d.Level)

	fmt.Fprintf(&b, `<label class="flex flex-col gap-1 text-sm font-medium">Size
<input type="number" name="size" value="%d" min="64" max="4096" class="rounded border px-3 py-2"></label>`, d.Size)

	b.WriteString(`<div class="grid grid-cols-2 gap-3">
<label class="flex flex-col gap-1 text-sm font-medium">Foreground
<input type="color" name="fg" value="#000000" class="h-10 rounded border"></label>
<label class="flex flex-col gap-1 text-sm font-medium">Background
<input type="color" name="bg" value="#ffffff" class="h-10 rounded border"></label>
</div>`)

	b.WriteString(`<label class="flex items-center gap-2 text-sm font-medium">
<input type="checkbox" name="includeMargin" checked> Quiet zone</label>`)
	b.WriteString(`<label class="flex flex-col gap-1 text-sm font-medium">Border width
<input type="number" name="border" value="0" min="0" max="10" class="rounded border px-3 py-2"></label>`)

	b.WriteString(`<label class="flex flex-col gap-1 text-sm font-medium">Logo
<input type="file" name="logo" accept=".png,.jpg,.jpeg,.svg"
 hx-post="/api/logo" hx-encoding="multipart/form-data" hx-trigger="change" hx-swap="none"></label>`)
	b.WriteString(`</div>`)

	b.WriteString(`<div class="flex flex-col items-center gap-3">
<img id="qr-preview" alt="QR code preview" class="w-full max-w-sm rounded border bg-white">
<a id="qr-download" download="qrcode" class="rounded bg-black px-4 py-2 text-white">Download</a>
</div>`)

	b.WriteString(`</form>`)
	return b.String()
}

func writeSelect(b *strings.Builder, name, label string, options []selectOption, selected string) {
	fmt.Fprintf(b, `<label class="flex flex-col gap-1 text-sm font-medium">%s
<select name="%s" class="rounded border px-3 py-2">`, html.EscapeString(label), name)
	for _, o := range options {
		sel := ""
		if o.value == selected {
			sel = " selected"
		}
		fmt.Fprintf(b, `<option value="%s"%s>%s</option>`, o.value, sel, html.EscapeString(o.label))
	}
	b.WriteString(`</select></label>`)
}
