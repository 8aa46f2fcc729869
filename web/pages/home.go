// Package pages assembles full HTML documents from the UI components.
package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/cristianadrielbraun/qrcanvas.link/web/components"
)

const (
	pageHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>qrcanvas.link - QR codes with shapes, gradients and logos</title>
<meta name="description" content="Generate QR codes as SVG, PNG or JPG with custom module shapes, gradients, circular silhouettes and embedded logos.">
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<script src="https://cdn.tailwindcss.com"></script>
<link rel="stylesheet" href="/web/static/app.css">
</head>
<body class="min-h-screen bg-gray-50 text-gray-900">
<main class="mx-auto max-w-4xl px-4 py-10">
<h1 class="mb-2 text-3xl font-bold">QR canvas</h1>
<p class="mb-8 text-gray-600">Shape, color and brand your QR codes. Every option below maps onto an <code>/api/qr</code> query parameter.</p>
`

	pageFoot = `</main>
<div id="toast-container"></div>
<script src="/web/static/app.js"></script>
</body>
</html>
`
)

// HomePage is the generator landing page.
func HomePage() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, pageHead); err != nil {
			return err
		}
		form := components.QRForm(components.FormDefaults{
			URL:    "https://qrcanvas.link",
			Size:   512,
			Level:  "q",
			Format: "svg",
		})
		if err := form.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, pageFoot)
		return err
	})
}
