// Package toast renders self-dismissing notification popups, meant to
// be swapped into the page by HTMX responses.
package toast

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/Oudwins/tailwind-merge-go/pkg/twmerge"
	"github.com/a-h/templ"
)

// Variant selects the toast's color scheme and icon.
type Variant string

const (
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantWarning Variant = "warning"
	VariantInfo    Variant = "info"
)

// Position anchors the toast on the viewport.
type Position string

const (
	PositionTopRight     Position = "top-right"
	PositionTopLeft      Position = "top-left"
	PositionBottomRight  Position = "bottom-right"
	PositionBottomLeft   Position = "bottom-left"
	PositionBottomCenter Position = "bottom-center"
)

// Props configures a single toast.
type Props struct {
	Title         string
	Description   string
	Variant       Variant
	Position      Position
	Duration      int
	Dismissible   bool
	ShowIndicator bool
	Icon          bool
}

var variantClasses = map[Variant]string{
	VariantSuccess: "border-green-500 text-green-800",
	VariantError:   "border-red-500 text-red-800",
	VariantWarning: "border-yellow-500 text-yellow-800",
	VariantInfo:    "border-blue-500 text-blue-800",
}

var positionClasses = map[Position]string{
	PositionTopRight:     "top-4 right-4",
	PositionTopLeft:      "top-4 left-4",
	PositionBottomRight:  "bottom-4 right-4",
	PositionBottomLeft:   "bottom-4 left-4",
	PositionBottomCenter: "bottom-4 left-1/2 -translate-x-1/2",
}

var variantIcons = map[Variant]string{
	VariantSuccess: `<svg class="size-5 shrink-0" viewBox="0 0 20 20" fill="currentColor" aria-hidden="true"><path fill-rule="evenodd" d="M10 18a8 8 0 100-16 8 8 0 000 16zm3.707-9.293a1 1 0 00-1.414-1.414L9 10.586 7.707 9.293a1 1 0 00-1.414 1.414l2 2a1 1 0 001.414 0l4-4z" clip-rule="evenodd"/></svg>`,
	VariantError:   `<svg class="size-5 shrink-0" viewBox="0 0 20 20" fill="currentColor" aria-hidden="true"><path fill-rule="evenodd" d="M10 18a8 8 0 100-16 8 8 0 000 16zM8.707 7.293a1 1 0 00-1.414 1.414L8.586 10l-1.293 1.293a1 1 0 101.414 1.414L10 11.414l1.293 1.293a1 1 0 001.414-1.414L11.414 10l1.293-1.293a1 1 0 00-1.414-1.414L10 8.586 8.707 7.293z" clip-rule="evenodd"/></svg>`,
	VariantWarning: `<svg class="size-5 shrink-0" viewBox="0 0 20 20" fill="currentColor" aria-hidden="true"><path fill-rule="evenodd" d="M8.485 2.495c.673-1.167 2.357-1.167 3.03 0l6.28 10.875c.673 1.167-.17 2.625-1.516 2.625H3.72c-1.347 0-2.189-1.458-1.515-2.625L8.485 2.495zM10 5a.75.75 0 01.75.75v3.5a.75.75 0 01-1.5 0v-3.5A.75.75 0 0110 5zm0 9a1 1 0 100-2 1 1 0 000 2z" clip-rule="evenodd"/></svg>`,
	VariantInfo:    `<svg class="size-5 shrink-0" viewBox="0 0 20 20" fill="currentColor" aria-hidden="true"><path fill-rule="evenodd" d="M18 10a8 8 0 11-16 0 8 8 0 0116 0zm-7-4a1 1 0 11-2 0 1 1 0 012 0zM9 9a.75.75 0 000 1.5h.253a.25.25 0 01.244.304l-.459 2.066A1.75 1.75 0 0010.747 15H11a.75.75 0 000-1.5h-.253a.25.25 0 01-.244-.304l.459-2.066A1.75 1.75 0 009.253 9H9z" clip-rule="evenodd"/></svg>`,
}

// Toast renders the notification. Dismissal and the progress
// indicator are driven by the data attributes, picked up by the toast
// script in web/static/app.js.
func Toast(props Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, renderToast(props))
		return err
	})
}

func renderToast(props Props) string {
	variant := props.Variant
	if _, ok := variantClasses[variant]; !ok {
		variant = VariantInfo
	}
	position := props.Position
	if _, ok := positionClasses[position]; !ok {
		position = PositionBottomRight
	}

	classes := twmerge.Merge(
		"fixed z-50 w-80 rounded-lg border-l-4 bg-white p-4 shadow-lg",
		variantClasses[variant],
		positionClasses[position],
	)

	var b strings.Builder
	fmt.Fprintf(&b, `<div class="%s" role="status" data-toast data-duration="%d">`,
		classes, props.Duration)
	b.WriteString(`<div class="flex items-start gap-3">`)
	if props.Icon {
		b.WriteString(variantIcons[variant])
	}
	b.WriteString(`<div class="flex-1">`)
	if props.Title != "" {
		fmt.Fprintf(&b, `<p class="font-semibold">%s</p>`, html.EscapeString(props.Title))
	}
	if props.Description != "" {
		fmt.Fprintf(&b, `<p class="text-sm opacity-80">%s</p>`, html.EscapeString(props.Description))
	}
	b.WriteString(`</div>`)
	if props.Dismissible {
		b.WriteString(`<button type="button" class="opacity-60 hover:opacity-100" data-toast-dismiss aria-label="Dismiss">&times;</button>`)
	}
	b.WriteString(`</div>`)
	if props.ShowIndicator {
		b.WriteString(`<div class="mt-2 h-1 rounded bg-current opacity-30" data-toast-indicator></div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}
