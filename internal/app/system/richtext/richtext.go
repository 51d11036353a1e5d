// Package richtext turns stored lesson bodies into display-safe HTML.
// Markdown is rendered with goldmark (GFM tables and lists included);
// every format is sanitized afterwards.
package richtext

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/dalemusser/ukrconnect/internal/app/system/htmlsanitize"
	"github.com/dalemusser/ukrconnect/internal/domain/models"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var engine = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	// Raw HTML inside Markdown is allowed through; the sanitizer removes
	// anything unsafe.
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// Markdown renders src to unsanitized HTML.
func Markdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := engine.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("markdown render: %w", err)
	}
	return buf.String(), nil
}

// Render returns content as sanitized HTML. An empty format means html.
func Render(content, format string) (template.HTML, error) {
	switch strings.ToLower(format) {
	case "", models.ContentFormatHTML:
		return htmlsanitize.SanitizeToHTML(strings.TrimSpace(content)), nil
	case models.ContentFormatMarkdown:
		out, err := Markdown(content)
		if err != nil {
			return "", err
		}
		return htmlsanitize.SanitizeToHTML(out), nil
	default:
		return "", fmt.Errorf("unknown content format %q", format)
	}
}

// Plain shows s as escaped text with paragraph breaks kept.
func Plain(s string) template.HTML {
	return template.HTML(htmlsanitize.PlainTextToHTML(s))
}
