package usecase

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"sort"
	"strconv"
	"strings"

	"resume-builder/internal/projector"
)

//go:embed templates/document.html.tmpl
var templateFS embed.FS

var documentTpl = template.Must(template.ParseFS(templateFS, "templates/document.html.tmpl"))

// ErrUnknownStyle is returned when a block references a style missing from
// the document's style dictionary.
var ErrUnknownStyle = errors.New("unknown style")

// FontFaces holds the URLs of the four font variants the document uses.
type FontFaces struct {
	Regular    string
	Bold       string
	Italic     string
	BoldItalic string
}

const (
	fontFamily  = "Roboto"
	pageMargin  = 40.0
	defaultName = "Currículo"
)

type htmlBlock struct {
	Stack    bool
	Children []htmlBlock
	Class    string
	Style    template.CSS
	Text     string
	Link     string
}

type htmlDocument struct {
	Title  string
	CSS    template.CSS
	Blocks []htmlBlock
}

// ComposeHTML lays out a projected document as a printable HTML page.
func ComposeHTML(doc projector.Document, fonts FontFaces) (string, error) {
	if err := checkStyles(doc); err != nil {
		return "", err
	}

	data := htmlDocument{
		Title:  documentTitle(doc.Content),
		CSS:    template.CSS(stylesheet(doc, fonts)),
		Blocks: toHTML(doc.Content),
	}

	var buf bytes.Buffer
	if err := documentTpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	return buf.String(), nil
}

func checkStyles(doc projector.Document) error {
	var err error
	projector.Walk(doc.Content, func(b projector.Block) {
		if err != nil || b.Style == "" {
			return
		}
		if _, ok := doc.Styles[b.Style]; !ok {
			err = fmt.Errorf("%w: %q", ErrUnknownStyle, b.Style)
		}
	})
	return err
}

func documentTitle(content []projector.Block) string {
	for _, b := range content {
		if b.Style == projector.StyleHeader && b.Text != "" {
			return b.Text
		}
	}
	return defaultName
}

func toHTML(blocks []projector.Block) []htmlBlock {
	out := make([]htmlBlock, 0, len(blocks))
	for _, b := range blocks {
		hb := htmlBlock{Text: b.Text, Link: b.Link, Class: className(b.Style)}
		if b.Margin != nil {
			hb.Style = template.CSS("margin: " + cssMargin(*b.Margin))
		}
		if b.IsStack() {
			hb.Stack = true
			hb.Children = toHTML(b.Stack)
		}
		out = append(out, hb)
	}
	return out
}

func className(style string) string {
	if style == "" {
		return "text"
	}
	return "st-" + style
}

func pt(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "pt"
}

// cssMargin converts [left, top, right, bottom] into CSS order.
func cssMargin(m projector.Margin) string {
	return strings.Join([]string{pt(m[1]), pt(m[2]), pt(m[3]), pt(m[0])}, " ")
}

func stylesheet(doc projector.Document, fonts FontFaces) string {
	var b strings.Builder
	fmt.Fprintf(&b, "@page { size: A4; margin: %s; }\n", pt(pageMargin))

	faces := []struct {
		url, weight, style string
	}{
		{fonts.Regular, "normal", "normal"},
		{fonts.Bold, "bold", "normal"},
		{fonts.Italic, "normal", "italic"},
		{fonts.BoldItalic, "bold", "italic"},
	}
	for _, f := range faces {
		if f.url == "" {
			continue
		}
		fmt.Fprintf(&b, "@font-face { font-family: %q; src: url(%q); font-weight: %s; font-style: %s; }\n",
			fontFamily, f.url, f.weight, f.style)
	}

	b.WriteString("body { margin: 0; font-family: \"" + fontFamily + "\", sans-serif;")
	writeStyle(&b, doc.DefaultStyle)
	b.WriteString(" }\n")
	b.WriteString(".text, [class^=\"st-\"] { white-space: pre-wrap; }\n")
	b.WriteString("a { color: inherit; text-decoration: none; }\n")

	names := make([]string, 0, len(doc.Styles))
	for name := range doc.Styles {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteString("." + className(name) + " {")
		writeStyle(&b, doc.Styles[name])
		b.WriteString(" }\n")
	}
	return b.String()
}

func writeStyle(b *strings.Builder, st projector.Style) {
	if st.FontSize > 0 {
		b.WriteString(" font-size: " + pt(st.FontSize) + ";")
	}
	if st.Bold {
		b.WriteString(" font-weight: bold;")
	}
	if st.Italics {
		b.WriteString(" font-style: italic;")
	}
	if st.Color != "" {
		b.WriteString(" color: " + st.Color + ";")
	}
	if st.Margin != nil {
		b.WriteString(" margin: " + cssMargin(*st.Margin) + ";")
	}
	if st.MarginBottom > 0 {
		b.WriteString(" margin-bottom: " + pt(st.MarginBottom) + ";")
	}
}
