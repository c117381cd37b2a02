package projector

import "resume-builder/internal/model"

// Margin is [left, top, right, bottom] in points.
type Margin [4]float64

// Block is one unit of document content: styled text, or a vertical stack
// of child blocks. Link, when set, makes the text a hyperlink.
type Block struct {
	Text   string  `json:"text,omitempty"`
	Stack  []Block `json:"stack,omitempty"`
	Style  string  `json:"style,omitempty"`
	Link   string  `json:"link,omitempty"`
	Margin *Margin `json:"margin,omitempty"`
}

// IsStack reports whether b groups child blocks instead of holding text.
func (b Block) IsStack() bool {
	return b.Stack != nil
}

func text(s, style string) Block {
	return Block{Text: s, Style: style}
}

func link(s, style, target string) Block {
	return Block{Text: s, Style: style, Link: target}
}

func stack(children []Block, m Margin) Block {
	return Block{Stack: children, Margin: &m}
}

// Document is what the renderer consumes: content blocks plus the named
// style dictionary they reference and the style applied to unstyled text.
type Document struct {
	Content      []Block
	Styles       StyleSheet
	DefaultStyle Style
}

// NewDocument projects rec and attaches the shared style dictionary.
func NewDocument(rec model.ResumeRecord) Document {
	styles, def := SharedStyles()
	return Document{
		Content:      Project(rec),
		Styles:       styles,
		DefaultStyle: def,
	}
}

// Walk calls fn for every block of content, depth first.
func Walk(content []Block, fn func(Block)) {
	for _, b := range content {
		fn(b)
		Walk(b.Stack, fn)
	}
}
