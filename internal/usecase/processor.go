package usecase

import (
	"context"
	"errors"
	"fmt"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/projector"

	"golang.org/x/time/rate"
)

var (
	// ErrInvalidRecord wraps every failure to decode or validate a body.
	ErrInvalidRecord = errors.New("invalid resume record")
	// ErrRenderFailed wraps every failure after the record was accepted.
	ErrRenderFailed = errors.New("rendering failed")
)

type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type Processor struct {
	renderer Renderer
	fonts    FontFaces
	limiter  *rate.Limiter
}

// NewProcessor builds a processor. A nil limiter starts renders without
// waiting.
func NewProcessor(r Renderer, fonts FontFaces, limiter *rate.Limiter) *Processor {
	return &Processor{renderer: r, fonts: fonts, limiter: limiter}
}

// Generate decodes a request body and renders it to PDF.
func (p *Processor) Generate(ctx context.Context, gen *domain.Generation, raw []byte) ([]byte, error) {
	rec, err := model.DecodeRecord(raw)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidRecord, err)
		gen.MarkFailed(err)
		return nil, err
	}
	return p.Render(ctx, gen, rec)
}

// Render projects rec and renders the resulting document to PDF.
func (p *Processor) Render(ctx context.Context, gen *domain.Generation, rec model.ResumeRecord) ([]byte, error) {
	html, err := p.HTML(gen, rec)
	if err != nil {
		gen.MarkFailed(err)
		return nil, err
	}

	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			err = fmt.Errorf("%w: wait for render slot: %w", ErrRenderFailed, err)
			gen.MarkFailed(err)
			return nil, err
		}
	}

	pdf, err := p.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrRenderFailed, err)
		gen.MarkFailed(err)
		return nil, err
	}
	gen.MarkRendered(len(pdf))
	return pdf, nil
}

// HTML projects rec and composes the printable page without rendering it.
func (p *Processor) HTML(gen *domain.Generation, rec model.ResumeRecord) (string, error) {
	doc := projector.NewDocument(rec)
	gen.Blocks = len(doc.Content)

	html, err := ComposeHTML(doc, p.fonts)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}
	return html, nil
}
