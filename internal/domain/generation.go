package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "pending"
	StatusRendered = "rendered"
	StatusFailed   = "failed"
)

// Generation describes one PDF generation request. It is never stored; it
// only travels with the request so the outcome can be logged.
type Generation struct {
	ID        uuid.UUID              `json:"id"`
	RequestID string                 `json:"request_id,omitempty"`
	Status    string                 `json:"status"`
	Blocks    int                    `json:"blocks"`
	Bytes     int                    `json:"bytes"`
	Error     string                 `json:"error,omitempty"`
	Metadata  map[string]interface{} `json:"metadata"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

func NewGeneration(requestID string) *Generation {
	now := time.Now()
	return &Generation{
		ID:        uuid.New(),
		RequestID: requestID,
		Status:    StatusPending,
		Metadata:  map[string]interface{}{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (g *Generation) MarkRendered(size int) {
	g.Status = StatusRendered
	g.Bytes = size
	g.UpdatedAt = time.Now()
}

func (g *Generation) MarkFailed(err error) {
	g.Status = StatusFailed
	if err != nil {
		g.Error = err.Error()
	}
	g.UpdatedAt = time.Now()
}

// Duration is the time between creation and the last status change.
func (g *Generation) Duration() time.Duration {
	return g.UpdatedAt.Sub(g.CreatedAt)
}

// LogAttrs returns the generation as slog key/value pairs.
func (g *Generation) LogAttrs() []any {
	attrs := []any{
		"generation_id", g.ID.String(),
		"request_id", g.RequestID,
		"status", g.Status,
		"blocks", g.Blocks,
		"bytes", g.Bytes,
		"duration", g.Duration(),
	}
	if g.Error != "" {
		attrs = append(attrs, "error", g.Error)
	}
	for k, v := range g.Metadata {
		attrs = append(attrs, k, v)
	}
	return attrs
}
