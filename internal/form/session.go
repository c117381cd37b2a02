package form

import (
	"context"
	"errors"
	"sync"
	"time"

	"resume-builder/internal/model"
)

type SessionOptions struct {
	// Quiet is the debounce period; zero means DefaultQuietPeriod.
	Quiet time.Duration
	// OnPreview receives every preview newer than the last one published.
	OnPreview func(Preview)
	// OnError receives failed regenerations. Stale responses are dropped
	// silently.
	OnError func(error)
}

// Session regenerates the preview whenever the holder's record changes and
// the edits have paused. Only the newest preview is ever published.
type Session struct {
	holder   *Holder
	client   *Client
	debounce *Debouncer
	opts     SessionOptions

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	latest Preview
	closed bool

	// pubMu orders OnPreview calls; it is held across the sequence check
	// and the callback.
	pubMu sync.Mutex
}

func NewSession(h *Holder, c *Client, opts SessionOptions) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{holder: h, client: c, opts: opts, ctx: ctx, cancel: cancel}
	s.debounce = NewDebouncer(opts.Quiet, s.regenerate)
	h.OnChange(func(model.ResumeRecord) { s.debounce.Trigger() })
	return s
}

func (s *Session) Holder() *Holder {
	return s.holder
}

// Latest returns the newest published preview; Seq is zero before the first.
func (s *Session) Latest() Preview {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// Refresh regenerates right away without waiting for the debounce period.
func (s *Session) Refresh(ctx context.Context) (Preview, error) {
	p, err := s.client.Generate(ctx, s.holder.Snapshot())
	if err != nil {
		return p, err
	}
	s.publish(p)
	return p, nil
}

func (s *Session) regenerate() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()
	defer s.wg.Done()

	p, err := s.client.Generate(s.ctx, s.holder.Snapshot())
	switch {
	case errors.Is(err, ErrStale):
	case err != nil:
		if s.opts.OnError != nil && s.ctx.Err() == nil {
			s.opts.OnError(err)
		}
	default:
		s.publish(p)
	}
}

func (s *Session) publish(p Preview) {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.mu.Lock()
	if p.Seq <= s.latest.Seq {
		s.mu.Unlock()
		return
	}
	s.latest = p
	s.mu.Unlock()

	if s.opts.OnPreview != nil {
		s.opts.OnPreview(p)
	}
}

// Close stops pending regenerations, cancels the one in flight and waits
// for it to return.
func (s *Session) Close() {
	s.debounce.Stop()
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.cancel()
	s.wg.Wait()
}
