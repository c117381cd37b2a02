package form

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"resume-builder/internal/model"
)

var (
	// ErrStale is returned for a response that arrived after a newer request
	// had been issued. Its preview must not be shown.
	ErrStale = errors.New("stale preview response")
	// ErrGenerate reports a non-200 answer from the generate endpoint.
	ErrGenerate = errors.New("preview generation failed")
)

const generatePath = "/api/generate"

// Preview is one rendered PDF and the sequence number of the request that
// produced it.
type Preview struct {
	Seq        uint64
	PDF        []byte
	ReceivedAt time.Time
}

// Client posts records to the generate endpoint. Calls are numbered in
// issue order and only the newest one may succeed. Failed calls are not
// retried.
type Client struct {
	baseURL string
	http    *http.Client
	issued  atomic.Uint64
}

// NewClient targets the server at baseURL. A nil hc uses a client with a
// two minute timeout.
func NewClient(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 2 * time.Minute}
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// Latest returns the sequence number of the most recently issued call.
func (c *Client) Latest() uint64 {
	return c.issued.Load()
}

func (c *Client) Generate(ctx context.Context, rec model.ResumeRecord) (Preview, error) {
	seq := c.issued.Add(1)

	body, err := json.Marshal(rec)
	if err != nil {
		return Preview{Seq: seq}, fmt.Errorf("encode record: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, bytes.NewReader(body))
	if err != nil {
		return Preview{Seq: seq}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/pdf")

	resp, err := c.http.Do(req)
	if err != nil {
		return Preview{Seq: seq}, fmt.Errorf("post %s: %w", generatePath, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Preview{Seq: seq}, fmt.Errorf("read response: %w", err)
	}
	if seq != c.issued.Load() {
		return Preview{Seq: seq}, ErrStale
	}
	if resp.StatusCode != http.StatusOK {
		return Preview{Seq: seq}, fmt.Errorf("%w: %s: %s", ErrGenerate, resp.Status, strings.TrimSpace(string(data)))
	}
	return Preview{Seq: seq, PDF: data, ReceivedAt: time.Now()}, nil
}
