package compare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const userAgent = "seqcmp"

// Client talks to the remote comparison service.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	log     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds each request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger sets the client logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient creates a client for the service rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.http = &http.Client{Timeout: c.timeout}
	return c
}

// Compare submits req to POST /compare. Failures are *Error values of kind
// KindTransport or KindService.
func (c *Client) Compare(ctx context.Context, req Request) (*Result, error) {
	body, contentType, err := encodeRequest(req)
	if err != nil {
		return nil, NewError(KindTransport, "failed to build request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/compare", body)
	if err != nil {
		return nil, NewError(KindTransport, "failed to build request", err)
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, NewError(KindTransport, "comparison request failed", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Debug().Err(err).Msg("close compare response body")
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewError(KindTransport, "failed to read response", err)
	}

	c.log.Debug().
		Ctx(ctx).
		Str("mode", req.Mode.String()).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("compare response")

	// The service answers errors with a JSON body and a 4xx/5xx status, so
	// the body is decoded regardless of status.
	var out response
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, NewError(KindTransport, fmt.Sprintf("invalid response from server (status %d)", resp.StatusCode), err)
	}

	if !out.Success {
		msg := out.Error
		if msg == "" {
			msg = "comparison failed"
		}
		return nil, NewError(KindService, msg, nil)
	}

	res := out.Result
	return &res, nil
}

// SampleData fetches GET /sample_data/{name} and returns the body verbatim.
func (c *Client) SampleData(ctx context.Context, name string) (string, error) {
	u := c.baseURL + "/sample_data/" + url.PathEscape(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request sample %q: %w", name, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Debug().Err(err).Msg("close sample response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("request sample %q: status %d", name, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read sample %q: %w", name, err)
	}
	return string(data), nil
}

// encodeRequest builds the multipart body. File and text fields are never
// mixed in one submission.
func encodeRequest(req Request) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	switch req.Mode {
	case ModeFile:
		if err := writeFilePart(w, FieldSeq1File, req.Seq1.Path); err != nil {
			return nil, "", err
		}
		if err := writeFilePart(w, FieldSeq2File, req.Seq2.Path); err != nil {
			return nil, "", err
		}
	case ModeText:
		if err := w.WriteField(FieldSeq1Text, req.Seq1.Text); err != nil {
			return nil, "", err
		}
		if err := w.WriteField(FieldSeq2Text, req.Seq2.Text); err != nil {
			return nil, "", err
		}
	default:
		return nil, "", fmt.Errorf("unknown input mode %q", req.Mode)
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func writeFilePart(w *multipart.Writer, field, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", field, err)
	}
	defer func() { _ = f.Close() }()

	part, err := w.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("read %s: %w", field, err)
	}
	return nil
}
