// Package backend talks to the document-processing service: a liveness
// probe and the multipart processing endpoints.
package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/kurochkinivan/finsight/internal/domain"
)

const (
	DefaultBaseURL          = "http://localhost:8000"
	DefaultProbeTimeout     = 5 * time.Second
	DefaultMaxResponseBytes = 32 << 20

	errorBodyLimit = 64 << 10
)

const (
	pathHealth       = "/health"
	pathProcess      = "/process"
	pathProcessAudit = "/process-audit"
	pathProcessGST   = "/process-gst"
)

// TokenSource supplies the bearer token attached to backend requests. An
// empty token means no Authorization header.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type Client struct {
	log              *slog.Logger
	baseURL          string
	probeTimeout     time.Duration
	maxResponseBytes int64
	httpClient       *http.Client
	tokens           TokenSource
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

func WithMaxResponseBytes(n int64) Option {
	return func(c *Client) { c.maxResponseBytes = n }
}

func NewClient(log *slog.Logger, baseURL string, probeTimeout time.Duration, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if probeTimeout <= 0 {
		probeTimeout = DefaultProbeTimeout
	}

	c := &Client{
		log:              log,
		baseURL:          strings.TrimRight(baseURL, "/"),
		probeTimeout:     probeTimeout,
		maxResponseBytes: DefaultMaxResponseBytes,
		httpClient:       &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Health probes GET /health under its own deadline. Any non-2xx answer is a
// failure. Cancellation of ctx is returned as is.
func (c *Client) Health(ctx context.Context) error {
	probeCtx, cancel := context.WithTimeoutCause(ctx, c.probeTimeout, errProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, c.baseURL+pathHealth, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if err := c.authorize(ctx, req); err != nil {
		return err
	}

	c.log.DebugContext(ctx, "probing backend", slog.String("url", req.URL.String()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return context.Cause(ctx)
		}

		if errors.Is(context.Cause(probeCtx), errProbeTimeout) {
			return &ProbeError{Kind: ProbeTimeout, URL: c.baseURL, Err: errProbeTimeout}
		}

		return &ProbeError{Kind: ProbeUnreachable, URL: c.baseURL, Err: err}
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, errorBodyLimit))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ProbeError{Kind: ProbeStatus, URL: c.baseURL, StatusCode: resp.StatusCode}
	}

	return nil
}

// Upload describes one processing request.
type Upload struct {
	Category domain.Category
	Files    []domain.SlotFile

	// Timeout bounds the request. Zero means no deadline of its own.
	Timeout time.Duration
}

func (u *Upload) multi() bool {
	return u.Category.IsMultiSlot()
}

func (u *Upload) path() string {
	switch u.Category {
	case domain.CategoryAudit:
		return pathProcessAudit
	case domain.CategoryGSTReturn:
		return pathProcessGST
	default:
		return pathProcess
	}
}

// Process uploads the files and returns the accepted result. Errors are
// ErrRequestTimeout (wrapped), the cancellation cause of ctx, *TransportError,
// *StatusError or *SchemaError.
func (c *Client) Process(ctx context.Context, u *Upload) (json.RawMessage, error) {
	if len(u.Files) == 0 {
		return nil, errors.New("no files to process")
	}

	reqCtx, cancel := ctx, context.CancelFunc(func() {})
	if u.Timeout > 0 {
		reqCtx, cancel = context.WithTimeoutCause(ctx, u.Timeout, ErrRequestTimeout)
	}
	defer cancel()

	body, contentType := c.multipartBody(u)
	defer body.Close()

	url := c.baseURL + u.path()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	if err := c.authorize(ctx, req); err != nil {
		return nil, err
	}

	c.log.InfoContext(ctx, "uploading documents",
		slog.String("url", url),
		slog.String("document_type", string(u.Category)),
		slog.Int("files_count", len(u.Files)),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.requestError(ctx, reqCtx, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))

		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.StatusCode, http.StatusText(resp.StatusCode), respBody),
		}
	}

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, c.maxResponseBytes+1))
	if err != nil {
		return nil, c.requestError(ctx, reqCtx, url, err)
	}

	if int64(len(respBody)) > c.maxResponseBytes {
		return nil, &SchemaError{Reason: fmt.Sprintf("response exceeds %d bytes", c.maxResponseBytes)}
	}

	if u.multi() {
		return acceptMulti(respBody)
	}

	return acceptSingle(respBody)
}

func (c *Client) requestError(ctx, reqCtx context.Context, url string, err error) error {
	if ctx.Err() != nil {
		return context.Cause(ctx)
	}

	if cause := context.Cause(reqCtx); errors.Is(cause, ErrRequestTimeout) {
		return fmt.Errorf("%s: %w", url, ErrRequestTimeout)
	}

	return &TransportError{URL: c.baseURL, Err: err}
}

// multipartBody streams the form through a pipe so documents are never
// buffered whole.
func (c *Client) multipartBody(u *Upload) (io.ReadCloser, string) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeForm(mw, u))
	}()

	return pr, mw.FormDataContentType()
}

func writeForm(mw *multipart.Writer, u *Upload) error {
	field := "file"
	if u.multi() {
		field = "files"
	}

	for _, sf := range u.Files {
		if err := writeFilePart(mw, field, sf.File); err != nil {
			return fmt.Errorf("failed to write %s part %q: %w", field, sf.File.Name, err)
		}
	}

	if u.Category != "" {
		if err := mw.WriteField("document_type", string(u.Category)); err != nil {
			return fmt.Errorf("failed to write document_type: %w", err)
		}
	}

	return mw.Close()
}

func writeFilePart(mw *multipart.Writer, field string, f *domain.File) (err error) {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", mime.FormatMediaType("form-data", map[string]string{
		"name":     field,
		"filename": f.Name,
	}))

	contentType := f.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	if err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, rc.Close()) }()

	_, err = io.Copy(part, rc)
	return err
}

func (c *Client) authorize(ctx context.Context, req *http.Request) error {
	if c.tokens == nil {
		return nil
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("failed to get session token: %w", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return nil
}
