package panel

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/vpnadm/internal/ports"
	"github.com/bnema/vpnadm/internal/version"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	DefaultBaseURL = "http://127.0.0.1:8001/api"
	DefaultTimeout = 30 * time.Second

	maxResponseBytes = 4 << 20
	apiPathSuffix    = "/api"
)

var (
	ErrTransport        = errors.New("panel unreachable")
	ErrResponseTooLarge = errors.New("panel response too large")
)

// Client talks to the panel REST API on behalf of one operator token.
type Client struct {
	baseURL   string
	publicURL string
	token     string
	http      *http.Client
	log       logrus.FieldLogger
	userAgent string
	requestID func() string
}

var _ ports.PanelAPI = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithPublicURL overrides the origin serving /sub/{id}. By default it is the
// API base URL without its trailing /api segment.
func WithPublicURL(publicURL string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimRight(strings.TrimSpace(publicURL), "/"); trimmed != "" {
			c.publicURL = trimmed
		}
	}
}

func NewClient(baseURL, token string, opts ...Option) *Client {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}

	client := &Client{
		baseURL:   base,
		publicURL: strings.TrimSuffix(base, apiPathSuffix),
		token:     strings.TrimSpace(token),
		http:      &http.Client{Timeout: DefaultTimeout},
		log:       logrus.StandardLogger(),
		userAgent: "vpnadm/" + version.Version,
		requestID: func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(client)
	}

	return client
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Dialer builds clients that share one transport configuration.
type Dialer struct {
	opts []Option
}

var (
	_ ports.PanelDialer   = (*Dialer)(nil)
	_ ports.SessionDialer = (*Dialer)(nil)
)

func NewDialer(opts ...Option) *Dialer {
	return &Dialer{opts: opts}
}

func (d *Dialer) Dial(baseURL, token string) ports.PanelAPI {
	return NewClient(baseURL, token, d.opts...)
}

func (d *Dialer) DialSession(baseURL, token string) ports.SessionAPI {
	return NewClient(baseURL, token, d.opts...)
}

type request struct {
	method   string
	path     string
	query    url.Values
	body     any
	public   bool
	notFound error
}

type response struct {
	status int
	header http.Header
	body   []byte
}

func (c *Client) send(ctx context.Context, req request) (response, error) {
	endpoint := c.baseURL + req.path
	if req.public {
		endpoint = c.publicURL + req.path
	}
	if len(req.query) > 0 {
		endpoint += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return response{}, fmt.Errorf("encode %s %s body: %w", req.method, req.path, err)
		}
		body = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint, body)
	if err != nil {
		return response{}, fmt.Errorf("create request: %w", err)
	}

	requestID := c.requestID()
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("X-Request-ID", requestID)
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if !req.public && c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	started := time.Now()
	log := c.log.WithFields(logrus.Fields{
		"method":     req.method,
		"path":       req.path,
		"request_id": requestID,
	})

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		log.WithError(err).Debug("panel request failed")
		if ctxErr := ctx.Err(); ctxErr != nil {
			return response{}, ctxErr
		}
		return response{}, fmt.Errorf("%w: %s %s: %w", ErrTransport, req.method, req.path, err)
	}
	defer httpResp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes+1))
	if err != nil {
		return response{}, fmt.Errorf("read %s %s response: %w", req.method, req.path, err)
	}
	truncated := len(payload) > maxResponseBytes
	if truncated {
		payload = payload[:maxResponseBytes]
	}

	log.WithFields(logrus.Fields{
		"status":   httpResp.StatusCode,
		"duration": time.Since(started).Round(time.Millisecond),
	}).Debug("panel request")

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return response{}, newAPIError(req.method, req.path, requestID, httpResp.StatusCode, payload, req.notFound)
	}
	if truncated {
		return response{}, fmt.Errorf("%w: %s %s exceeds %d bytes", ErrResponseTooLarge, req.method, req.path, maxResponseBytes)
	}

	return response{status: httpResp.StatusCode, header: httpResp.Header, body: payload}, nil
}

func (c *Client) doJSON(ctx context.Context, req request, out any) error {
	resp, err := c.send(ctx, req)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(resp.body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.body, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", req.method, req.path, err)
	}
	return nil
}

func pathf(format string, segments ...any) string {
	escaped := make([]any, len(segments))
	for i, segment := range segments {
		escaped[i] = url.PathEscape(fmt.Sprint(segment))
	}
	return fmt.Sprintf(format, escaped...)
}
