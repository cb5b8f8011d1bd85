package wows

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout is the timeout of the HTTP client New creates when none is
// supplied.
const DefaultTimeout = 30 * time.Second

// Doer performs HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option configures a Client or an AsyncClient.
type Option func(*requester)

// WithHTTPClient sets the transport used for requests. The client does not
// take ownership of it.
func WithHTTPClient(d Doer) Option {
	return func(r *requester) {
		if d != nil {
			r.doer = d
		}
	}
}

// WithLogger sets the logger requests are traced to at debug level. The
// application key is never logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *requester) {
		r.logger = logger
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(r *requester) {
		r.userAgent = ua
	}
}

// requester holds what both client variants share: the key, the transport
// and the single implementation of a request/response exchange.
type requester struct {
	applicationID string
	doer          Doer
	logger        zerolog.Logger
	userAgent     string
}

func newRequester(applicationID string, doer Doer, opts []Option) *requester {
	r := &requester{
		applicationID: applicationID,
		doer:          doer,
		logger:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// do sends req exactly once and decodes the body. It holds no state between
// calls.
func (r *requester) do(ctx context.Context, req Request) (*Response, error) {
	rawURL, err := req.URL(r.applicationID)
	if err != nil {
		return nil, err
	}
	safeURL := redactURL(rawURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if r.userAgent != "" {
		httpReq.Header.Set("User-Agent", r.userAgent)
	}

	start := time.Now()
	resp, err := r.doer.Do(httpReq)
	if err != nil {
		r.logger.Debug().
			Err(err).
			Str("endpoint", req.Endpoint.String()).
			Stringer("region", req.Region).
			Msg("API request failed")
		return nil, &TransportError{Op: "request", URL: safeURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "read body", URL: safeURL, Err: err}
	}

	r.logger.Debug().
		Str("endpoint", req.Endpoint.String()).
		Stringer("region", req.Region).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("elapsed", time.Since(start)).
		Msg("API request completed")

	data, err := decodeBody(body)
	if err != nil {
		return nil, &DecodeError{StatusCode: resp.StatusCode, Body: body, Err: err}
	}

	return &Response{StatusCode: resp.StatusCode, Body: body, Data: data}, nil
}
