package wows

import (
	"fmt"
	"net/url"
)

const applicationIDParam = "application_id"

// Endpoint identifies one API resource, e.g. account/list.
type Endpoint struct {
	Block  string
	Method string
}

// Path returns the versioned URL path of the endpoint.
func (e Endpoint) Path() string {
	return "/wows/" + e.Block + "/" + e.Method + "/"
}

func (e Endpoint) String() string {
	return e.Block + "/" + e.Method
}

// Request fully describes one API call, independent of the client that will
// send it.
type Request struct {
	Region   Region
	Endpoint Endpoint
	Params   url.Values
}

// NewRequest builds a request for an arbitrary endpoint. Required parameters
// are passed as options just like optional ones.
func NewRequest(region Region, endpoint Endpoint, opts ...QueryOption) Request {
	params := url.Values{}
	for _, opt := range opts {
		opt(params)
	}
	return Request{Region: region, Endpoint: endpoint, Params: params}
}

// URL resolves the full request URL, attaching applicationID. It fails with
// ErrInvalidRegion when the region is outside the supported set.
func (r Request) URL(applicationID string) (string, error) {
	host := r.Region.Host()
	if host == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidRegion, r.Region)
	}

	query := url.Values{}
	for k, v := range r.Params {
		if k == applicationIDParam {
			continue
		}
		query[k] = v
	}
	query.Set(applicationIDParam, applicationID)

	u := url.URL{
		Scheme:   "https",
		Host:     host,
		Path:     r.Endpoint.Path(),
		RawQuery: query.Encode(),
	}
	return u.String(), nil
}

// redactURL strips the application key from a request URL for logs and errors.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	if q.Has(applicationIDParam) {
		q.Set(applicationIDParam, "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
