package wows

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// Response is an API response body, returned as received. A non-2xx status or
// an upstream "status":"error" envelope is not turned into an error; inspect
// StatusCode or Envelope instead.
type Response struct {
	StatusCode int
	// Body holds the bytes received, in their original key order.
	Body json.RawMessage
	// Data is Body decoded into generic values. Numbers are json.Number.
	Data any
}

// Envelope is the shape the upstream wraps every payload in.
type Envelope struct {
	Status string          `json:"status"`
	Meta   json.RawMessage `json:"meta,omitempty"`
	Data   json.RawMessage `json:"data,omitempty"`
	Error  *EnvelopeError  `json:"error,omitempty"`
}

// EnvelopeError is the upstream's in-body error description.
type EnvelopeError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    int    `json:"code"`
	// Value echoes the rejected input; it may be a string, a number or null.
	Value any `json:"value"`
}

// Decode unmarshals the body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Map returns Data as an object, or nil when the body is not a JSON object.
func (r *Response) Map() map[string]any {
	m, _ := r.Data.(map[string]any)
	return m
}

// Envelope decodes the upstream envelope. It fails only if the body is not
// a JSON object.
func (r *Response) Envelope() (*Envelope, error) {
	var env Envelope
	if err := r.Decode(&env); err != nil {
		return nil, err
	}
	return &env, nil
}

// decodeBody decodes body as a single JSON value, keeping numbers as
// json.Number.
func decodeBody(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON value")
	}
	return v, nil
}
