package wows

import (
	"net/http"
	"net/http/httptest"
	"sync"
)

// fakeDoer is a call-recording transport returning a canned response.
type fakeDoer struct {
	mu       sync.Mutex
	requests []*http.Request

	Status int
	Body   string
	Err    error
}

func (f *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if err := req.Context().Err(); err != nil {
		return nil, err
	}
	if f.Err != nil {
		return nil, f.Err
	}

	status := f.Status
	if status == 0 {
		status = http.StatusOK
	}
	rec := httptest.NewRecorder()
	rec.Header().Set("Content-Type", "application/json")
	rec.WriteHeader(status)
	_, _ = rec.WriteString(f.Body)
	return rec.Result(), nil
}

func (f *fakeDoer) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeDoer) LastRequest() *http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return nil
	}
	return f.requests[len(f.requests)-1]
}

// queryMap flattens a request's query string for comparisons.
func queryMap(req *http.Request) map[string]string {
	result := make(map[string]string)
	for k, v := range req.URL.Query() {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}

func equalMaps(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}
