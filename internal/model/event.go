package model

import "github.com/factupro/invoice-api/internal/domain"

// Event is the HTTP-style request the dispatcher consumes. The hosting layer
// fills it in from the transport; Claims is nil when no verified identity was
// attached upstream.
type Event struct {
	HTTPMethod            string            `json:"httpMethod"`
	Path                  string            `json:"path"`
	Body                  string            `json:"body,omitempty"`
	QueryStringParameters map[string]string `json:"queryStringParameters,omitempty"`
	Claims                *domain.Claims    `json:"-"`
}

// Query returns the named query parameter, or "" when absent.
func (e Event) Query(name string) string {
	if e.QueryStringParameters == nil {
		return ""
	}
	return e.QueryStringParameters[name]
}

// Response is the envelope every dispatch produces: a numeric status, a JSON
// body, and headers to attach verbatim to the transport response.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}
