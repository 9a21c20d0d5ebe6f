package lambda

import "context"

// Request is the transport-neutral form of an API Gateway request
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"query_params"`
	Body        []byte            `json:"body"`
}

// Response is the transport-neutral form of an API Gateway response
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// HandlerFunc answers one request
type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)
