package prodmd

import (
	"context"
	"time"
)

// ActionExtract asks a page for its product document.
const ActionExtract = "extractData"

// DefaultTimeout bounds a round-trip to a page handler.
const DefaultTimeout = 5 * time.Second

// Request triggers an extraction. It carries no payload: the handler
// already holds the page.
type Request struct {
	// ID correlates log records of one round-trip.
	ID     string `json:"id"`
	Action string `json:"action"`
}

// Response answers a Request with either a document or an error message.
type Response struct {
	Success  bool   `json:"success"`
	Document string `json:"document,omitempty"`
	Error    string `json:"error,omitempty"`

	// Code classifies failures with an application error code.
	Code string `json:"-"`
}

// Failure builds a failed Response from err.
func Failure(err error) *Response {
	return &Response{
		Success: false,
		Error:   ErrorMessage(err),
		Code:    ErrorCode(err),
	}
}

// Handler answers extraction requests for one loaded page. Handle never
// fails across its boundary: every outcome is a Response.
type Handler interface {
	Handle(ctx context.Context, req Request) *Response
}
