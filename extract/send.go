package extract

import (
	"context"
	"time"

	"github.com/fwojciec/prodmd"
	"github.com/google/uuid"
)

// NewRequest returns an extraction request with a fresh correlation ID.
func NewRequest() prodmd.Request {
	return prodmd.Request{ID: uuid.NewString(), Action: prodmd.ActionExtract}
}

// Send delivers req to h and waits at most timeout for the answer. Expiry
// is reported as ETIMEOUT and is never retried; the handler is left to
// finish on its own. A failed response is returned as an error carrying
// the response's message. A timeout of zero or less uses DefaultTimeout.
func Send(ctx context.Context, h prodmd.Handler, req prodmd.Request, timeout time.Duration) (string, error) {
	if timeout <= 0 {
		timeout = prodmd.DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan *prodmd.Response, 1)
	go func() {
		done <- h.Handle(ctx, req)
	}()

	var resp *prodmd.Response
	select {
	case resp = <-done:
	case <-ctx.Done():
		return "", prodmd.Errorf(prodmd.ETIMEOUT, "Timeout: impossible de contacter la page")
	}

	switch {
	case resp == nil:
		return "", prodmd.Errorf(prodmd.EINTERNAL, "Extraction failed.")
	case !resp.Success:
		code := resp.Code
		if code == "" {
			code = prodmd.EINTERNAL
		}
		msg := resp.Error
		if msg == "" {
			msg = "Extraction failed."
		}
		return "", prodmd.Errorf(code, "%s", msg)
	}
	return resp.Document, nil
}
