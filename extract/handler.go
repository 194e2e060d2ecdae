package extract

import (
	"context"
	"time"

	"github.com/fwojciec/prodmd"
)

// Ensure Handler implements prodmd.Handler at compile time.
var _ prodmd.Handler = (*Handler)(nil)

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithFormat sets the output document format. Defaults to Markdown.
func WithFormat(f prodmd.Format) HandlerOption {
	return func(h *Handler) {
		h.format = f
	}
}

// WithConfig sets the thresholds used for the page check and
// canonicalization. Defaults to prodmd.DefaultConfig.
func WithConfig(cfg prodmd.Config) HandlerOption {
	return func(h *Handler) {
		h.config = cfg
	}
}

// WithNow sets the clock used to date documents.
func WithNow(now func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.now = now
	}
}

// Handler runs the whole pipeline for one loaded page: page check, field
// extraction, canonicalization and rendering.
type Handler struct {
	doc       prodmd.Document
	extractor prodmd.Extractor
	format    prodmd.Format
	config    prodmd.Config
	now       func() time.Time
}

// NewHandler returns a Handler answering requests about doc.
func NewHandler(doc prodmd.Document, extractor prodmd.Extractor, opts ...HandlerOption) *Handler {
	h := &Handler{
		doc:       doc,
		extractor: extractor,
		format:    prodmd.FormatMarkdown,
		config:    prodmd.DefaultConfig(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle answers req. Every outcome, including a panic anywhere in the
// pipeline, is reported as a Response.
func (h *Handler) Handle(ctx context.Context, req prodmd.Request) (resp *prodmd.Response) {
	defer func() {
		if r := recover(); r != nil {
			resp = prodmd.Failure(prodmd.Errorf(prodmd.EINTERNAL, "Erreur inattendue : %v", r))
		}
	}()

	if req.Action != prodmd.ActionExtract {
		return prodmd.Failure(prodmd.Errorf(prodmd.EINVALID, "Action inconnue : %q", req.Action))
	}
	if err := ctx.Err(); err != nil {
		return prodmd.Failure(prodmd.Errorf(prodmd.ETIMEOUT, "Timeout: impossible de contacter la page"))
	}

	location := h.doc.Location()
	if err := CheckPage(location, h.config); err != nil {
		return prodmd.Failure(err)
	}

	ext := h.extractor.Extract(h.doc)
	if ext == nil {
		ext = &prodmd.Extraction{Raw: prodmd.NewRawRecord()}
	}
	rec := prodmd.Canonicalize(ext.Raw, location, h.config)

	doc, err := prodmd.Render(rec, h.format, h.now())
	if err != nil {
		return prodmd.Failure(prodmd.Errorf(prodmd.EINTERNAL, "Erreur inattendue : %v", err))
	}
	return &prodmd.Response{Success: true, Document: doc}
}
