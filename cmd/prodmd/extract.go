package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/prodmd"
	"github.com/fwojciec/prodmd/extract"
	pslog "github.com/fwojciec/prodmd/slog"
	"golang.org/x/sync/errgroup"
)

// ExtractCmd extracts every saved page and prints or stores the documents.
type ExtractCmd struct {
	Files []string
	URL   string
}

// result is the outcome for one input file.
type result struct {
	file     string
	url      string
	document string
	err      error
}

// Run extracts the pages concurrently. A failing page does not stop the
// others; failures are reported once all pages are done.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	concurrency := deps.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	results := make([]result, len(c.Files))
	g, gctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)
	for i, file := range c.Files {
		g.Go(func() error {
			results[i] = c.extractFile(gctx, deps, file)
			return nil
		})
	}
	_ = g.Wait()

	var failed int
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "%s: %s\n", r.file, errorText(r.err))
			continue
		}
		if err := c.emit(deps, r); err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "%s: %v\n", r.file, err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("extraction failed for %d of %d pages", failed, len(c.Files))
	}
	return nil
}

func (c *ExtractCmd) extractFile(ctx context.Context, deps *Dependencies, file string) result {
	r := result{file: file}

	doc, closeDoc, err := deps.Loader.Load(ctx, file, c.URL)
	if err != nil {
		r.err = err
		return r
	}
	defer func() {
		if err := closeDoc(); err != nil {
			deps.Logger.Warn("close page", "file", file, "err", err)
		}
	}()
	r.url = doc.Location()

	var h prodmd.Handler = extract.NewHandler(doc, deps.Extractor,
		extract.WithFormat(deps.Format),
		extract.WithConfig(deps.Config),
		extract.WithNow(deps.Now),
	)
	h = pslog.NewLoggingHandler(h, deps.Logger)

	r.document, r.err = extract.Send(ctx, h, extract.NewRequest(), deps.Timeout)
	return r
}

// emit stores the document, or prints it when no writer is configured.
func (c *ExtractCmd) emit(deps *Dependencies, r result) error {
	if deps.Writer != nil {
		return deps.Writer.WriteDocument(deps.Ctx, &prodmd.Output{
			URL:     r.url,
			Format:  deps.Format,
			Content: r.document,
		})
	}
	_, err := io.WriteString(deps.Stdout, strings.TrimRight(r.document, "\n")+"\n")
	return err
}

// errorText returns the user-facing message of application errors and
// the full chain otherwise.
func errorText(err error) string {
	var e *prodmd.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
