package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/prodmd"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Loader    PageLoader
	Extractor prodmd.Extractor

	// Writer stores documents; when nil they are printed to Stdout.
	Writer prodmd.DocumentWriter

	Config      prodmd.Config
	Format      prodmd.Format
	Timeout     time.Duration
	Concurrency int
	Now         func() time.Time
}

// PageLoader opens a saved product page. The returned close function
// releases the page.
type PageLoader interface {
	Load(ctx context.Context, path, location string) (prodmd.Document, func() error, error)
}
