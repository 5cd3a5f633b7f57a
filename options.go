package swr

import intcolor "github.com/swr-go/swr/internal/color"

// ContextOption configures a Context during creation.
//
// Example:
//
//	ctx := swr.NewContext(800, 600, swr.WithFormat(intcolor.RGBA8888), swr.WithWorkers(4))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	format  intcolor.Format
	workers int
}

// defaultOptions returns the default context options: ARGB8888, worker
// count hinted by the host (0 = GOMAXPROCS).
func defaultOptions() contextOptions {
	return contextOptions{
		format:  intcolor.ARGB8888,
		workers: 0,
	}
}

// WithFormat selects the default framebuffer's pixel format.
func WithFormat(format intcolor.Format) ContextOption {
	return func(o *contextOptions) {
		o.format = format
	}
}

// WithWorkers sets the tile-rasterization worker pool size. 0 (the
// default) lets the pool pick GOMAXPROCS.
func WithWorkers(n int) ContextOption {
	return func(o *contextOptions) {
		o.workers = n
	}
}
