package strokedpath

import (
	"io"
	"log/slog"
)

// Option configures a StrokedPath during construction, following the
// functional-options pattern.
type Option func(*strokedPathOptions)

type strokedPathOptions struct {
	curveTessellation float64
	logger            *slog.Logger
}

func defaultOptions() strokedPathOptions {
	return strokedPathOptions{
		curveTessellation: 0.1,
		logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithCurveTessellation overrides the angular step used to size
// rounded-join and rounded-cap arc fans when the input path does not
// supply its own TessellationParameters.CurveTessellation.
func WithCurveTessellation(step float64) Option {
	return func(o *strokedPathOptions) {
		if step > 0 {
			o.curveTessellation = step
		}
	}
}

// WithLogger attaches a logger used for construction-time diagnostics
// only (contour count, edge-vertex count, join counts). No logging call
// affects the generated geometry.
func WithLogger(l *slog.Logger) Option {
	return func(o *strokedPathOptions) {
		if l != nil {
			o.logger = l
		}
	}
}
