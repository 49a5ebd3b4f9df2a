package render

import "github.com/katalvlaran/graphkit/core"

// Default colours, as Graphviz colour names.
const (
	DefaultNodeColor      = "lightblue"
	DefaultEdgeColor      = "gray"
	DefaultHighlightColor = "red"
)

// Option configures a Canvas.
type Option func(*Options)

// Options holds the presentation settings of a Canvas.
type Options struct {
	Title          string
	NodeColor      string
	EdgeColor      string
	HighlightColor string
	Highlight      core.Path
}

// DefaultOptions returns untitled settings with the default colours and no
// highlighted path.
func DefaultOptions() Options {
	return Options{
		NodeColor:      DefaultNodeColor,
		EdgeColor:      DefaultEdgeColor,
		HighlightColor: DefaultHighlightColor,
	}
}

// WithTitle sets the graph label.
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithNodeColor sets the node fill colour. Empty keeps the default.
func WithNodeColor(color string) Option {
	return func(o *Options) {
		if color != "" {
			o.NodeColor = color
		}
	}
}

// WithEdgeColor sets the colour of ordinary edges. Empty keeps the default.
func WithEdgeColor(color string) Option {
	return func(o *Options) {
		if color != "" {
			o.EdgeColor = color
		}
	}
}

// WithHighlight marks the edges between consecutive vertices of p.
// A nil or single-vertex path highlights nothing.
func WithHighlight(p core.Path) Option {
	return func(o *Options) {
		o.Highlight = append(core.Path(nil), p...)
	}
}

// WithHighlightColor sets the colour of highlighted edges. Empty keeps the default.
func WithHighlightColor(color string) Option {
	return func(o *Options) {
		if color != "" {
			o.HighlightColor = color
		}
	}
}
