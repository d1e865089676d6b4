package highlightify

// Options holds options for segmentation.
type Options struct {
	Mode          OverlapMode
	HighlightRole Role
}

// Option is a function that configures Options.
type Option func(*Options)

// WithOverlapMode sets how overlapping spans are handled.
func WithOverlapMode(mode OverlapMode) Option {
	return func(opts *Options) {
		opts.Mode = mode
	}
}

// WithHighlightRole sets which message role gets highlights applied.
func WithHighlightRole(role Role) Option {
	return func(opts *Options) {
		opts.HighlightRole = role
	}
}

// defaultOptions returns the default segmentation options.
func defaultOptions() *Options {
	return &Options{
		Mode:          OverlapClamp,
		HighlightRole: RoleAssistant,
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *Options {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
