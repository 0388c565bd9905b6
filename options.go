package canvas

// ContextOption configures a Context at creation.
//
// Example:
//
//	cfg := canvas.DefaultConfig()
//	cfg.Font = "12px monospace"
//	ctx, err := canvas.New(provider, 300, 150, 2, canvas.WithConfig(cfg))
type ContextOption func(*contextOptions)

type contextOptions struct {
	config  Config
	decoder ImageDecoder
}

func defaultOptions() contextOptions {
	return contextOptions{config: DefaultConfig()}
}

// WithConfig replaces the default initial state and capabilities.
func WithConfig(cfg Config) ContextOption {
	return func(o *contextOptions) {
		o.config = cfg
	}
}

// WithImageDecoder sets the decoder used by DrawImageBytes. Without one,
// encoded images cannot be drawn.
//
// Example:
//
//	ctx, err := canvas.New(provider, w, h, 1, canvas.WithImageDecoder(imagecodec.Decoder{}))
func WithImageDecoder(d ImageDecoder) ContextOption {
	return func(o *contextOptions) {
		o.decoder = d
	}
}
