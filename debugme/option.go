package debugme

// Option applies a configuration option to a Config.
type Option func(Config) Config

// apply applies multiple options to a Config.
func apply(cfg Config, opts ...Option) Config {
	for _, opt := range opts {
		if opt != nil {
			cfg = opt(cfg)
		}
	}

	return cfg
}
