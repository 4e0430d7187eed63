package presenters

import "github.com/adamluzsi/presentable"

// PresentOption configures a single Present or PresentAll call.
type PresentOption func(*presentConfig)

type presentConfig struct {
	factory  presentable.Factory
	options  presentable.Options
	callback func(presentable.Presenter)
}

func configure(opts []PresentOption) presentConfig {
	var c presentConfig
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// ByFactory forces the given factory to be used for construction,
// skipping resolution entirely. An override can never fail with ErrNotFound,
// not even for a nil subject.
func ByFactory(factory presentable.Factory) PresentOption {
	return func(c *presentConfig) {
		c.factory = factory
	}
}

// WithOptions forwards the given named construction options verbatim to the factory.
// Repeated use merges, later keys winning.
func WithOptions(opts presentable.Options) PresentOption {
	return func(c *presentConfig) {
		if c.options == nil {
			c.options = make(presentable.Options, len(opts))
		}
		for name, value := range opts {
			c.options[name] = value
		}
	}
}

// WithOption forwards a single named construction option to the factory.
func WithOption(name string, value interface{}) PresentOption {
	return WithOptions(presentable.Options{name: value})
}

// WithCallback hands each constructed wrapper to fn before the call returns.
// The overall call still returns the constructed wrapper, not anything fn produces.
// fn never runs for a failed construction.
func WithCallback(fn func(presentable.Presenter)) PresentOption {
	return func(c *presentConfig) {
		c.callback = fn
	}
}
