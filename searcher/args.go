package searcher

import "stonehenge/experiments/metrics"

type Option func(c *config)

type config struct {
	metrics metrics.Collector
}

// WithMetrics records node counts and durations of every search into collector.
func WithMetrics(collector metrics.Collector) Option {
	return func(c *config) {
		if collector != nil {
			c.metrics = collector
		}
	}
}

func newConfig(options []Option) config {
	c := config{metrics: metrics.NewDummyCollector()} // Default values
	for _, option := range options {
		option(&c)
	}
	return c
}
