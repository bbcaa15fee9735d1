package algorithm

// DefaultMaxDepth bounds reference nesting. It is a safety limit against
// reference cycles in the catalogue, not a semantic limit.
const DefaultMaxDepth = 10

// Option configures an Expander.
type Option func(*config)

type config struct {
	maxDepth int
}

func defaultConfig() *config {
	return &config{
		maxDepth: DefaultMaxDepth,
	}
}

// WithMaxDepth sets how deeply references may nest before expansion fails
// with ErrMaxDepth. Values below 0 are treated as 0 (no references allowed).
func WithMaxDepth(n int) Option {
	return func(c *config) {
		if n < 0 {
			n = 0
		}
		c.maxDepth = n
	}
}
