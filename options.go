package cubealg

import "github.com/SeamusWaldron/cubealg/internal/algorithm"

// Option configures Engine behavior.
type Option func(*config)

type config struct {
	maxDepth      int
	cataloguePath string
	catalogueYAML []byte
}

func defaultConfig() *config {
	return &config{
		maxDepth: algorithm.DefaultMaxDepth,
	}
}

// WithMaxDepth bounds how deeply algorithm references may nest.
// Expanding past the bound fails with ErrMaxDepth, which is how reference
// cycles are reported.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		c.maxDepth = n
	}
}

// WithCatalogueFile loads the catalogue from a YAML file instead of the
// built-in one.
func WithCatalogueFile(path string) Option {
	return func(c *config) {
		c.cataloguePath = path
	}
}

// WithCatalogueYAML loads the catalogue from YAML data. It takes precedence
// over WithCatalogueFile.
func WithCatalogueYAML(data []byte) Option {
	return func(c *config) {
		c.catalogueYAML = data
	}
}
