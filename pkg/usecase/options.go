package usecase

import (
	"time"

	"github.com/m-mizutani/devmemory/pkg/classifier"
)

type config struct {
	now        func() time.Time
	classifier *classifier.Classifier
}

// Option is a functional option shared by the use case constructors
type Option func(*config)

// WithClock overrides the time source used for day windows and export timestamps
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// WithClassifier replaces the built-in classifier
func WithClassifier(cl *classifier.Classifier) Option {
	return func(c *config) {
		c.classifier = cl
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{
		now:        time.Now,
		classifier: classifier.New(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
