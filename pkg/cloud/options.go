package cloud

import "github.com/charmbracelet/log"

const (
	// DefaultCompactionStep is the distance a rectangle is nudged per
	// compaction move.
	DefaultCompactionStep = 1

	// DefaultMaxIterations bounds both the spiral points drawn and the
	// compaction moves made for a single placement.
	DefaultMaxIterations = 1_000_000
)

// Config controls a placement step.
type Config struct {
	// CompactionStep is the nudge distance. Zero or negative disables
	// compaction.
	CompactionStep int

	// MaxIterations caps the spiral search. Exceeding it is reported as an
	// internal error rather than looping forever.
	MaxIterations int

	// Logger receives debug traces. Nil disables logging.
	Logger *log.Logger
}

// DefaultConfig returns the configuration used by New without options.
func DefaultConfig() Config {
	return Config{
		CompactionStep: DefaultCompactionStep,
		MaxIterations:  DefaultMaxIterations,
	}
}

// Option configures a Layouter.
type Option func(*Config)

// WithCompactionStep sets the compaction nudge distance.
func WithCompactionStep(step int) Option {
	return func(c *Config) { c.CompactionStep = step }
}

// WithMaxIterations sets the spiral search cap. Values below one are ignored.
func WithMaxIterations(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.MaxIterations = n
		}
	}
}

// WithLogger attaches a logger for debug traces.
func WithLogger(l *log.Logger) Option {
	return func(c *Config) { c.Logger = l }
}
