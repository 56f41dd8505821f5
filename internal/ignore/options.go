package ignore

import "github.com/bethropolis/agentsignore/internal/utils"

// Option configures a PathFilter or GitMatcher.
type Option func(*settings)

type settings struct {
	logger     utils.Logger
	extraRules []string
}

func defaultSettings() settings {
	return settings{logger: utils.NoopLogger{}}
}

// WithLogger sets the logger used for match tracing.
func WithLogger(logger utils.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithExtraRules appends rules after the pattern file's own rules. Each
// entry uses pattern file line syntax, so they can negate and override what
// the file says.
func WithExtraRules(lines []string) Option {
	return func(s *settings) {
		s.extraRules = append(s.extraRules, lines...)
	}
}
