package ntree

import (
	"fmt"
	"log/slog"
)

// Option configures Load, Parse, Print and Marshal. Options that do not
// apply to an operation are ignored by it.
type Option func(*options) error

type options struct {
	indent   *int
	maxDepth int
	strict   bool
	logger   *slog.Logger
}

func newOptions(opts []Option) (*options, error) {
	o := &options{
		maxDepth: defaultMaxDepth,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// IndentStep sets the number of spaces Print writes per nesting level.
// The default is 2; 0 disables indentation.
func IndentStep(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return fmt.Errorf("ntree: indent step cannot be negative")
		}
		o.indent = &n
		return nil
	}
}

// MaxDepth sets the maximum array nesting Load accepts. Deeper input fails
// with a *ParsingError instead of growing the stack without bound.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("ntree: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

// DisallowTrailingData makes Load fail when anything other than whitespace
// follows the top-level node. By default such content is left unread.
func DisallowTrailingData() Option {
	return func(o *options) error {
		o.strict = true
		return nil
	}
}

// WithLogger sets the logger used for debug output. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) error {
		if l == nil {
			return fmt.Errorf("ntree: nil logger")
		}
		o.logger = l
		return nil
	}
}
