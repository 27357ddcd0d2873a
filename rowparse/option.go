package rowparse

import "go.uber.org/zap"

// Policy decides what a failing row does to the whole feed.
type Policy int

const (
	// SkipRow drops the row, logs the reason and counts it.
	SkipRow Policy = iota
	// AbortFeed fails the feed on the first bad row in source order.
	AbortFeed
)

func (p Policy) String() string {
	if p == AbortFeed {
		return "abort"
	}

	return "skip"
}

// ParsePolicy accepts "skip" and "abort".
func ParsePolicy(s string) (Policy, bool) {
	switch s {
	case "", "skip":
		return SkipRow, true
	case "abort":
		return AbortFeed, true
	}

	return SkipRow, false
}

type options struct {
	logger    *zap.Logger
	policy    Policy
	gap       *Gap
	drop      []string
	cleaner   func(string) Tokens
	sentinels []string
	workers   int
}

var defaultOptions = options{
	logger:  zap.NewNop(),
	policy:  SkipRow,
	cleaner: Clean,
	workers: 1,
}

type Option func(opts *options)

func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

func WithPolicy(policy Policy) Option {
	return func(opts *options) {
		opts.policy = policy
	}
}

// WithGap declares the feed's one optional column: a row one token short
// gets sentinel inserted at index at. An empty sentinel means Sentinel.
func WithGap(at int, sentinel string) Option {
	return func(opts *options) {
		opts.gap = &Gap{At: at, Sentinel: sentinel}
	}
}

// WithDrop removes label tokens the site injects into some rows.
func WithDrop(tokens ...string) Option {
	return func(opts *options) {
		opts.drop = append(opts.drop, tokens...)
	}
}

func WithCleaner(cleaner func(string) Tokens) Option {
	return func(opts *options) {
		opts.cleaner = cleaner
	}
}

// WithSentinels extends DefaultSentinels for the canonicalization pass.
func WithSentinels(sentinels ...string) Option {
	return func(opts *options) {
		opts.sentinels = append(opts.sentinels, sentinels...)
	}
}

func WithWorkers(n int) Option {
	return func(opts *options) {
		opts.workers = n
	}
}
