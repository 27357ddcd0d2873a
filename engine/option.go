package engine

import (
	"github.com/bwmarrin/snowflake"
	"github.com/dreamerjackson/moonbag/collect"
	"github.com/dreamerjackson/moonbag/rowparse"
	"go.uber.org/zap"
)

type Option func(opts *options)

type options struct {
	WorkCount  int
	RowWorkers int
	Policy     rowparse.Policy
	Fetcher    collect.Fetcher
	Storage    Storage
	Logger     *zap.Logger
	idNode     *snowflake.Node
}

var defaultOptions = options{
	WorkCount:  4,
	RowWorkers: 1,
	Policy:     rowparse.SkipRow,
	Storage:    EmptyStorage{},
	Logger:     zap.NewNop(),
}

func WithStorage(s Storage) Option {
	return func(opts *options) {
		opts.Storage = s
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.Logger = logger
	}
}

func WithFetcher(fetcher collect.Fetcher) Option {
	return func(opts *options) {
		opts.Fetcher = fetcher
	}
}

// WithWorkCount bounds how many feeds are fetched at once.
func WithWorkCount(workCount int) Option {
	return func(opts *options) {
		opts.WorkCount = workCount
	}
}

// WithRowWorkers sets the per-feed row assembly concurrency.
func WithRowWorkers(n int) Option {
	return func(opts *options) {
		opts.RowWorkers = n
	}
}

func WithPolicy(p rowparse.Policy) Option {
	return func(opts *options) {
		opts.Policy = p
	}
}

// WithIDNode sets the snowflake node run IDs are drawn from.
func WithIDNode(node *snowflake.Node) Option {
	return func(opts *options) {
		opts.idNode = node
	}
}
