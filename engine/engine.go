// Package engine runs feeds end to end: fetch the page, extract the rows,
// normalize them and hand the records to storage.
package engine

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/bwmarrin/snowflake"
	"github.com/dreamerjackson/moonbag/feed"
	"github.com/dreamerjackson/moonbag/rowparse"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Engine struct {
	options
}

// Result is the outcome of one feed run. Err is set when the feed
// failed; Set is nil unless normalization succeeded.
type Result struct {
	Feed   *feed.Feed
	RunID  int64
	Set    *rowparse.RecordSet
	Report rowparse.Report
	Err    error
}

func New(opts ...Option) (*Engine, error) {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}

	if options.Fetcher == nil {
		return nil, errors.New("engine: no fetcher")
	}
	if options.WorkCount < 1 {
		options.WorkCount = 1
	}
	if options.idNode == nil {
		node, err := snowflake.NewNode(1)
		if err != nil {
			return nil, err
		}
		options.idNode = node
	}

	return &Engine{options: options}, nil
}

// Run executes feeds concurrently, at most WorkCount at a time. Results
// come back in the order of feeds. A failing feed does not stop the
// others; the returned error combines every feed error.
func (e *Engine) Run(ctx context.Context, feeds ...*feed.Feed) ([]Result, error) {
	results := make([]Result, len(feeds))

	var g errgroup.Group
	g.SetLimit(e.WorkCount)
	for i, f := range feeds {
		i, f := i, f
		g.Go(func() error {
			results[i] = e.runFeed(ctx, f)
			return nil
		})
	}
	_ = g.Wait()

	var err error
	for _, r := range results {
		err = multierr.Append(err, r.Err)
	}

	return results, err
}

func (e *Engine) runFeed(ctx context.Context, f *feed.Feed) (res Result) {
	res = Result{Feed: f, RunID: e.idNode.Generate().Int64()}
	logger := e.Logger.With(zap.String("feed", f.Name), zap.Int64("run", res.RunID))

	defer func() {
		if r := recover(); r != nil {
			logger.Error("feed panic",
				zap.Any("err", r),
				zap.String("stack", string(debug.Stack())))
			res.Set = nil
			res.Err = fmt.Errorf("feed %s: panic: %v", f.Name, r)
		}
	}()

	if err := ctx.Err(); err != nil {
		res.Err = fmt.Errorf("feed %s: %w", f.Name, err)
		return res
	}

	body, err := e.Fetcher.Get(ctx, f.URL)
	if err != nil {
		logger.Error("can't fetch", zap.String("url", f.URL), zap.Error(err))
		res.Err = fmt.Errorf("feed %s: fetch: %w", f.Name, err)
		return res
	}

	set, report, err := f.Normalize(body,
		rowparse.WithLogger(logger),
		rowparse.WithPolicy(e.Policy),
		rowparse.WithWorkers(e.RowWorkers),
	)
	res.Report = report
	if err != nil {
		if rowparse.IsDataError(err) {
			logger.Warn("feed aborted on bad row", zap.Error(err))
		} else {
			logger.Error("normalize failed", zap.Error(err))
		}
		res.Err = fmt.Errorf("feed %s: %w", f.Name, err)
		return res
	}
	res.Set = set

	logger.Info("feed normalized",
		zap.Int("rows", report.Rows),
		zap.Int("records", set.Len()),
		zap.Int("skipped", report.Skipped))

	if err := e.Storage.Save(f.Name, res.RunID, set); err != nil {
		logger.Error("save failed", zap.Error(err))
		res.Err = fmt.Errorf("feed %s: save: %w", f.Name, err)
	}

	return res
}
