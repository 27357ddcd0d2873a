package rowparse

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Assembler turns the raw text of scraped rows into a RecordSet.
// It holds no per-row state and is safe for concurrent use.
type Assembler struct {
	schema *Schema
	options
}

type Report struct {
	Rows    int
	Skipped int
	Errors  []*RowError
}

func NewAssembler(schema *Schema, opts ...Option) *Assembler {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}
	if options.workers < 1 {
		options.workers = 1
	}

	return &Assembler{schema: schema, options: options}
}

func (a *Assembler) Schema() *Schema {
	return a.schema
}

// Row normalizes one row: clean, fix a one-token gap, parse.
// The result is not canonicalized.
func (a *Assembler) Row(raw string) (Record, error) {
	rec, _, err := a.row(raw)

	return rec, err
}

func (a *Assembler) row(raw string) (Record, Stage, error) {
	tokens := a.cleaner(raw).without(a.drop)

	if err := a.schema.Check(len(tokens)); err != nil {
		if a.gap == nil || len(tokens) != a.schema.MinTokens()-1 {
			return Record{}, StageShape, err
		}
		if tokens, err = a.gap.fill(tokens, a.schema.MinTokens()); err != nil {
			return Record{}, StageShape, err
		}
	}

	rec, err := a.schema.Parse(tokens)
	if err != nil {
		return Record{}, StageParse, err
	}

	return rec, StageParse, nil
}

type rowResult struct {
	rec Record
	err *RowError
}

// Assemble normalizes rows in source order and canonicalizes the result.
// Under SkipRow bad rows are reported and omitted; under AbortFeed the
// first bad row in source order is returned as the error.
func (a *Assembler) Assemble(rows []string) (*RecordSet, Report, error) {
	results := make([]rowResult, len(rows))

	work := func(i int) {
		rec, stage, err := a.row(rows[i])
		if err != nil {
			results[i].err = &RowError{Row: i, Stage: stage, Err: err}
			return
		}
		results[i].rec = rec
	}

	if a.workers == 1 || len(rows) < 2 {
		for i := range rows {
			work(i)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(a.workers)
		for i := range rows {
			i := i
			g.Go(func() error {
				work(i)
				return nil
			})
		}
		_ = g.Wait()
	}

	report := Report{Rows: len(rows)}
	set := NewRecordSet(a.schema.names)
	for _, r := range results {
		if r.err != nil {
			if a.policy == AbortFeed {
				return nil, report, r.err
			}
			report.Skipped++
			report.Errors = append(report.Errors, r.err)
			a.logger.Warn("skip row",
				zap.Int("row", r.err.Row),
				zap.Stringer("stage", r.err.Stage),
				zap.Error(r.err.Err),
			)
			continue
		}
		if err := set.Append(r.rec); err != nil {
			return nil, report, err
		}
	}

	sentinels := make([]string, 0, len(DefaultSentinels)+len(a.sentinels))
	sentinels = append(sentinels, DefaultSentinels...)
	sentinels = append(sentinels, a.sentinels...)
	Canonicalize(set, sentinels...)

	return set, report, nil
}

// IsDataError reports whether err is one of the structural row errors,
// as opposed to a configuration mistake.
func IsDataError(err error) bool {
	return errors.Is(err, ErrShapeMismatch) || errors.Is(err, ErrMalformedCounterPrefix)
}
