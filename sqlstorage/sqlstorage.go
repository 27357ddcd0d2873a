// Package sqlstorage keeps normalized feed records in SQL tables, one
// table per feed.
package sqlstorage

import (
	"io"
	"sync"
	"time"

	"github.com/dreamerjackson/moonbag/rowparse"
	"github.com/dreamerjackson/moonbag/sqldb"
	"go.uber.org/zap"
)

const (
	runIDColumn = "run_id"
	timeColumn  = "time"
)

type dataCell struct {
	table  string
	runID  int64
	time   string
	fields []string
	values []rowparse.Value
}

type SQLStorage struct {
	mu         sync.Mutex
	dataDocker []*dataCell
	db         sqldb.DBer
	Table      map[string]struct{}
	options
}

func New(opts ...Option) (*SQLStorage, error) {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}

	s := &SQLStorage{}
	s.options = options
	s.Table = make(map[string]struct{})
	if s.BatchCount < 1 {
		s.BatchCount = 1
	}

	var err error
	s.db, err = sqldb.New(
		sqldb.WithDriver(s.driver),
		sqldb.WithConnURL(s.sqlURL),
		sqldb.WithLogger(s.logger),
	)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Save buffers the records of one feed run and flushes whenever the
// buffer holds BatchCount records.
func (s *SQLStorage) Save(feed string, runID int64, set *rowparse.RecordSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, rec := range set.Records() {
		if len(s.dataDocker) >= s.BatchCount {
			if err := s.flush(); err != nil {
				return err
			}
		}
		s.dataDocker = append(s.dataDocker, &dataCell{
			table:  feed,
			runID:  runID,
			time:   now,
			fields: rec.Fields(),
			values: rec.Values(),
		})
	}

	return nil
}

func (s *SQLStorage) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.flush()
}

// Close flushes what is left and releases the database.
func (s *SQLStorage) Close() error {
	err := s.Flush()
	if c, ok := s.db.(io.Closer); ok {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}

	return err
}

func (s *SQLStorage) flush() error {
	if len(s.dataDocker) == 0 {
		return nil
	}

	defer func() {
		s.dataDocker = nil
	}()

	var order []string
	tables := make(map[string]*sqldb.TableData)
	for _, cell := range s.dataDocker {
		t, ok := tables[cell.table]
		if !ok {
			t = &sqldb.TableData{
				TableName:   cell.table,
				ColumnNames: getFields(cell),
				AutoKey:     true,
			}
			tables[cell.table] = t
			order = append(order, cell.table)
		}

		for _, v := range cell.values {
			if v.IsMissing() {
				t.Args = append(t.Args, nil)
			} else {
				t.Args = append(t.Args, v.String())
			}
		}
		t.Args = append(t.Args, cell.runID, cell.time)
		t.DataCount++
	}

	for _, name := range order {
		t := tables[name]
		if _, ok := s.Table[name]; !ok {
			if err := s.db.CreateTable(*t); err != nil {
				s.logger.Error("create table failed", zap.String("table", name), zap.Error(err))
				return err
			}
			s.Table[name] = struct{}{}
		}

		if err := s.db.Insert(*t); err != nil {
			s.logger.Error("insert data failed", zap.String("table", name), zap.Error(err))
			return err
		}
		s.logger.Debug("flushed", zap.String("table", name), zap.Int("count", t.DataCount))
	}

	return nil
}

func getFields(cell *dataCell) []sqldb.Field {
	columns := make([]sqldb.Field, 0, len(cell.fields)+2)
	for _, f := range cell.fields {
		columns = append(columns, sqldb.Field{Title: f, Type: "TEXT"})
	}
	columns = append(columns,
		sqldb.Field{Title: runIDColumn, Type: "BIGINT"},
		sqldb.Field{Title: timeColumn, Type: "VARCHAR(32)"},
	)

	return columns
}
