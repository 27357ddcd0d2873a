package sqldb

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

type DBer interface {
	CreateTable(t TableData) error
	Insert(t TableData) error
}

type Sqldb struct {
	options
	dialect dialect
	db      *sql.DB
}

type Field struct {
	Title string
	Type  string
}

type TableData struct {
	TableName   string
	ColumnNames []Field
	Args        []interface{} // row-major values, DataCount rows of len(ColumnNames)
	DataCount   int
	AutoKey     bool
}

func New(opts ...Option) (*Sqldb, error) {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}

	dia, ok := dialects[options.driver]
	if !ok {
		return nil, fmt.Errorf("unsupported sql driver %q", options.driver)
	}

	d := &Sqldb{}
	d.options = options
	d.dialect = dia

	if err := d.OpenDB(); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Sqldb) OpenDB() error {
	db, err := sql.Open(d.driver, d.sqlURL)
	if err != nil {
		return err
	}

	db.SetMaxOpenConns(d.dialect.maxConns)
	db.SetMaxIdleConns(d.dialect.maxConns)

	if err = db.Ping(); err != nil {
		db.Close()
		return err
	}

	d.db = db

	return nil
}

// DB exposes the underlying handle for queries outside DBer.
func (d *Sqldb) DB() *sql.DB {
	return d.db
}

func (d *Sqldb) Close() error {
	return d.db.Close()
}

func (d *Sqldb) CreateTable(t TableData) error {
	if len(t.ColumnNames) == 0 {
		return errors.New("column can not be empty")
	}

	cols := make([]string, 0, len(t.ColumnNames)+1)
	if t.AutoKey {
		cols = append(cols, d.dialect.autoKey)
	}
	for _, c := range t.ColumnNames {
		cols = append(cols, d.dialect.ident(c.Title)+" "+c.Type)
	}

	sql := "CREATE TABLE IF NOT EXISTS " + d.dialect.ident(t.TableName) +
		" (" + strings.Join(cols, ",") + ")" + d.dialect.suffix + ";"

	d.logger.Debug("create table", zap.String("sql", sql))

	_, err := d.db.Exec(sql)

	return err
}

func (d *Sqldb) DropTable(t TableData) error {
	sql := "DROP TABLE IF EXISTS " + d.dialect.ident(t.TableName)

	d.logger.Debug("drop table", zap.String("sql", sql))

	_, err := d.db.Exec(sql)

	return err
}

func (d *Sqldb) Insert(t TableData) error {
	if len(t.ColumnNames) == 0 {
		return errors.New("empty column")
	}
	if t.DataCount < 1 {
		return errors.New("no data to insert")
	}
	if len(t.Args) != t.DataCount*len(t.ColumnNames) {
		return fmt.Errorf("insert %s: %d args for %d rows of %d columns",
			t.TableName, len(t.Args), t.DataCount, len(t.ColumnNames))
	}

	cols := make([]string, len(t.ColumnNames))
	for i, c := range t.ColumnNames {
		cols[i] = d.dialect.ident(c.Title)
	}

	sql := "INSERT INTO " + d.dialect.ident(t.TableName) + "(" + strings.Join(cols, ",") + ") VALUES "

	blank := ",(" + strings.Repeat(",?", len(t.ColumnNames))[1:] + ")"
	sql += strings.Repeat(blank, t.DataCount)[1:] + ";"
	d.logger.Debug("insert table", zap.String("sql", sql))
	_, err := d.db.Exec(sql, t.Args...)

	return err
}
