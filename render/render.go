// Package render prints record sets for humans and for other programs.
package render

import (
	"encoding/json"
	"io"

	"github.com/dreamerjackson/moonbag/feed"
	"github.com/dreamerjackson/moonbag/rowparse"
	"github.com/jedib0t/go-pretty/v6/table"
)

// None is how a missing value is shown in tables.
const None = "None"

// Table writes the first limit records of set as a rounded table. A
// limit below 1 prints every record.
func Table(w io.Writer, set *rowparse.RecordSet, limit int) {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	header := table.Row{}
	for _, f := range set.Fields() {
		header = append(header, f)
	}
	t.AppendHeader(header)

	for _, rec := range set.Head(limit) {
		row := table.Row{}
		for _, v := range rec.Values() {
			if v.IsMissing() {
				row = append(row, None)
				continue
			}
			row = append(row, v.String())
		}
		t.AppendRow(row)
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

// JSON writes the records as an indented array of objects whose keys
// keep schema order; missing values are null.
func JSON(w io.Writer, set *rowparse.RecordSet, limit int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	records := set.Head(limit)
	if records == nil {
		records = []rowparse.Record{}
	}

	return enc.Encode(records)
}

// JSONMap writes several sets as one object keyed by feed name.
func JSONMap(w io.Writer, sets map[string]*rowparse.RecordSet, limit int) error {
	out := make(map[string][]rowparse.Record, len(sets))
	for name, set := range sets {
		records := set.Head(limit)
		if records == nil {
			records = []rowparse.Record{}
		}
		out[name] = records
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

// Feeds lists registered feeds.
func Feeds(w io.Writer, feeds []*feed.Feed) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Name", "Title", "URL"})

	for _, f := range feeds {
		t.AppendRow(table.Row{f.Name, f.Title, f.URL})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}
