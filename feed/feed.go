package feed

import (
	"github.com/dreamerjackson/moonbag/extract"
	"github.com/dreamerjackson/moonbag/rowparse"
)

// Feed is one scraped table: where its rows live on the page and the
// positional contract those rows follow.
type Feed struct {
	Name  string
	Title string
	URL   string

	Selector extract.Selector

	// Link appends the row's absolute link as its last token.
	Link bool
	// Words splits row text on any whitespace instead of line breaks.
	Words bool

	Schema *rowparse.Schema
	// Gap is the one column some rows lack.
	Gap *rowparse.Gap
	// Drop lists label tokens the site injects into some rows.
	Drop []string
	// Sentinels extends rowparse.DefaultSentinels for this feed.
	Sentinels []string
}

// RawRows turns extracted rows into the text blocks the assembler reads.
func (f *Feed) RawRows(rows []extract.Row) []string {
	raw := make([]string, len(rows))
	for i, r := range rows {
		raw[i] = r.Text
		if f.Link && r.Link != "" {
			raw[i] += "\n" + r.Link
		}
	}

	return raw
}

// Assembler builds the feed's row assembler. opts come last and may
// override the feed's own settings.
func (f *Feed) Assembler(opts ...rowparse.Option) *rowparse.Assembler {
	var o []rowparse.Option
	if f.Gap != nil {
		o = append(o, rowparse.WithGap(f.Gap.At, f.Gap.Sentinel))
	}
	if len(f.Drop) > 0 {
		o = append(o, rowparse.WithDrop(f.Drop...))
	}
	if len(f.Sentinels) > 0 {
		o = append(o, rowparse.WithSentinels(f.Sentinels...))
	}
	if f.Words {
		o = append(o, rowparse.WithCleaner(rowparse.CleanWords))
	}

	return rowparse.NewAssembler(f.Schema, append(o, opts...)...)
}

// Normalize runs the whole row pipeline over an already fetched page.
func (f *Feed) Normalize(body []byte, opts ...rowparse.Option) (*rowparse.RecordSet, rowparse.Report, error) {
	rows, err := extract.Rows(body, f.URL, f.Selector)
	if err != nil {
		return nil, rowparse.Report{}, err
	}

	return f.Assembler(opts...).Assemble(f.RawRows(rows))
}
