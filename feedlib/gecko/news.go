package gecko

import (
	"github.com/dreamerjackson/moonbag/extract"
	"github.com/dreamerjackson/moonbag/feed"
	"github.com/dreamerjackson/moonbag/rowparse"
)

// Article headers hold the title on its own line, then the author and
// the relative posting time in parentheses.
var News = &feed.Feed{
	Name:     "news",
	Title:    "Latest crypto news",
	URL:      Base + "/en/news",
	Selector: extract.Selector{Row: "article header"},
	Link:     true,
	Schema: rowparse.MustSchema(
		rowparse.Fixed("title"),
		rowparse.Variable("byline"),
		rowparse.Fixed("url"),
	),
}
