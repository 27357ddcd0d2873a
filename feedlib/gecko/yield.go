package gecko

import (
	"github.com/dreamerjackson/moonbag/feed"
	"github.com/dreamerjackson/moonbag/rowparse"
)

// Auditors and collateral assets sit next to each other with only a
// leading auditor count between them; "N/A" stands for no audit. Rows
// of unnamed pools lack the pool column. The last two cells are buttons.
var YieldFarms = &feed.Feed{
	Name:     "yield_farms",
	Title:    "Yield farming pools",
	URL:      Base + "/en/yield-farming",
	Selector: tableRows,
	Schema: rowparse.MustSchema(
		rowparse.Fixed("rank"),
		rowparse.Fixed("name"),
		rowparse.Fixed("pool"),
		rowparse.CounterSplit("", "audits", "collateral", "N/A"),
		rowparse.Skip(),
		rowparse.Fixed("value_locked"),
		rowparse.Fixed("returns_year"),
		rowparse.Fixed("returns_hour"),
		rowparse.Skip(),
		rowparse.Skip(),
	),
	Gap:       &rowparse.Gap{At: 2},
	Sentinels: []string{""},
}
