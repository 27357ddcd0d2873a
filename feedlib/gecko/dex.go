package gecko

import (
	"github.com/dreamerjackson/moonbag/feed"
	"github.com/dreamerjackson/moonbag/rowparse"
)

// Exchange names come in two cells, the protocol and its version.
// Newer exchanges have no pair count yet, which leaves the row one token
// short. Incentivized exchanges carry an extra label.
var TopDexes = &feed.Feed{
	Name:     "top_dexes",
	Title:    "Top decentralized exchanges",
	URL:      Base + "/en/dex",
	Selector: tableRows,
	Schema: rowparse.MustSchema(
		rowparse.Fixed("rank"),
		rowparse.Fixed("name", rowparse.Width(2), rowparse.Noise("Trading Incentives")),
		rowparse.Fixed("volume_24h"),
		rowparse.Fixed("number_of_coins"),
		rowparse.Fixed("number_of_pairs"),
		rowparse.Fixed("visits"),
		rowparse.Fixed("most_traded_pairs"),
		rowparse.Fixed("market_share_by_volume"),
	),
	Gap:       &rowparse.Gap{At: 5, Sentinel: "N/A"},
	Drop:      []string{"Trading Incentives"},
	Sentinels: []string{"N/A"},
}
