package gecko

import (
	"github.com/dreamerjackson/moonbag/extract"
	"github.com/dreamerjackson/moonbag/feed"
	"github.com/dreamerjackson/moonbag/rowparse"
)

var Categories = &feed.Feed{
	Name:     "categories",
	Title:    "Top crypto categories",
	URL:      Base + "/en/categories",
	Selector: tableRows,
	Link:     true,
	Words:    true,
	Schema: rowparse.MustSchema(
		rowparse.Fixed("rank"),
		rowparse.Variable("name"),
		rowparse.Fixed("change_1h"),
		rowparse.Fixed("change_24h"),
		rowparse.Fixed("change_7d"),
		rowparse.Fixed("market_cap"),
		rowparse.Fixed("volume_24h"),
		rowparse.Fixed("n_of_coins"),
		rowparse.Fixed("url"),
	),
}

// The percent-change cells are rendered only for some coins, so they
// are kept as one span.
var RecentlyAdded = &feed.Feed{
	Name:     "recently_added",
	Title:    "Recently added coins",
	URL:      Base + "/en/coins/recently_added",
	Selector: tableRows,
	Link:     true,
	Schema: rowparse.MustSchema(
		rowparse.Fixed("name"),
		rowparse.Fixed("symbol"),
		rowparse.Skip(),
		rowparse.Fixed("price"),
		rowparse.Variable("changes", rowparse.Joiner(" / ")),
		rowparse.Fixed("market_cap"),
		rowparse.Fixed("volume_24h"),
		rowparse.Fixed("last_added"),
		rowparse.Fixed("url"),
	),
}

// The symbol cell renders two text nodes, the ticker and the buy button.
// Rows without a 30d change are one token short.
var StableCoins = &feed.Feed{
	Name:     "stablecoins",
	Title:    "Stablecoins",
	URL:      Base + "/en/stablecoins",
	Selector: tableRows,
	Link:     true,
	Schema: rowparse.MustSchema(
		rowparse.Fixed("rank"),
		rowparse.Fixed("name"),
		rowparse.Fixed("symbol"),
		rowparse.Skip(),
		rowparse.Fixed("price"),
		rowparse.Fixed("volume_24h"),
		rowparse.Fixed("exchanges"),
		rowparse.Fixed("market_cap"),
		rowparse.Fixed("change_30d"),
		rowparse.Fixed("url"),
	),
	Gap: &rowparse.Gap{At: 8},
}

// The rank column is missing on unranked coins; column 3 is the buy
// button.
var TopVolume = &feed.Feed{
	Name:     "top_volume",
	Title:    "Coins with the highest volume",
	URL:      Base + "/en/coins/high_volume",
	Selector: tableRows,
	Schema: rowparse.MustSchema(
		rowparse.Fixed("rank"),
		rowparse.Fixed("name"),
		rowparse.Fixed("symbol"),
		rowparse.Skip(),
		rowparse.Fixed("price"),
		rowparse.Fixed("change_1h"),
		rowparse.Fixed("change_24h"),
		rowparse.Fixed("change_7d"),
		rowparse.Fixed("volume_24h"),
		rowparse.Fixed("market_cap"),
	),
	Gap: &rowparse.Gap{At: 0},
}

var TopDefi = &feed.Feed{
	Name:     "top_defi",
	Title:    "Top DeFi coins",
	URL:      Base + "/en/defi",
	Selector: tableRows,
	Link:     true,
	Schema: rowparse.MustSchema(
		rowparse.Fixed("rank"),
		rowparse.Fixed("name"),
		rowparse.Skip(),
		rowparse.Fixed("symbol"),
		rowparse.Fixed("price"),
		rowparse.Fixed("change_1h"),
		rowparse.Fixed("change_24h"),
		rowparse.Fixed("change_7d"),
		rowparse.Fixed("volume_24h"),
		rowparse.Fixed("market_cap"),
		rowparse.Skip(), // fully diluted market cap
		rowparse.Skip(), // market cap to tvl ratio
		rowparse.Fixed("url"),
	),
	Gap: &rowparse.Gap{At: 5},
}

func gainersLosers(name, title string, index int) *feed.Feed {
	return &feed.Feed{
		Name:     name,
		Title:    title,
		URL:      Base + "/en/coins/trending?time=h24",
		Selector: extract.Selector{Table: "tbody", TableIndex: index, Row: "tr"},
		Link:     true,
		Schema: rowparse.MustSchema(
			rowparse.Fixed("symbol"),
			rowparse.Fixed("name"),
			rowparse.SkipSpan(),
			rowparse.Fixed("volume"),
			rowparse.Fixed("price"),
			rowparse.Fixed("change_24h"),
			rowparse.Fixed("url"),
		),
	}
}

var (
	TopGainers = gainersLosers("top_gainers", "Top gainers (24h)", 0)
	TopLosers  = gainersLosers("top_losers", "Top losers (24h)", 1)
)

var discoverCategories = []struct {
	name  string
	title string
}{
	{"trending", "Trending coins"},
	{"most_voted", "Most voted coins"},
	{"positive_sentiment", "Coins with positive sentiment"},
	{"recently_discovered", "Recently added on discover"},
	{"most_visited", "Most visited coins"},
}

// discover boxes list a name, optional badges, and a BTC price.
func discover() []*feed.Feed {
	schema := rowparse.MustSchema(rowparse.Fixed("name"), rowparse.SkipSpan(), rowparse.Fixed("price_btc"), rowparse.Fixed("url"))

	feeds := make([]*feed.Feed, len(discoverCategories))
	for i, c := range discoverCategories {
		feeds[i] = &feed.Feed{
			Name:  c.name,
			Title: c.title,
			URL:   Base + "/en/discover",
			Selector: extract.Selector{
				Table:      "div.col-12.col-sm-6.col-md-6.col-lg-4",
				TableIndex: i,
				Row:        "a",
			},
			Link:   true,
			Schema: schema,
		}
	}

	return feeds
}
