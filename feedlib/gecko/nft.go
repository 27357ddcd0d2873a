package gecko

import (
	"github.com/dreamerjackson/moonbag/extract"
	"github.com/dreamerjackson/moonbag/feed"
	"github.com/dreamerjackson/moonbag/rowparse"
)

var TopNFTs = &feed.Feed{
	Name:     "top_nfts",
	Title:    "Top NFT coins",
	URL:      Base + "/en/nft",
	Selector: tableRows,
	Link:     true,
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
		rowparse.Fixed("url"),
	),
	Gap:       &rowparse.Gap{At: 5, Sentinel: "N/A"},
	Sentinels: []string{"N/A"},
}

// overview boxes read "<value> <metric words...>"
var overviewSchema = rowparse.MustSchema(
	rowparse.Fixed("value"),
	rowparse.Variable("metric"),
)

var overviewBoxes = extract.Selector{Row: "span.overview-box.d-inline-block.p-3.mr-2"}

var NFTMarketStatus = &feed.Feed{
	Name:     "nft_market_status",
	Title:    "NFT market status",
	URL:      Base + "/en/nft",
	Selector: overviewBoxes,
	Schema:   overviewSchema,
}

// The highlight card lists the author line, a description and the
// collection link; the trailing text node is the call to action.
var NFTOfTheDay = &feed.Feed{
	Name:     "nft_of_the_day",
	Title:    "NFT of the day",
	URL:      Base + "/en/nft",
	Selector: extract.Selector{Row: `div[class="tw-px-4 tw-py-5 sm:tw-p-6"]`},
	Link:     true,
	Schema: rowparse.MustSchema(
		rowparse.Variable("author"),
		rowparse.Fixed("description"),
		rowparse.Skip(),
		rowparse.Fixed("url"),
	),
}
