package gecko

import (
	"github.com/dreamerjackson/moonbag/feed"
	"github.com/dreamerjackson/moonbag/rowparse"
)

func companies(coin, symbol string) *feed.Feed {
	return &feed.Feed{
		Name:     "companies_" + symbol,
		Title:    "Public companies holding " + coin,
		URL:      Base + "/en/public-companies-" + coin,
		Selector: tableRows,
		Link:     true,
		Schema: rowparse.MustSchema(
			rowparse.Fixed("rank"),
			rowparse.Fixed("company"),
			rowparse.Fixed("ticker"),
			rowparse.Fixed("country"),
			rowparse.Fixed("total_holdings"),
			rowparse.Fixed("entry_value"),
			rowparse.Fixed("today_value"),
			rowparse.Fixed("pct_of_supply"),
			rowparse.Fixed("url"),
		),
	}
}

func holdingsOverview(coin, symbol string) *feed.Feed {
	return &feed.Feed{
		Name:     symbol + "_holdings_overview",
		Title:    "Public companies " + coin + " holdings overview",
		URL:      Base + "/en/public-companies-" + coin,
		Selector: overviewBoxes,
		Schema:   overviewSchema,
	}
}

var (
	CompaniesBTC        = companies("bitcoin", "btc")
	CompaniesETH        = companies("ethereum", "eth")
	BTCHoldingsOverview = holdingsOverview("bitcoin", "btc")
	ETHHoldingsOverview = holdingsOverview("ethereum", "eth")
)
