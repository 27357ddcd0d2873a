// Package gecko declares the coingecko.com tables moonbag knows how to read.
package gecko

import (
	"github.com/dreamerjackson/moonbag/extract"
	"github.com/dreamerjackson/moonbag/feed"
)

const Base = "https://www.coingecko.com"

var tableRows = extract.Selector{Table: "tbody", Row: "tr"}

func Feeds() []*feed.Feed {
	feeds := []*feed.Feed{
		Categories,
		RecentlyAdded,
		StableCoins,
		YieldFarms,
		TopVolume,
		TopDefi,
		TopDexes,
		TopNFTs,
		TopGainers,
		TopLosers,
		CompaniesBTC,
		CompaniesETH,
		BTCHoldingsOverview,
		ETHHoldingsOverview,
		NFTMarketStatus,
		NFTOfTheDay,
		News,
	}

	return append(feeds, discover()...)
}
