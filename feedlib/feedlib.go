package feedlib

import (
	"github.com/dreamerjackson/moonbag/feed"
	"github.com/dreamerjackson/moonbag/feedlib/gecko"
)

func init() {
	feed.Store.Add(gecko.Feeds()...)
}
