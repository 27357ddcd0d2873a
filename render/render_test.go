package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dreamerjackson/moonbag/feed"
	"github.com/dreamerjackson/moonbag/rowparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coins(t *testing.T) *rowparse.RecordSet {
	t.Helper()
	a := rowparse.NewAssembler(rowparse.MustSchema(rowparse.Fixed("symbol"), rowparse.Fixed("price")))
	set, _, err := a.Assemble([]string{"BTC\n$30,000", "ETH\n?", "SOL\n$20"})
	require.NoError(t, err)

	return set
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	Table(&buf, coins(t), 2)

	out := buf.String()
	assert.Contains(t, out, "SYMBOL")
	assert.Contains(t, out, "$30,000")
	assert.Contains(t, out, None)
	assert.NotContains(t, out, "SOL")
	assert.True(t, strings.HasPrefix(out, "╭"))
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, coins(t), 0))
	assert.JSONEq(t, `[
		{"symbol": "BTC", "price": "$30,000"},
		{"symbol": "ETH", "price": null},
		{"symbol": "SOL", "price": "$20"}
	]`, buf.String())
	assert.Less(t, strings.Index(buf.String(), "symbol"), strings.Index(buf.String(), "price"))

	buf.Reset()
	require.NoError(t, JSON(&buf, rowparse.NewRecordSet([]string{"a"}), 5))
	assert.JSONEq(t, `[]`, buf.String())
}

func TestFeeds(t *testing.T) {
	var buf bytes.Buffer
	Feeds(&buf, []*feed.Feed{{Name: "stablecoins", Title: "Stablecoins", URL: "https://x/en/stablecoins"}})
	assert.Contains(t, buf.String(), "stablecoins")
	assert.Contains(t, buf.String(), "https://x/en/stablecoins")
}

func TestJSONMap(t *testing.T) {
	var buf bytes.Buffer
	err := JSONMap(&buf, map[string]*rowparse.RecordSet{
		"coins": coins(t),
		"empty": rowparse.NewRecordSet([]string{"a"}),
	}, 1)
	require.NoError(t, err)
	assert.JSONEq(t, `{"coins": [{"symbol": "BTC", "price": "$30,000"}], "empty": []}`, buf.String())
}
