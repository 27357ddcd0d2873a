package feed

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/dreamerjackson/moonbag/engine"
	"github.com/dreamerjackson/moonbag/extract"
	"github.com/dreamerjackson/moonbag/feed"
	"github.com/dreamerjackson/moonbag/rowparse"
	"github.com/dreamerjackson/moonbag/sqldb"
	"github.com/dreamerjackson/moonbag/sqlstorage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, "INFO", cfg.Get("logLevel").String("INFO"))
	assert.Equal(t, 5000, cfg.Get("fetcher", "timeout").Int(5000))

	storage, closer, err := newStorage(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, closer)
	assert.IsType(t, engine.EmptyStorage{}, storage)

	policy, err := policyOf(cfg)
	require.NoError(t, err)
	assert.Equal(t, rowparse.SkipRow, policy)
}

func TestLoadConfig(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "moonbag.db")
	path := writeConfig(t, `
logLevel = "warn"

[fetcher]
timeout = 1500
proxy = ["http://127.0.0.1:8888"]
limits = [{eventCount = 1, eventDur = 2, bucket = 1}]

[storage]
type = "sqlite"
sqlURL = "`+dbPath+`"

[engine]
policy = "abort"
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1500, cfg.Get("fetcher", "timeout").Int(5000))
	assert.Equal(t, []string{"http://127.0.0.1:8888"}, cfg.Get("fetcher", "proxy").StringSlice(nil))

	policy, err := policyOf(cfg)
	require.NoError(t, err)
	assert.Equal(t, rowparse.AbortFeed, policy)

	storage, closer, err := newStorage(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &sqlstorage.SQLStorage{}, storage)
	assert.NoError(t, closer.Close())
}

func TestBadConfig(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, `
[storage]
type = "postgres"

[engine]
policy = "retry"
`))
	require.NoError(t, err)

	_, _, err = newStorage(cfg, zap.NewNop())
	assert.Error(t, err)
	_, err = policyOf(cfg)
	assert.Error(t, err)
}

const pairPage = `<table><tbody>
<tr><td>BTC</td><td>$30,000</td></tr>
<tr><td>ETH</td><td>?</td></tr>
<tr><td>broken</td></tr>
</tbody></table>`

func pairFeed(name, url string) *feed.Feed {
	return &feed.Feed{
		Name:     name,
		Title:    "Test pairs",
		URL:      url,
		Selector: extract.Selector{Table: "tbody", Row: "tr"},
		Schema:   rowparse.MustSchema(rowparse.Fixed("symbol"), rowparse.Fixed("price")),
	}
}

func TestRun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(pairPage))
	}))
	defer srv.Close()

	feed.Store.Add(pairFeed("test_run_pairs", srv.URL))

	dbPath := filepath.Join(t.TempDir(), "moonbag.db")
	configPath = writeConfig(t, `
logLevel = "error"

[fetcher]
retries = 0
cacheTTL = 0

[storage]
type = "sqlite"
sqlURL = "`+dbPath+`"
`)
	defer func() { configPath, limit, jsonOut = "config.toml", 0, false }()

	var buf bytes.Buffer
	require.NoError(t, Run(context.Background(), &buf, []string{"test_run_pairs"}))
	assert.Contains(t, buf.String(), "Test pairs (2 records, 1 rows skipped)")
	assert.Contains(t, buf.String(), "None")

	jsonOut = true
	buf.Reset()
	require.NoError(t, Run(context.Background(), &buf, []string{"test_run_pairs"}))
	assert.JSONEq(t, `[{"symbol": "BTC", "price": "$30,000"}, {"symbol": "ETH", "price": null}]`, buf.String())

	d, err := sqldb.New(sqldb.WithDriver(sqldb.SQLite), sqldb.WithConnURL(dbPath))
	require.NoError(t, err)
	defer d.Close()
	var n int
	require.NoError(t, d.DB().QueryRow(`SELECT COUNT(*) FROM test_run_pairs`).Scan(&n))
	assert.Equal(t, 4, n)
}

func TestRunUnknownFeed(t *testing.T) {
	err := Run(context.Background(), &bytes.Buffer{}, []string{"no_such_feed"})
	assert.ErrorIs(t, err, feed.ErrNotFound)
}

func TestParse(t *testing.T) {
	page := filepath.Join(t.TempDir(), "stable.html")
	require.NoError(t, os.WriteFile(page, []byte(`<table><tbody>
<tr><td>1</td><td><a href="/en/coins/tether">Tether</a></td><td>USDT</td><td>Buy</td><td>$1.00</td><td>$50B</td><td>400</td><td>$80B</td><td>0.1%</td></tr>
<tr><td>2</td><td><a href="/en/coins/mystery">Mystery</a></td><td>MYS</td><td>Buy</td><td>$1.01</td><td>$1M</td><td>3</td><td>$2M</td></tr>
</tbody></table>`), 0o644))

	configPath = filepath.Join(t.TempDir(), "none.toml")
	jsonOut = true
	defer func() { configPath, jsonOut = "config.toml", false }()

	var buf bytes.Buffer
	require.NoError(t, Parse(&buf, "stablecoins", page))
	assert.JSONEq(t, `[
		{"rank": "1", "name": "Tether", "symbol": "USDT", "price": "$1.00", "volume_24h": "$50B",
		 "exchanges": "400", "market_cap": "$80B", "change_30d": "0.1%",
		 "url": "https://www.coingecko.com/en/coins/tether"},
		{"rank": "2", "name": "Mystery", "symbol": "MYS", "price": "$1.01", "volume_24h": "$1M",
		 "exchanges": "3", "market_cap": "$2M", "change_30d": null,
		 "url": "https://www.coingecko.com/en/coins/mystery"}
	]`, buf.String())

	assert.Error(t, Parse(&buf, "stablecoins", filepath.Join(t.TempDir(), "nope.html")))
}
