package rowparse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values(r Record) []string {
	out := make([]string, 0, r.Len())
	for _, v := range r.Values() {
		if v.IsMissing() {
			out = append(out, "<missing>")
			continue
		}
		out = append(out, v.String())
	}

	return out
}

func TestNewSchema(t *testing.T) {
	tests := []struct {
		name    string
		fields  []Field
		wantErr bool
		isAmbig bool
	}{
		{name: "fixed only", fields: []Field{Fixed("a"), Fixed("b")}},
		{name: "one variable", fields: []Field{Fixed("a"), Variable("b"), Fixed("c")}},
		{name: "two variables", fields: []Field{Variable("a"), Fixed("b"), Variable("c")}, wantErr: true, isAmbig: true},
		{name: "variable and counter", fields: []Field{Variable("a"), CounterSplit("n", "x", "y", "N/A")}, wantErr: true, isAmbig: true},
		{name: "skip span and variable", fields: []Field{SkipSpan(), Variable("a")}, wantErr: true, isAmbig: true},
		{name: "duplicate", fields: []Field{Fixed("a"), Fixed("a")}, wantErr: true},
		{name: "empty name", fields: []Field{Fixed("")}, wantErr: true},
		{name: "no fields", fields: nil, wantErr: true},
		{name: "only skips", fields: []Field{Skip(), Skip()}, wantErr: true},
		{name: "negative width", fields: []Field{Fixed("a", Width(-1))}, wantErr: true},
		{name: "width on variable", fields: []Field{Variable("a", Width(2))}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSchema(tt.fields...)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.NotNil(t, s)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.isAmbig, errors.Is(err, ErrSchemaAmbiguous))
		})
	}
}

func TestSchemaShape(t *testing.T) {
	s := MustSchema(Fixed("rank"), Skip(), CounterSplit("n", "a", "b", "N/A"), Fixed("tvl"))
	assert.Equal(t, []string{"rank", "n", "a", "b", "tvl"}, s.Fields())
	assert.Equal(t, 4, s.MinTokens())
	assert.True(t, s.Elastic())

	w := MustSchema(Fixed("rank"), Fixed("name", Width(2)), Fixed("volume"))
	assert.Equal(t, 4, w.MinTokens())
	assert.Equal(t, []string{"rank", "name", "volume"}, w.Fields())

	f := MustSchema(Fixed("a"), Skip(), Fixed("b"))
	assert.Equal(t, 3, f.MinTokens())
	assert.False(t, f.Elastic())
	assert.NoError(t, f.Check(3))
	assert.ErrorIs(t, f.Check(4), ErrShapeMismatch)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		schema *Schema
		tokens Tokens
		fields []string
		want   []string
	}{
		{
			name:   "fixed",
			schema: MustSchema(Fixed("rank"), Fixed("name"), Fixed("price")),
			tokens: Tokens{"1", "Bitcoin", "$20,000"},
			fields: []string{"rank", "name", "price"},
			want:   []string{"1", "Bitcoin", "$20,000"},
		},
		{
			name:   "multi word name",
			schema: MustSchema(Fixed("rank"), Variable("name"), Fixed("change_1h"), Fixed("coins")),
			tokens: Tokens{"3", "Smart", "Contract", "Platform", "0.5%", "120"},
			fields: []string{"rank", "name", "change_1h", "coins"},
			want:   []string{"3", "Smart Contract Platform", "0.5%", "120"},
		},
		{
			name:   "empty variable span",
			schema: MustSchema(Fixed("value"), Variable("metric", Joiner("-"))),
			tokens: Tokens{"$1B"},
			fields: []string{"value", "metric"},
			want:   []string{"$1B", ""},
		},
		{
			name:   "discarded middle",
			schema: MustSchema(Fixed("symbol"), Fixed("name"), SkipSpan(), Fixed("volume"), Fixed("price"), Fixed("change")),
			tokens: Tokens{"BTC", "Bitcoin", "junk", "more junk", "$1B", "$20k", "3%"},
			fields: []string{"symbol", "name", "volume", "price", "change"},
			want:   []string{"BTC", "Bitcoin", "$1B", "$20k", "3%"},
		},
		{
			name:   "skipped column",
			schema: MustSchema(Fixed("rank"), Fixed("name"), Skip(), Fixed("symbol")),
			tokens: Tokens{"1", "Aave", "Buy", "AAVE"},
			fields: []string{"rank", "name", "symbol"},
			want:   []string{"1", "Aave", "AAVE"},
		},
		{
			name:   "noise removed",
			schema: MustSchema(Fixed("rank"), Fixed("name", Noise("Trading Incentives"))),
			tokens: Tokens{"2", "dYdX Trading Incentives"},
			fields: []string{"rank", "name"},
			want:   []string{"2", "dYdX"},
		},
		{
			name:   "wide field",
			schema: MustSchema(Fixed("rank"), Fixed("name", Width(2), Noise("Trading Incentives")), Fixed("volume")),
			tokens: Tokens{"2", "Curve", "(v2) Trading Incentives", "$300M"},
			fields: []string{"rank", "name", "volume"},
			want:   []string{"2", "Curve (v2)", "$300M"},
		},
		{
			name:   "wide field with joiner",
			schema: MustSchema(Fixed("pair", Width(2), Joiner("/")), Fixed("price")),
			tokens: Tokens{"ETH", "USDC", "$1,800"},
			fields: []string{"pair", "price"},
			want:   []string{"ETH/USDC", "$1,800"},
		},
		{
			name:   "wide field after variable",
			schema: MustSchema(Fixed("rank"), Variable("name"), Fixed("range", Width(2)), Fixed("url")),
			tokens: Tokens{"7", "Wrapped", "Bitcoin", "$1", "$2", "https://x/wbtc"},
			fields: []string{"rank", "name", "range", "url"},
			want:   []string{"7", "Wrapped Bitcoin", "$1 $2", "https://x/wbtc"},
		},
		{
			name: "counter split in the middle",
			schema: MustSchema(Fixed("rank"), Fixed("name"), Fixed("pool"),
				CounterSplit("audit_count", "audits", "collateral", "N/A"),
				Fixed("value_locked"), Fixed("returns_year"), Fixed("returns_hour")),
			tokens: Tokens{"1", "Rank1", "PoolName", "2", "AuditorA", "AuditorB", "Coll1", "Coll2", "100", "5%", "1%"},
			fields: []string{"rank", "name", "pool", "audit_count", "audits", "collateral", "value_locked", "returns_year", "returns_hour"},
			want:   []string{"1", "Rank1", "PoolName", "2", "AuditorA, AuditorB", "Coll1, Coll2", "100", "5%", "1%"},
		},
		{
			name:   "counter split without count field",
			schema: MustSchema(Fixed("rank"), CounterSplit("", "audits", "collateral", "N/A", Joiner(",")), Fixed("tvl")),
			tokens: Tokens{"1", "N/A", "ETH", "USDC", "$5M"},
			fields: []string{"rank", "audits", "collateral", "tvl"},
			want:   []string{"1", "", "ETH,USDC", "$5M"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := tt.schema.Parse(tt.tokens)
			require.NoError(t, err)
			assert.Equal(t, tt.fields, rec.Fields())
			if diff := cmp.Diff(tt.want, values(rec)); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	fixed := MustSchema(Fixed("a"), Fixed("b"), Fixed("c"))
	_, err := fixed.Parse(Tokens{"1", "2"})
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = fixed.Parse(Tokens{"1", "2", "3", "4"})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	elastic := MustSchema(Fixed("a"), Variable("b"), Fixed("c"))
	_, err = elastic.Parse(Tokens{"1"})
	var shape *ShapeError
	require.ErrorAs(t, err, &shape)
	assert.True(t, shape.Elastic)
	assert.Equal(t, 2, shape.Expected)

	counter := MustSchema(Fixed("a"), CounterSplit("n", "x", "y", "N/A"))
	_, err = counter.Parse(Tokens{"1"})
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = counter.Parse(Tokens{"1", "CertiK", "ETH"})
	assert.ErrorIs(t, err, ErrMalformedCounterPrefix)
}

func TestParseDoesNotMutate(t *testing.T) {
	s := MustSchema(Fixed("rank"), CounterSplit("n", "x", "y", "N/A"), Fixed("tvl"))
	tokens := Tokens{"1", "1", "A", "B", "$1"}
	_, err := s.Parse(tokens)
	require.NoError(t, err)
	assert.Equal(t, Tokens{"1", "1", "A", "B", "$1"}, tokens)
}
