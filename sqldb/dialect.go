package sqldb

import "strings"

const (
	MySQL  = "mysql"
	SQLite = "sqlite"
)

type dialect struct {
	quote   string
	autoKey string
	suffix  string
	// sqlite memory databases live per connection
	maxConns int
}

var dialects = map[string]dialect{
	MySQL: {
		quote:    "`",
		autoKey:  "id INT(12) NOT NULL PRIMARY KEY AUTO_INCREMENT",
		suffix:   " ENGINE=InnoDB DEFAULT CHARSET=utf8mb4",
		maxConns: 2048,
	},
	SQLite: {
		quote:    `"`,
		autoKey:  "id INTEGER PRIMARY KEY AUTOINCREMENT",
		maxConns: 1,
	},
}

func (d dialect) ident(name string) string {
	return d.quote + strings.ReplaceAll(name, d.quote, d.quote+d.quote) + d.quote
}
