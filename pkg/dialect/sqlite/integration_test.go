//go:build integration

package sqlite_test

import (
	"database/sql"
	"math/big"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/typecodec/pkg/dialect"
	"github.com/dmitrymomot/typecodec/pkg/dialect/sqlite"
	"github.com/dmitrymomot/typecodec/pkg/logical"
	"github.com/dmitrymomot/typecodec/pkg/schema"
)

// Round-trips a bound row through a real in-memory SQLite database.
func TestSQLiteRoundTrip(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE events (
		id INTEGER PRIMARY KEY,
		title TEXT,
		price TEXT,
		active INTEGER,
		occurred_at TEXT
	)`)
	require.NoError(t, err)

	s, err := schema.New("events",
		schema.Field{Name: "id", Type: logical.Integer(), PrimaryKey: true},
		schema.Field{Name: "title", Type: logical.String(100)},
		schema.Field{Name: "price", Type: logical.Numeric(10, 2)},
		schema.Field{Name: "active", Type: logical.Bool()},
		schema.Field{Name: "occurred_at", Type: logical.DateTime(false)},
	)
	require.NoError(t, err)

	reg := dialect.NewRegistry()
	require.NoError(t, reg.Register(sqlite.New()))

	occurred := time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)
	row := map[string]any{
		"id":          int64(1),
		"title":       "launch",
		"price":       big.NewRat(1299, 100),
		"active":      true,
		"occurred_at": occurred,
	}

	bound, err := s.BindRow(reg, sqlite.Dialect, row)
	require.NoError(t, err)

	_, err = db.Exec(
		`INSERT INTO events (id, title, price, active, occurred_at) VALUES (?, ?, ?, ?, ?)`,
		bound["id"], bound["title"], bound["price"], bound["active"], bound["occurred_at"],
	)
	require.NoError(t, err)

	var (
		id         int64
		title      string
		price      string
		active     int64
		occurredAt string
	)
	err = db.QueryRow(`SELECT id, title, price, active, occurred_at FROM events WHERE id = ?`, 1).
		Scan(&id, &title, &price, &active, &occurredAt)
	require.NoError(t, err)

	back, err := s.UnbindRow(reg, sqlite.Dialect, map[string]any{
		"id":          id,
		"title":       title,
		"price":       price,
		"active":      active,
		"occurred_at": occurredAt,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), back["id"])
	assert.Equal(t, "launch", back["title"])
	assert.Equal(t, true, back["active"])
	assert.True(t, occurred.Equal(back["occurred_at"].(time.Time)))

	priceBack, ok := back["price"].(*big.Rat)
	require.True(t, ok)
	assert.Zero(t, priceBack.Cmp(big.NewRat(1299, 100)))
}
