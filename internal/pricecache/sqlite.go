package pricecache

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"QuantDesk/internal/model"
)

// SQLiteCache persists fetched price series to a SQLite database so a
// restart does not refetch recent history.
type SQLiteCache struct {
	db  *sql.DB
	ttl time.Duration
	mu  sync.Mutex
	log zerolog.Logger
	now func() time.Time
}

// NewSQLiteCache opens (or creates) the database and runs migrations.
func NewSQLiteCache(dbPath string, ttl time.Duration, log zerolog.Logger) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so concurrent readers don't block the writer.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	c := &SQLiteCache{
		db:  db,
		ttl: ttl,
		log: log.With().Str("component", "pricecache").Logger(),
		now: time.Now,
	}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	c.log.Info().Str("path", dbPath).Dur("ttl", ttl).Msg("sqlite price cache opened")
	return c, nil
}

func (c *SQLiteCache) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS price_series (
			symbol     TEXT    NOT NULL,
			days       INTEGER NOT NULL,
			fetched_at INTEGER NOT NULL,
			PRIMARY KEY (symbol, days)
		)`,
		`CREATE TABLE IF NOT EXISTS price_points (
			symbol TEXT    NOT NULL,
			days   INTEGER NOT NULL,
			ts     INTEGER NOT NULL,
			close  REAL    NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_points_key ON price_points(symbol, days, ts)`,
	}
	for _, s := range stmts {
		if _, err := c.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (c *SQLiteCache) Get(symbol string, days int) (model.PriceSeries, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var fetchedAt int64
	err := c.db.QueryRow(
		`SELECT fetched_at FROM price_series WHERE symbol = ? AND days = ?`,
		symbol, days,
	).Scan(&fetchedAt)
	if err != nil {
		return model.PriceSeries{}, false
	}
	stored := time.Unix(fetchedAt, 0)
	if c.now().After(stored.Add(c.ttl)) {
		return model.PriceSeries{}, false
	}

	rows, err := c.db.Query(
		`SELECT ts, close FROM price_points WHERE symbol = ? AND days = ? ORDER BY ts`,
		symbol, days,
	)
	if err != nil {
		c.log.Warn().Err(err).Str("symbol", symbol).Msg("cache read failed")
		return model.PriceSeries{}, false
	}
	defer rows.Close()

	var points []model.PricePoint
	for rows.Next() {
		var ts int64
		var close float64
		if err := rows.Scan(&ts, &close); err != nil {
			return model.PriceSeries{}, false
		}
		points = append(points, model.PricePoint{Time: time.Unix(ts, 0).UTC(), Close: close})
	}
	if rows.Err() != nil || len(points) == 0 {
		return model.PriceSeries{}, false
	}

	return model.PriceSeries{Symbol: symbol, Points: points, FetchedAt: stored}, true
}

func (c *SQLiteCache) Put(symbol string, days int, series model.PriceSeries) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tx, err := c.db.Begin()
	if err != nil {
		c.log.Warn().Err(err).Str("symbol", symbol).Msg("cache write failed")
		return
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM price_points WHERE symbol = ? AND days = ?`, symbol, days); err != nil {
		return
	}
	for _, p := range series.Points {
		if _, err := tx.Exec(
			`INSERT INTO price_points (symbol, days, ts, close) VALUES (?,?,?,?)`,
			symbol, days, p.Time.Unix(), p.Close,
		); err != nil {
			return
		}
	}
	if _, err := tx.Exec(
		`INSERT OR REPLACE INTO price_series (symbol, days, fetched_at) VALUES (?,?,?)`,
		symbol, days, c.now().Unix(),
	); err != nil {
		return
	}
	if err := tx.Commit(); err != nil {
		c.log.Warn().Err(err).Str("symbol", symbol).Msg("cache commit failed")
	}
}

func (c *SQLiteCache) Close() error { return c.db.Close() }
