package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"fmtrack/internal/modules/catalog/domain"
	catalogout "fmtrack/internal/modules/catalog/port/out"
	apperrors "fmtrack/internal/platform/errors"

	_ "modernc.org/sqlite"
)

type SQLiteItemStore struct {
	db *sql.DB
}

func NewSQLiteItemStore(dbPath string) (*SQLiteItemStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteItemStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

var _ catalogout.ItemStore = (*SQLiteItemStore)(nil)

func (s *SQLiteItemStore) ensureSchema(ctx context.Context) error {
	// UNIQUE on (name, category): the same item name appears in more
	// than one category with different prices.
	const ddl = `
CREATE TABLE IF NOT EXISTS items (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  art_nr INTEGER,
  name TEXT NOT NULL,
  category TEXT NOT NULL,
  buy_price REAL DEFAULT 0,
  current_buy_price REAL DEFAULT 0,
  sell_price REAL DEFAULT 0,
  can_purchase INTEGER DEFAULT 1,
  can_sell INTEGER DEFAULT 1,
  notes TEXT,
  UNIQUE(name, category)
);
CREATE INDEX IF NOT EXISTS idx_items_art_nr ON items(art_nr);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create items table: %w", err)
	}
	return nil
}

func (s *SQLiteItemStore) Upsert(ctx context.Context, item domain.Item) error {
	return s.upsert(ctx, s.db, item)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *SQLiteItemStore) upsert(ctx context.Context, db execer, item domain.Item) error {
	const stmt = `
INSERT INTO items (art_nr, name, category, buy_price, current_buy_price, sell_price, can_purchase, can_sell, notes)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(name, category) DO UPDATE SET
  art_nr=excluded.art_nr,
  buy_price=excluded.buy_price,
  current_buy_price=excluded.current_buy_price,
  sell_price=excluded.sell_price,
  can_purchase=excluded.can_purchase,
  can_sell=excluded.can_sell,
  notes=excluded.notes;
`
	_, err := db.ExecContext(ctx, stmt,
		item.ArtNr,
		item.Name,
		item.Category,
		item.BuyPrice,
		item.CurrentBuyPrice,
		item.SellPrice,
		boolToInt(item.CanPurchase),
		boolToInt(item.CanSell),
		item.Notes,
	)
	if err != nil {
		return fmt.Errorf("upsert item: %w", err)
	}
	return nil
}

// UpsertBatch writes all rows in one transaction so an import either
// lands whole or not at all.
func (s *SQLiteItemStore) UpsertBatch(ctx context.Context, items []domain.Item) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin item batch: %w", err)
	}
	for _, item := range items {
		if err := s.upsert(ctx, tx, item); err != nil {
			tx.Rollback()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit item batch: %w", err)
	}
	return nil
}

func (s *SQLiteItemStore) List(ctx context.Context, category string) ([]domain.Item, error) {
	query := `SELECT art_nr, name, category, buy_price, current_buy_price, sell_price, can_purchase, can_sell, COALESCE(notes, '') FROM items`
	args := []any{}
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY category, name`
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *SQLiteItemStore) FindByArtNr(ctx context.Context, artNr int) (domain.Item, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT art_nr, name, category, buy_price, current_buy_price, sell_price, can_purchase, can_sell, COALESCE(notes, '') FROM items WHERE art_nr = ? LIMIT 1`,
		artNr)
	return scanOne(row, fmt.Sprintf("art_nr %d", artNr))
}

func (s *SQLiteItemStore) Find(ctx context.Context, name, category string) (domain.Item, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT art_nr, name, category, buy_price, current_buy_price, sell_price, can_purchase, can_sell, COALESCE(notes, '') FROM items WHERE name = ? AND category = ?`,
		name, category)
	return scanOne(row, fmt.Sprintf("%s/%s", category, name))
}

func (s *SQLiteItemStore) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT category FROM items ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *SQLiteItemStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(sc scanner) (domain.Item, error) {
	var item domain.Item
	var canPurchase, canSell int
	if err := sc.Scan(&item.ArtNr, &item.Name, &item.Category, &item.BuyPrice, &item.CurrentBuyPrice, &item.SellPrice, &canPurchase, &canSell, &item.Notes); err != nil {
		return domain.Item{}, fmt.Errorf("scan item: %w", err)
	}
	item.CanPurchase = canPurchase != 0
	item.CanSell = canSell != 0
	return item, nil
}

func scanOne(row *sql.Row, desc string) (domain.Item, error) {
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Item{}, fmt.Errorf("item %s: %w", desc, apperrors.ErrNotFound)
		}
		return domain.Item{}, err
	}
	return item, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
