package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/denisok6893-rgb/brew-matching/internal/domain"
)

// ErrNotFound is returned when a saved equipment record does not exist.
var ErrNotFound = errors.New("storage: not found")

// timeLayout has fixed-width fractions so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return newSQLiteStore(db), nil
}

func newSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

// Catalog rows keep the full record as JSON; seq preserves import order.
func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS machines (
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  id TEXT NOT NULL UNIQUE,
  type TEXT NOT NULL,
  price_range TEXT NOT NULL,
  boiler_type TEXT NOT NULL,
  data_json TEXT NOT NULL
);`,
		`CREATE TABLE IF NOT EXISTS grinders (
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  id TEXT NOT NULL UNIQUE,
  type TEXT NOT NULL,
  burr_type TEXT NOT NULL,
  price_range TEXT NOT NULL,
  data_json TEXT NOT NULL
);`,
		`CREATE TABLE IF NOT EXISTS beans (
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  id TEXT NOT NULL UNIQUE,
  roast_level TEXT NOT NULL,
  in_stock INTEGER NOT NULL DEFAULT 1,
  data_json TEXT NOT NULL
);`,
		`CREATE INDEX IF NOT EXISTS idx_beans_roast ON beans(roast_level);`,
		`CREATE TABLE IF NOT EXISTS equipment (
  id TEXT PRIMARY KEY,
  catalog_id TEXT NOT NULL DEFAULT '',
  kind TEXT NOT NULL,
  name TEXT NOT NULL,
  brand TEXT NOT NULL DEFAULT '',
  purchase_date TEXT,
  last_maintenance TEXT,
  favorite_beans_json TEXT NOT NULL DEFAULT '[]',
  notes TEXT NOT NULL DEFAULT '',
  is_custom INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL
);`,
	}
	for _, q := range stmts {
		if _, err := s.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// ImportCatalog inserts the catalog without duplicating by id. Existing rows
// keep their position.
func (s *SQLiteStore) ImportCatalog(ctx context.Context, cat domain.Catalog) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, m := range cat.Machines {
		data, err := json.Marshal(m)
		if err != nil {
			return fmt.Errorf("marshal machine %q: %w", m.ID, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO machines (id, type, price_range, boiler_type, data_json) VALUES (?, ?, ?, ?, ?)`,
			m.ID, m.Type, m.PriceRange, m.BoilerType, string(data),
		); err != nil {
			return fmt.Errorf("insert machine %q: %w", m.ID, err)
		}
	}
	for _, g := range cat.Grinders {
		data, err := json.Marshal(g)
		if err != nil {
			return fmt.Errorf("marshal grinder %q: %w", g.ID, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO grinders (id, type, burr_type, price_range, data_json) VALUES (?, ?, ?, ?, ?)`,
			g.ID, g.Type, g.BurrType, g.PriceRange, string(data),
		); err != nil {
			return fmt.Errorf("insert grinder %q: %w", g.ID, err)
		}
	}
	for _, b := range cat.Beans {
		data, err := json.Marshal(b)
		if err != nil {
			return fmt.Errorf("marshal bean %q: %w", b.ID, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO beans (id, roast_level, in_stock, data_json) VALUES (?, ?, ?, ?)`,
			b.ID, b.RoastLevel, b.InStock, string(data),
		); err != nil {
			return fmt.Errorf("insert bean %q: %w", b.ID, err)
		}
	}
	return tx.Commit()
}

// LoadCatalog reads the imported catalog back in import order.
func (s *SQLiteStore) LoadCatalog(ctx context.Context) (domain.Catalog, error) {
	var (
		cat domain.Catalog
		err error
	)
	if cat.Machines, err = loadRows[domain.EspressoMachine](ctx, s.db, `SELECT data_json FROM machines ORDER BY seq`); err != nil {
		return domain.Catalog{}, fmt.Errorf("load machines: %w", err)
	}
	if cat.Grinders, err = loadRows[domain.CoffeeGrinder](ctx, s.db, `SELECT data_json FROM grinders ORDER BY seq`); err != nil {
		return domain.Catalog{}, fmt.Errorf("load grinders: %w", err)
	}
	if cat.Beans, err = loadRows[domain.CoffeeBean](ctx, s.db, `SELECT data_json FROM beans ORDER BY seq`); err != nil {
		return domain.Catalog{}, fmt.Errorf("load beans: %w", err)
	}
	return cat, nil
}

// CountBeans returns how many beans have been imported.
func (s *SQLiteStore) CountBeans(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM beans`).Scan(&n)
	return n, err
}

func loadRows[T any](ctx context.Context, db *sql.DB, query string) ([]T, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var v T
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// ---- my equipment ----

const equipmentColumns = `id, catalog_id, kind, name, brand, purchase_date, last_maintenance, favorite_beans_json, notes, is_custom, created_at`

// AddEquipment stores a new record and returns it with its id and creation time set.
func (s *SQLiteStore) AddEquipment(ctx context.Context, e domain.UserEquipment) (domain.UserEquipment, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.CreatedAt = s.now().UTC()
	e.IsCustom = e.CatalogID == ""
	if e.FavoriteBeans == nil {
		e.FavoriteBeans = []string{}
	}
	fav, _ := json.Marshal(e.FavoriteBeans)

	_, err := s.db.ExecContext(ctx, `
INSERT INTO equipment (`+equipmentColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
		e.ID, e.CatalogID, e.Kind, e.Name, e.Brand,
		formatTime(e.PurchaseDate), formatTime(e.LastMaintenance),
		string(fav), e.Notes, e.IsCustom, e.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return domain.UserEquipment{}, fmt.Errorf("insert equipment: %w", err)
	}
	return e, nil
}

func (s *SQLiteStore) GetEquipment(ctx context.Context, id string) (domain.UserEquipment, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+equipmentColumns+` FROM equipment WHERE id = ?`, id)
	e, err := scanEquipment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.UserEquipment{}, ErrNotFound
	}
	if err != nil {
		return domain.UserEquipment{}, err
	}
	return e, nil
}

// ListEquipment returns saved equipment, oldest first.
func (s *SQLiteStore) ListEquipment(ctx context.Context) ([]domain.UserEquipment, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+equipmentColumns+` FROM equipment ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.UserEquipment{}
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) DeleteEquipment(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM equipment WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	aff, _ := res.RowsAffected()
	return aff > 0, nil
}

// AddFavoriteBean appends beanID to the favorites once.
func (s *SQLiteStore) AddFavoriteBean(ctx context.Context, id, beanID string) (domain.UserEquipment, error) {
	return s.updateFavorites(ctx, id, func(fav []string) []string {
		for _, f := range fav {
			if f == beanID {
				return fav
			}
		}
		return append(fav, beanID)
	})
}

func (s *SQLiteStore) RemoveFavoriteBean(ctx context.Context, id, beanID string) (domain.UserEquipment, error) {
	return s.updateFavorites(ctx, id, func(fav []string) []string {
		out := fav[:0]
		for _, f := range fav {
			if f != beanID {
				out = append(out, f)
			}
		}
		return out
	})
}

func (s *SQLiteStore) updateFavorites(ctx context.Context, id string, fn func([]string) []string) (domain.UserEquipment, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.UserEquipment{}, err
	}
	defer func() { _ = tx.Rollback() }()

	e, err := scanEquipment(tx.QueryRowContext(ctx, `SELECT `+equipmentColumns+` FROM equipment WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.UserEquipment{}, ErrNotFound
	}
	if err != nil {
		return domain.UserEquipment{}, err
	}

	e.FavoriteBeans = fn(e.FavoriteBeans)
	fav, _ := json.Marshal(e.FavoriteBeans)
	if _, err := tx.ExecContext(ctx, `UPDATE equipment SET favorite_beans_json = ? WHERE id = ?`, string(fav), id); err != nil {
		return domain.UserEquipment{}, err
	}
	return e, tx.Commit()
}

// RecordMaintenance sets the last maintenance date.
func (s *SQLiteStore) RecordMaintenance(ctx context.Context, id string, at time.Time) (domain.UserEquipment, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE equipment SET last_maintenance = ? WHERE id = ?`, formatTime(&at), id)
	if err != nil {
		return domain.UserEquipment{}, err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return domain.UserEquipment{}, ErrNotFound
	}
	return s.GetEquipment(ctx, id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEquipment(r rowScanner) (domain.UserEquipment, error) {
	var (
		e                      domain.UserEquipment
		purchase, maintenance  sql.NullString
		favJSON, createdAtText string
	)
	if err := r.Scan(
		&e.ID, &e.CatalogID, &e.Kind, &e.Name, &e.Brand,
		&purchase, &maintenance, &favJSON, &e.Notes, &e.IsCustom, &createdAtText,
	); err != nil {
		return domain.UserEquipment{}, err
	}
	_ = json.Unmarshal([]byte(favJSON), &e.FavoriteBeans)
	if e.FavoriteBeans == nil {
		e.FavoriteBeans = []string{}
	}
	e.PurchaseDate = parseTime(purchase)
	e.LastMaintenance = parseTime(maintenance)
	e.CreatedAt, _ = time.Parse(timeLayout, createdAtText)
	return e, nil
}

func formatTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(timeLayout)
}

func parseTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(timeLayout, s.String)
	if err != nil {
		return nil
	}
	return &t
}
