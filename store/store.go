package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx"
	_ "modernc.org/sqlite"              // registers "sqlite"

	"github.com/katalvlaran/qtlattice/lattice"
)

const (
	driverSQLite   = "sqlite"
	driverPostgres = "pgx"

	// DefaultPath is the SQLite file used for an empty DSN.
	DefaultPath = "qtlattice.db"
)

var sqlOpen = sql.Open

// Record is one persisted readout.
type Record struct {
	ID        int64
	Lattice   string
	Family    string
	Raw       string
	Type      lattice.ReadoutType
	Readout   lattice.Readout
	CreatedAt time.Time
}

// Store is a readout table on a SQLite or Postgres database.
type Store struct {
	db     *sql.DB
	driver string
}

// Open connects to dsn and creates the readouts table if needed.
func Open(ctx context.Context, dsn string) (*Store, error) {
	driver := driverSQLite
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		driver = driverPostgres
	case dsn == "":
		dsn = DefaultPath
	}
	if driver == driverSQLite {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}

	db, err := sqlOpen(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	s := &Store{db: db, driver: driver}
	if err := s.ensureTable(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) ensureTable(ctx context.Context) error {
	id, payload := "INTEGER PRIMARY KEY AUTOINCREMENT", "TEXT"
	if s.driver == driverPostgres {
		id, payload = "BIGSERIAL PRIMARY KEY", "JSONB"
	}
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS readouts (
		id %s,
		lattice TEXT NOT NULL,
		family TEXT NOT NULL,
		raw TEXT NOT NULL,
		kind TEXT NOT NULL,
		logical INTEGER NOT NULL,
		syndromes %s NOT NULL,
		created_at TEXT NOT NULL
	)`, id, payload)
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensure readouts table: %w", err)
	}

	return nil
}

// rebind rewrites ? placeholders into the driver's style.
func (s *Store) rebind(query string) string {
	if s.driver != driverPostgres {
		return query
	}

	return rebindDollar(query)
}

func rebindDollar(query string) string {
	var sb strings.Builder
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] != '?' {
			sb.WriteByte(query[i])
			continue
		}
		n++
		sb.WriteByte('$')
		sb.WriteString(strconv.Itoa(n))
	}

	return sb.String()
}

// Save inserts r and returns its id. A zero CreatedAt is set to now.
func (s *Store) Save(ctx context.Context, r Record) (int64, error) {
	syndromes, err := json.Marshal(r.Readout.Syndromes)
	if err != nil {
		return 0, fmt.Errorf("encode syndromes: %w", err)
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	var id int64
	err = s.db.QueryRowContext(ctx, s.rebind(
		`INSERT INTO readouts(lattice,family,raw,kind,logical,syndromes,created_at) VALUES(?,?,?,?,?,?,?) RETURNING id`),
		r.Lattice, r.Family, r.Raw, string(r.Type), r.Readout.Logical, string(syndromes),
		r.CreatedAt.UTC().Format(time.RFC3339Nano),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert readout: %w", err)
	}

	return id, nil
}

const selectColumns = `SELECT id,lattice,family,raw,kind,logical,syndromes,created_at FROM readouts`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (Record, error) {
	var (
		r         Record
		kind      string
		syndromes []byte
		created   string
	)
	if err := row.Scan(&r.ID, &r.Lattice, &r.Family, &r.Raw, &kind, &r.Readout.Logical, &syndromes, &created); err != nil {
		return Record{}, err
	}
	r.Type = lattice.ReadoutType(kind)
	if err := json.Unmarshal(syndromes, &r.Readout.Syndromes); err != nil {
		return Record{}, fmt.Errorf("decode syndromes of record %d: %w", r.ID, err)
	}
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Record{}, fmt.Errorf("decode created_at of record %d: %w", r.ID, err)
	}
	r.CreatedAt = t

	return r, nil
}

// Get returns the record with the given id.
func (s *Store) Get(ctx context.Context, id int64) (Record, error) {
	r, err := scanRecord(s.db.QueryRowContext(ctx, s.rebind(selectColumns+` WHERE id = ?`), id))
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return Record{}, fmt.Errorf("select readout %d: %w", id, err)
	}

	return r, nil
}

// List returns the records of one lattice prefix (all when empty), oldest
// first. A limit ≤ 0 means no limit.
func (s *Store) List(ctx context.Context, latticeName string, limit int) ([]Record, error) {
	query := selectColumns
	var args []any
	if latticeName != "" {
		query += ` WHERE lattice = ?`
		args = append(args, latticeName)
	}
	query += ` ORDER BY id`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, s.rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("select readouts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]Record, 0)
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate readouts: %w", err)
	}

	return out, nil
}

// DB exposes the underlying sql.DB.
func (s *Store) DB() *sql.DB { return s.db }

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }
