package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"category_service/pkg/collation"

	_ "github.com/lib/pq"
	"modernc.org/sqlite"
)

// Dialect is the name of a supported database/sql driver.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

func ParseDialect(s string) (Dialect, error) {
	switch d := Dialect(strings.ToLower(strings.TrimSpace(s))); d {
	case Postgres, SQLite:
		return d, nil
	case "postgresql", "pq":
		return Postgres, nil
	case "sqlite3":
		return SQLite, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", s)
	}
}

// Rebind turns the ? placeholders of query into the dialect's bind syntax.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Names registered on every sqlite connection.
const (
	SQLiteFoldFunc  = "fold_text"
	SQLiteCollation = "pt_br_ci"
)

// FoldExpr case folds the text column col inside a query.
func (d Dialect) FoldExpr(col string) string {
	if d == SQLite {
		return SQLiteFoldFunc + "(" + col + ")"
	}
	return "LOWER(" + col + ")"
}

// FoldTerm folds a search term the same way FoldExpr folds a column.
func (d Dialect) FoldTerm(term string) string {
	if d == SQLite {
		return collation.Fold(term)
	}
	return strings.ToLower(term)
}

// TextOrderExpr is the ORDER BY expression for the text column col. Postgres
// orders with the database collation.
func (d Dialect) TextOrderExpr(col string) string {
	if d == SQLite {
		return col + " COLLATE " + SQLiteCollation
	}
	return col
}

var registerSQLiteExtensions = sync.OnceValue(func() error {
	err := sqlite.RegisterDeterministicScalarFunction(SQLiteFoldFunc, 1,
		func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
			switch v := args[0].(type) {
			case nil:
				return nil, nil
			case string:
				return collation.Fold(v), nil
			case []byte:
				return collation.Fold(string(v)), nil
			default:
				return v, nil
			}
		})
	if err != nil {
		return fmt.Errorf("could not register %s: %w", SQLiteFoldFunc, err)
	}
	if err := sqlite.RegisterCollationUtf8(SQLiteCollation, collation.Compare); err != nil {
		return fmt.Errorf("could not register collation %s: %w", SQLiteCollation, err)
	}
	return nil
})

func Connect(dialect Dialect, databaseURL string) (*sql.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}
	if dialect == SQLite {
		if err := registerSQLiteExtensions(); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open(string(dialect), databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	if dialect == SQLite {
		// one writer at a time
		db.SetMaxOpenConns(1)
	}

	err = db.Ping()
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return db, nil
}

var schemas = map[Dialect]string{
	Postgres: `CREATE TABLE IF NOT EXISTS categories (
	id          UUID PRIMARY KEY,
	name        VARCHAR(255) NOT NULL,
	description TEXT,
	is_active   BOOLEAN NOT NULL DEFAULT TRUE,
	created_at  TIMESTAMPTZ NOT NULL
)`,
	SQLite: `CREATE TABLE IF NOT EXISTS categories (
	id          TEXT PRIMARY KEY,
	name        VARCHAR(255) NOT NULL,
	description TEXT,
	is_active   BOOLEAN NOT NULL DEFAULT TRUE,
	created_at  TIMESTAMP NOT NULL
)`,
}

// EnsureSchema creates the categories table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB, dialect Dialect) error {
	ddl, ok := schemas[dialect]
	if !ok {
		return fmt.Errorf("no schema for dialect %q", dialect)
	}
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("could not create categories table: %w", err)
	}
	return nil
}
