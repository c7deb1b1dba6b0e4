// Package datastore executes generated SQL against the SAP B1 company
// database and materializes results into a transport-friendly shape.
package datastore

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/microsoft/go-mssqldb"
	"go.uber.org/zap"
)

// DefaultMaxRows caps result sets so a runaway query cannot exhaust the
// process. Callers that need more should page in the database.
const DefaultMaxRows = 1000

// ResultSet holds the materialized result of one query. Columns preserves
// the order declared by the database; each row carries the same order
// through to JSON.
type ResultSet struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Executor runs one read-only query per call against the company database.
type Executor interface {
	// Query executes sqlQuery and returns all rows, bounded by the
	// configured row cap.
	Query(ctx context.Context, sqlQuery string) (*ResultSet, error)

	// Close releases the underlying connection pool.
	Close() error
}

// Config contains SQL Server connection options for the B1 company
// database.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string

	QueryTimeout time.Duration // Per-query deadline; 0 disables the bound
	MaxRows      int           // 0 means DefaultMaxRows
}

// SQLServer is the go-mssqldb backed Executor.
type SQLServer struct {
	db      *sql.DB
	timeout time.Duration
	maxRows int
	logger  *zap.Logger
}

// Ensure SQLServer implements Executor at compile time.
var _ Executor = (*SQLServer)(nil)

// connectionString builds a sqlserver:// URL with user-provided fields
// escaped, so passwords containing @, /, or ? do not break parsing.
func connectionString(cfg *Config) string {
	query := url.Values{}
	query.Add("database", cfg.Database)

	return fmt.Sprintf("sqlserver://%s:%s@%s:%d?%s",
		url.QueryEscape(cfg.User),
		url.QueryEscape(cfg.Password),
		cfg.Host,
		cfg.Port,
		query.Encode(),
	)
}

// NewSQLServer opens a connection pool to the company database. The pool
// is lazy; connectivity problems surface on first query, which the
// pipeline captures as an execution failure rather than a startup one.
func NewSQLServer(cfg *Config, logger *zap.Logger) (*SQLServer, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("database host is required")
	}
	if cfg.Database == "" {
		return nil, fmt.Errorf("database name is required")
	}

	db, err := sql.Open("sqlserver", connectionString(cfg))
	if err != nil {
		return nil, fmt.Errorf("open connection: %w", err)
	}

	return newWithDB(db, cfg, logger), nil
}

func newWithDB(db *sql.DB, cfg *Config, logger *zap.Logger) *SQLServer {
	maxRows := cfg.MaxRows
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}
	return &SQLServer{
		db:      db,
		timeout: cfg.QueryTimeout,
		maxRows: maxRows,
		logger:  logger.Named("datastore"),
	}
}

// Query executes sqlQuery and zips each row's values with the declared
// column names, preserving column order in ResultSet.Columns and in
// every Row. The rows cursor is released on every exit path.
func (e *SQLServer) Query(ctx context.Context, sqlQuery string) (*ResultSet, error) {
	if strings.TrimSpace(sqlQuery) == "" {
		return nil, fmt.Errorf("empty SQL query")
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	start := time.Now()

	rows, err := e.db.QueryContext(ctx, sqlQuery)
	if err != nil {
		return nil, fmt.Errorf("execute query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("read column types: %w", err)
	}

	result := &ResultSet{
		Columns: columns,
		Rows:    make([]Row, 0),
	}

	for rows.Next() {
		if len(result.Rows) >= e.maxRows {
			e.logger.Warn("result truncated at row cap", zap.Int("max_rows", e.maxRows))
			break
		}

		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		for i := range values {
			if b, ok := values[i].([]byte); ok && isStringType(columnTypes[i].DatabaseTypeName()) {
				values[i] = string(b)
			}
		}
		result.Rows = append(result.Rows, NewRow(columns, values))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	e.logger.Debug("query executed",
		zap.Int("rows", len(result.Rows)),
		zap.Int("columns", len(columns)),
		zap.Duration("elapsed", time.Since(start)))

	return result, nil
}

// Close releases the connection pool.
func (e *SQLServer) Close() error {
	return e.db.Close()
}

// isStringType reports whether a SQL Server type should be decoded from
// []byte to string for JSON transport.
func isStringType(dbType string) bool {
	switch strings.ToUpper(dbType) {
	case "CHAR", "VARCHAR", "NCHAR", "NVARCHAR", "TEXT", "NTEXT", "XML":
		return true
	default:
		return false
	}
}
