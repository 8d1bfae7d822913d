// Package ch is the ClickHouse client behind the hit log. It uses clickhouse-go's native
// protocol connection and batches inserts
package ch

import (
	"context"
	"strings"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// Config configures the connection
type Config struct {
	Addr     []string
	Database string
	User     string
	Password string
	Role     string // reported in client info
	Tag      string
	Timeout  time.Duration
}

// CH wraps a native connection
type CH struct {
	conn driver.Conn
}

// Options converts cfg to driver options
func Options(cfg Config) *clickhouse.Options {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	db := cfg.Database
	if db == "" {
		db = "default"
	}
	return &clickhouse.Options{
		Addr: cfg.Addr,
		Auth: clickhouse.Auth{
			Database: db,
			Username: cfg.User,
			Password: cfg.Password,
		},
		ClientInfo:  BuildClientInfo(cfg.Role, cfg.Tag),
		DialTimeout: timeout,
		Compression: &clickhouse.Compression{Method: clickhouse.CompressionLZ4},
	}
}

// Open dials ClickHouse. The driver connects lazily; call Ping to verify
func Open(_ context.Context, cfg Config) (*CH, error) {
	conn, err := clickhouse.Open(Options(cfg))
	if err != nil {
		return nil, err
	}
	return &CH{conn: conn}, nil
}

// Insert appends rows to table in one batch. Each row lists column values in table order
func (c *CH) Insert(ctx context.Context, table string, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}
	batch, err := c.conn.PrepareBatch(ctx, "INSERT INTO "+table)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if err := batch.Append(row...); err != nil {
			_ = batch.Abort()
			return err
		}
	}
	return batch.Send()
}

// Exec runs a statement without results, such as DDL
func (c *CH) Exec(ctx context.Context, sql string, args ...any) error {
	return c.conn.Exec(ctx, sql, args...)
}

// Query runs sql and returns its rows
func (c *CH) Query(ctx context.Context, sql string, args ...any) (driver.Rows, error) {
	return c.conn.Query(ctx, sql, args...)
}

// Ping checks the connection
func (c *CH) Ping(ctx context.Context) error { return c.conn.Ping(ctx) }

// Close closes the connection
func (c *CH) Close() error { return c.conn.Close() }

// SplitAddr parses a comma-separated host:port list
func SplitAddr(s string) []string {
	var out []string
	for _, a := range strings.Split(s, ",") {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}
