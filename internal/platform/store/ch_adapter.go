package store

import (
	"context"

	"wordguard/internal/platform/store/ch"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// chAdapter exposes *ch.CH as Clickhouse
type chAdapter struct{ *ch.CH }

func (a chAdapter) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	r, err := a.CH.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return chRows{r}, nil
}

// chRows matches Rows; Close errors are dropped
type chRows struct{ driver.Rows }

func (r chRows) Close() { _ = r.Rows.Close() }
