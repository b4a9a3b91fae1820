//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by a pool, a connection or a transaction
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func InsertCoupon(t *testing.T, db DBLike, code string, discount decimal.Decimal) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO coupons (code, discount) VALUES ($1, $2) ON CONFLICT (code) DO UPDATE SET discount = EXCLUDED.discount",
		code, discount.String())
	require.NoError(t, err)
}

func InsertPrices(t *testing.T, db DBLike, adult, child0to5, child6to10 decimal.Decimal) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO prices (id, adult, child_0_5, child_6_10) VALUES (1, $1, $2, $3) ON CONFLICT (id) DO UPDATE SET adult = EXCLUDED.adult, child_0_5 = EXCLUDED.child_0_5, child_6_10 = EXCLUDED.child_6_10",
		adult.String(), child0to5.String(), child6to10.String())
	require.NoError(t, err)
}

func DeleteAddress(t *testing.T, db DBLike) {
	t.Helper()

	_, err := db.Exec(context.Background(), "DELETE FROM addresses")
	require.NoError(t, err)
}

func CountReservations(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM reservations").Scan(&n)
	require.NoError(t, err)
	return n
}

// SeedCouponCode is present after every reset
const SeedCouponCode = "DESCONTO10"

// inserts the settings rows and coupon the form expects to find
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO prices (id, adult, child_0_5, child_6_10, location_title, reservation_title)
		VALUES (1, 69.90, 0, 45, 'Unidade Centro', 'Reserva de Rodízio')
		ON CONFLICT (id) DO NOTHING;
		INSERT INTO addresses (id, address) VALUES (1, 'Rua das Flores, 123 - Centro')
		ON CONFLICT (id) DO NOTHING;
		INSERT INTO coupons (code, discount) VALUES ('DESCONTO10', 10)
		ON CONFLICT (code) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
