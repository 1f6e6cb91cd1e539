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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

// TestPassword matches testPasswordHash.
const TestPassword = "password123"

func CreateTestUser(t *testing.T, db DBLike, email, name string, roles ...string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, name, user_code, password_hash, roles, is_active) VALUES ($1, $2, $3, $4, $5, $6, true) ON CONFLICT (email) DO NOTHING",
		userID, email, name, strings.SplitN(email, "@", 2)[0], testPasswordHash, roles)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func LinkAdvisor(t *testing.T, db DBLike, studentID, teacherID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), "INSERT INTO advisor_links (student_id, teacher_id) VALUES ($1, $2) ON CONFLICT DO NOTHING", studentID, teacherID)
	require.NoError(t, err)
}

func CreateTestDevice(t *testing.T, db DBLike, code, status string, priceExternal decimal.Decimal) uuid.UUID {
	t.Helper()

	deviceID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO devices (id, code, model, manufacturer, status, price_internal, price_external) VALUES ($1, $2, $3, 'Lab Instruments', $4, 0, $5) ON CONFLICT (code) DO NOTHING",
		deviceID, code, "Model "+code, status, priceExternal.String())
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM devices WHERE code = $1", code).Scan(&deviceID)
	}

	return deviceID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO devices (code, model, manufacturer, status, price_internal, price_external) VALUES
		    ('SEED-1', 'Spectrometer', 'Lab Instruments', 'available', 0, 100.00)
		ON CONFLICT (code) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
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
