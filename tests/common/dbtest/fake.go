//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

// MockDBTX is a testify mock satisfying db.DBTX. Query and QueryRow results
// are returned as configured; args are passed through as one slice.
type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, sql, args)
	rows, _ := mockArgs.Get(0).(pgx.Rows)
	return rows, mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, sql, args)
	return mockArgs.Get(0).(pgx.Row)
}

func (m *MockDBTX) Begin(ctx context.Context) (pgx.Tx, error) {
	mockArgs := m.Called(ctx)
	tx, _ := mockArgs.Get(0).(pgx.Tx)
	return tx, mockArgs.Error(1)
}

// FakeRow scans fixed values into destinations of the same type.
type FakeRow struct {
	Values []any
	Err    error
}

func (r FakeRow) Scan(dest ...any) error {
	if r.Err != nil {
		return r.Err
	}
	return assign(r.Values, dest)
}

// FakeRows iterates over fixed rows.
type FakeRows struct {
	Rows   [][]any
	ErrVal error
	pos    int
}

func (r *FakeRows) Close()                                       {}
func (r *FakeRows) Err() error                                   { return r.ErrVal }
func (r *FakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *FakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *FakeRows) RawValues() [][]byte                          { return nil }
func (r *FakeRows) Conn() *pgx.Conn                              { return nil }

func (r *FakeRows) Next() bool {
	if r.pos >= len(r.Rows) {
		return false
	}
	r.pos++
	return true
}

func (r *FakeRows) Scan(dest ...any) error {
	return assign(r.Rows[r.pos-1], dest)
}

func (r *FakeRows) Values() ([]any, error) {
	return r.Rows[r.pos-1], nil
}

func assign(values, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("fake row: %d values for %d destinations", len(values), len(dest))
	}
	for i, d := range dest {
		if values[i] == nil {
			continue
		}
		target := reflect.ValueOf(d).Elem()
		v := reflect.ValueOf(values[i])
		if !v.Type().AssignableTo(target.Type()) {
			return fmt.Errorf("fake row: column %d is %s, destination is %s", i, v.Type(), target.Type())
		}
		target.Set(v)
	}
	return nil
}

// Tag builds a command tag reporting n affected rows.
func Tag(op string, n int) pgconn.CommandTag {
	return pgconn.NewCommandTag(fmt.Sprintf("%s %d", op, n))
}
