//go:build unit

package db_test

import (
	"os"
	"regexp"
	"testing"

	"lab-reservation/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const initMigration = "../../../migrations/000001_init.up.sql"

var quoted = regexp.MustCompile(`'([a-z_]+)'`)

func quotedValues(fragment string) []string {
	var out []string
	for _, m := range quoted.FindAllStringSubmatch(fragment, -1) {
		out = append(out, m[1])
	}
	return out
}

func readSchema(t *testing.T) string {
	t.Helper()
	raw, err := os.ReadFile(initMigration)
	require.NoError(t, err)
	return string(raw)
}

func TestBookingStatusCheckMatchesDomain(t *testing.T) {
	schema := readSchema(t)

	m := regexp.MustCompile(`(?s)status\s+TEXT NOT NULL CHECK \(status IN \((.*?)\)\)`).FindStringSubmatch(schema)
	require.NotNil(t, m, "bookings.status CHECK not found")

	allowed := quotedValues(m[1])
	want := make([]string, 0, len(booking.AllStatuses))
	for _, s := range booking.AllStatuses {
		want = append(want, string(s))
	}
	assert.ElementsMatch(t, want, allowed)
}

func TestActiveSlotIndexMatchesOccupancy(t *testing.T) {
	schema := readSchema(t)

	m := regexp.MustCompile(`(?s)CREATE UNIQUE INDEX ux_bookings_active_slot.*?WHERE status IN \((.*?)\);`).FindStringSubmatch(schema)
	require.NotNil(t, m, "ux_bookings_active_slot not found")

	assert.ElementsMatch(t, booking.OccupiedStatusStrings(), quotedValues(m[1]))
	for _, s := range quotedValues(m[1]) {
		assert.True(t, booking.Status(s).IsValid(), s)
	}
}
