package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocaleDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
		want  time.Time
	}{
		{"empty", "", false, time.Time{}},
		{"valid date", "15/03/2023", true, time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"nonexistent calendar date", "31/02/2023", false, time.Time{}},
		{"iso format rejected", "2023-03-15", false, time.Time{}},
		{"garbage", "soon", false, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLocaleDate(tt.input)
			assert.Equal(t, tt.valid, got.Valid)
			if tt.valid {
				assert.True(t, got.Time.Equal(tt.want), "got %v, want %v", got.Time, tt.want)
			}
		})
	}
}

func TestParseLocaleWeight(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
		want  float64
	}{
		{"empty", "", false, 0},
		{"decimal comma", "72,5", true, 72.5},
		{"decimal point", "72.5", true, 72.5},
		{"integer", "80", true, 80},
		{"unit suffix", "72,5 kg", true, 72.5},
		{"negative", "-5", true, 5}, // the sign is stripped with the other non-numeric chars
		{"garbage", "heavy", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLocaleWeight(tt.input)
			assert.Equal(t, tt.valid, got.Valid)
			if tt.valid {
				assert.InDelta(t, tt.want, got.Float64, 0.0001)
			}
		})
	}
}

func TestReadCSVStripsByteOrderMark(t *testing.T) {
	path := filepath.Join(t.TempDir(), "equipment.csv")
	content := "\uFEFFUserId;TypeId;Reference\nalice;Wheelchair;REF-1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	rows, err := readCSV(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "UserId", rows[0][0], "leading BOM must not survive into the first header")

	col := headerIndex(rows[0])
	assert.Equal(t, "alice", cell(rows[1], col, "userid"))
}

func TestHeaderIndexAndCell(t *testing.T) {
	header := []string{" UserId ", "TypeId", "Reference"}
	col := headerIndex(header)

	row := []string{"alice", "Wheelchair", " REF-1 "}
	assert.Equal(t, "alice", cell(row, col, "userid"))
	assert.Equal(t, "Wheelchair", cell(row, col, "typeid"))
	assert.Equal(t, "REF-1", cell(row, col, "reference"))

	assert.Equal(t, "", cell(row, col, "weight"), "unknown column yields empty, not column zero")
	assert.Equal(t, "", cell([]string{"alice"}, col, "reference"), "short row yields empty")
}
