package instant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     time.Time
		offset   string
		dateOnly bool
	}{
		{
			name:   "datetime with offset",
			input:  "2025-07-01T09:00:00+10:00",
			want:   time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC),
			offset: "+10:00",
		},
		{
			name:   "datetime with zulu",
			input:  "2025-07-01T09:00:00Z",
			want:   time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC),
			offset: "Z",
		},
		{
			name:  "datetime without offset",
			input: "2025-07-01T09:00:00",
			want:  time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "date only",
			input:    "2025-07-22",
			want:     time.Date(2025, 7, 22, 0, 0, 0, 0, time.UTC),
			dateOnly: true,
		},
		{
			name:   "fractional seconds",
			input:  "2025-07-01T09:00:00.123456+00:00",
			want:   time.Date(2025, 7, 1, 9, 0, 0, 123456000, time.UTC),
			offset: "+00:00",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.True(t, got.Time.Equal(tc.want), "got %v, want %v", got.Time, tc.want)
			assert.Equal(t, tc.offset, got.Offset)
			assert.Equal(t, tc.dateOnly, got.DateOnly)
		})
	}
}

func TestParseEmptyIsAbsent(t *testing.T) {
	got, err := Parse("")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestParseFailure(t *testing.T) {
	for _, input := range []string{"not a date", "2025/07/01", "20250701T090000"} {
		got, err := Parse(input)
		assert.Nil(t, got)

		var perr *ParseError
		require.ErrorAs(t, err, &perr, "input %q", input)
		assert.Equal(t, input, perr.Input)
	}
}

func TestCanonical(t *testing.T) {
	got, err := Parse("2025-07-01T09:00:00.123456Z")
	require.NoError(t, err)

	// Canonical form drops the fraction and carries no timezone literal.
	assert.Equal(t, "2025-07-01T09:00:00", got.Canonical())
	assert.Equal(t, "20250701", got.DateKey())
}

func TestOffsetOr(t *testing.T) {
	withOffset, err := Parse("2025-07-01T09:00:00+11:00")
	require.NoError(t, err)
	assert.Equal(t, "+11:00", withOffset.OffsetOr("+00:00"))

	without, err := Parse("2025-07-01T09:00:00")
	require.NoError(t, err)
	assert.Equal(t, "+00:00", without.OffsetOr("+00:00"))
}
