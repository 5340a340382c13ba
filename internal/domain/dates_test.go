package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDueDate(t *testing.T) {
	ref := time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC) // Tuesday

	tests := map[string]struct {
		text     string
		expected time.Time
		wantErr  string
	}{
		"iso-date": {
			text:     "2026-02-15",
			expected: time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC),
		},
		"iso-timestamp-truncated": {
			text:     "2026-02-15T18:45:00Z",
			expected: time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC),
		},
		"us-slash-format": {
			text:     "02/20/2026",
			expected: time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC),
		},
		"today": {
			text:     "today",
			expected: time.Date(2026, 1, 27, 0, 0, 0, 0, time.UTC),
		},
		"tomorrow-case-insensitive": {
			text:     "  Tomorrow ",
			expected: time.Date(2026, 1, 28, 0, 0, 0, 0, time.UTC),
		},
		"next-friday": {
			text:     "next friday",
			expected: time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC),
		},
		"next-week": {
			text:     "next week",
			expected: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
		},
		"empty": {
			text:    "   ",
			wantErr: "due_date cannot be empty",
		},
		"unrecognizable": {
			text:    "someday maybe",
			wantErr: "due_date 'someday maybe' is not a recognizable date",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseDueDate(tt.text, ref)
			if tt.wantErr != "" {
				var validationErr *ValidationErr
				require.ErrorAs(t, err, &validationErr)
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveRelative(t *testing.T) {
	ref := time.Date(2026, 1, 27, 10, 0, 0, 0, time.UTC) // Tuesday

	tests := map[string]struct {
		token    string
		expected time.Time
		ok       bool
	}{
		"yesterday": {
			token:    "yesterday",
			expected: time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		"next-tuesday-skips-today": {
			token:    "next tuesday",
			expected: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
			ok:       true,
		},
		"next-unknown-weekday": {
			token: "next funday",
			ok:    false,
		},
		"invalid-token": {
			token: "some random text",
			ok:    false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := resolveRelative(tt.token, ref)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestParseWeekday(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected time.Weekday
		ok       bool
	}{
		"sunday": {
			input:    "sunday",
			expected: time.Sunday,
			ok:       true,
		},
		"case-insensitive-mixed": {
			input:    "FrIdAy",
			expected: time.Friday,
			ok:       true,
		},
		"invalid": {
			input: "funday",
			ok:    false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := parseWeekday(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestNextWeekday(t *testing.T) {
	ref := time.Date(2026, 1, 27, 0, 0, 0, 0, time.UTC) // Tuesday

	tests := map[string]struct {
		target   time.Weekday
		expected time.Time
	}{
		"next-monday": {
			target:   time.Monday,
			expected: time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
		},
		"next-tuesday-same-day": {
			target:   time.Tuesday,
			expected: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
		},
		"next-wednesday": {
			target:   time.Wednesday,
			expected: time.Date(2026, 1, 28, 0, 0, 0, 0, time.UTC),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, nextWeekday(ref, tt.target))
		})
	}
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2026, 1, 27, 23, 59, 59, 999999999, time.FixedZone("X", 3600))
	assert.Equal(t, time.Date(2026, 1, 27, 0, 0, 0, 0, time.UTC), dateOnly(in))
}
