package daytime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, 5, 17, 23, 59, 59, 123, time.UTC)
	assert.Equal(t, time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC), StartOfDay(in))
}

func TestStartOfDayConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)
	in := time.Date(2024, 5, 18, 2, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC), StartOfDay(in))
}

func TestSameDay(t *testing.T) {
	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want bool
	}{
		{
			name: "same calendar day",
			a:    time.Date(2024, 5, 17, 0, 0, 1, 0, time.UTC),
			b:    time.Date(2024, 5, 17, 23, 59, 59, 0, time.UTC),
			want: true,
		},
		{
			name: "adjacent days",
			a:    time.Date(2024, 5, 17, 23, 59, 59, 0, time.UTC),
			b:    time.Date(2024, 5, 18, 0, 0, 0, 0, time.UTC),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SameDay(tt.a, tt.b))
		})
	}
}

func TestConsecutiveDays(t *testing.T) {
	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want bool
	}{
		{
			name: "next day",
			a:    time.Date(2024, 5, 17, 22, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 5, 18, 1, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "previous day",
			a:    time.Date(2024, 5, 18, 1, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 5, 17, 22, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "same day",
			a:    time.Date(2024, 5, 17, 1, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 5, 17, 23, 0, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "two days apart",
			a:    time.Date(2024, 5, 17, 12, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 5, 19, 12, 0, 0, 0, time.UTC),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConsecutiveDays(tt.a, tt.b))
		})
	}
}
