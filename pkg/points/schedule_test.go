package points

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDailyPoints(t *testing.T) {
	tests := []struct {
		name      string
		streakDay int
		want      int64
	}{
		{name: "day 1", streakDay: 1, want: 5000},
		{name: "day 7", streakDay: 7, want: 40000},
		{name: "day 30", streakDay: 30, want: 1000000},
		{name: "day 31 falls back to day 1", streakDay: 31, want: 5000},
		{name: "day 0 falls back to day 1", streakDay: 0, want: 5000},
		{name: "negative day falls back to day 1", streakDay: -5, want: 5000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DailyPoints(tt.streakDay))
		})
	}
}

func TestDailyPointsMonotonic(t *testing.T) {
	for day := 2; day <= 30; day++ {
		assert.GreaterOrEqual(t, DailyPoints(day), DailyPoints(day-1), "day %d", day)
	}
}

func TestNextMilestone(t *testing.T) {
	tests := []struct {
		name          string
		currentStreak int
		wantMilestone int
		wantDays      int
	}{
		{name: "fresh streak targets day 7", currentStreak: 0, wantMilestone: 7, wantDays: 7},
		{name: "at a milestone targets the next", currentStreak: 7, wantMilestone: 14, wantDays: 7},
		{name: "past the last milestone", currentStreak: 35, wantMilestone: 30, wantDays: -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			milestone, days := NextMilestone(tt.currentStreak)
			assert.Equal(t, tt.wantMilestone, milestone)
			assert.Equal(t, tt.wantDays, days)
		})
	}
}

func TestStreakBonus(t *testing.T) {
	tests := []struct {
		name           string
		streakDay      int
		wantMultiplier float64
		wantLabel      string
	}{
		{name: "no bonus before day 7", streakDay: 6, wantMultiplier: 1, wantLabel: ""},
		{name: "day 7 bonus", streakDay: 7, wantMultiplier: 1.1, wantLabel: "7-Day Achiever"},
		{name: "day 14 bonus", streakDay: 14, wantMultiplier: 1.2, wantLabel: "14-Day Master"},
		{name: "day 21 bonus", streakDay: 21, wantMultiplier: 1.3, wantLabel: "21-Day Warrior"},
		{name: "day 30 bonus", streakDay: 30, wantMultiplier: 1.5, wantLabel: "30-Day Champion"},
		{name: "past day 30 keeps champion bonus", streakDay: 45, wantMultiplier: 1.5, wantLabel: "30-Day Champion"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			multiplier, label := StreakBonus(tt.streakDay)
			assert.Equal(t, tt.wantMultiplier, multiplier)
			assert.Equal(t, tt.wantLabel, label)
		})
	}
}

func TestTotalPoints(t *testing.T) {
	total, bonus := TotalPoints(40000, 7)
	assert.Equal(t, int64(44000), total)
	assert.Equal(t, int64(4000), bonus)

	total, bonus = TotalPoints(5000, 1)
	assert.Equal(t, int64(5000), total)
	assert.Equal(t, int64(0), bonus)
}
