package points

import "math"

// dailySchedule maps streak day (1-indexed) to the base reward for
// completing that day's task.
var dailySchedule = []int64{
	5000,    // day 1
	10000,   // day 2
	15000,   // day 3
	20000,   // day 4
	25000,   // day 5
	30000,   // day 6
	40000,   // day 7
	50000,   // day 8
	60000,   // day 9
	70000,   // day 10
	80000,   // day 11
	90000,   // day 12
	100000,  // day 13
	120000,  // day 14
	140000,  // day 15
	160000,  // day 16
	180000,  // day 17
	200000,  // day 18
	220000,  // day 19
	240000,  // day 20
	260000,  // day 21
	300000,  // day 22
	350000,  // day 23
	400000,  // day 24
	450000,  // day 25
	500000,  // day 26
	600000,  // day 27
	700000,  // day 28
	800000,  // day 29
	1000000, // day 30
}

var milestones = []int{7, 14, 21, 30}

// DailyPoints returns the base reward for the given streak day.
// Days outside the 30-day schedule fall back to the day-1 reward.
func DailyPoints(streakDay int) int64 {
	if streakDay < 1 || streakDay > len(dailySchedule) {
		return dailySchedule[0]
	}
	return dailySchedule[streakDay-1]
}

// NextMilestone returns the next streak milestone after currentStreak and
// how many days remain until it. Past the last milestone it keeps
// reporting the final one.
func NextMilestone(currentStreak int) (milestone, daysUntil int) {
	for _, m := range milestones {
		if m > currentStreak {
			return m, m - currentStreak
		}
	}
	last := milestones[len(milestones)-1]
	return last, last - currentStreak
}

// StreakBonus returns the bonus multiplier and label earned at the given
// streak day. Days below the first milestone carry no bonus.
func StreakBonus(streakDay int) (multiplier float64, label string) {
	switch {
	case streakDay >= 30:
		return 1.5, "30-Day Champion"
	case streakDay >= 21:
		return 1.3, "21-Day Warrior"
	case streakDay >= 14:
		return 1.2, "14-Day Master"
	case streakDay >= 7:
		return 1.1, "7-Day Achiever"
	default:
		return 1, ""
	}
}

// TotalPoints applies the streak bonus multiplier to a base reward,
// flooring the result.
func TotalPoints(basePoints int64, streakDay int) (total, bonus int64) {
	multiplier, _ := StreakBonus(streakDay)
	total = int64(math.Floor(float64(basePoints) * multiplier))
	return total, total - basePoints
}
