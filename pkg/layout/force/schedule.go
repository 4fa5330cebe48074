package force

// Schedule returns the maximum step for a round, given the round number
// (from 0), the total number of rounds and the configured maximum step.
type Schedule func(round, rounds int, maxStep float64) float64

// Constant applies the configured maximum step in every round.
func Constant(_, _ int, maxStep float64) float64 { return maxStep }

// Linear cools the maximum step linearly from maxStep in the first round
// down to floor*maxStep in the last. floor is clamped to [0, 1].
func Linear(floor float64) Schedule {
	floor = max(0, min(floor, 1))
	return func(round, rounds int, maxStep float64) float64 {
		if rounds <= 1 {
			return maxStep
		}
		t := float64(round) / float64(rounds-1)
		return maxStep * (1 - t*(1-floor))
	}
}

// ScheduleByName returns the schedule registered under name: "constant"
// (or empty) and "linear" (cooling to 10% of the maximum step).
func ScheduleByName(name string) (Schedule, bool) {
	switch name {
	case "", "constant":
		return Constant, true
	case "linear":
		return Linear(0.1), true
	}
	return nil, false
}
