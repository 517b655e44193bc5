package game

// ScoreAccumulator counts score ticks and derives the displayed score
type ScoreAccumulator struct {
	counter int
	divisor int
}

func NewScoreAccumulator(divisor int) *ScoreAccumulator {
	if divisor < 1 {
		divisor = 1
	}
	return &ScoreAccumulator{divisor: divisor}
}

// Tick increments the counter and returns the displayed score
func (sa *ScoreAccumulator) Tick() int {
	sa.counter++
	return sa.Display()
}

func (sa *ScoreAccumulator) Reset() {
	sa.counter = 0
}

func (sa *ScoreAccumulator) Counter() int {
	return sa.counter
}

// Display returns floor(counter / divisor)
func (sa *ScoreAccumulator) Display() int {
	return DisplayScore(sa.counter, sa.divisor)
}

// DisplayScore converts a non-negative tick count to displayed points
func DisplayScore(counter, divisor int) int {
	return counter / divisor
}
