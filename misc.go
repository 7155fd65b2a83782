package nudgenet

import "math"

// CorrectRound reports whether every output rounds to its target. Suitable for 0/1 targets
// with sigmoid outputs; assumes len(outs) == len(targets).
func CorrectRound(outs, targets []float64) bool {
	for i := range outs {
		if math.Round(outs[i]) != targets[i] {
			return false
		}
	}

	return true
}

// TrainUntil returns a function that satisfies TrainArgs.RunCondition, stopping after
// maxEpochs epochs.
func TrainUntil(maxEpochs int) func(int) bool {
	return func(epoch int) bool {
		return epoch < maxEpochs
	}
}

// Every returns a function that satisfies TrainArgs.SendStatus or TrainArgs.ShouldTest.
// 'frequency' is in units of epochs.
func Every(frequency int) func(int) bool {
	return func(epoch int) bool {
		return epoch%frequency == 0
	}
}
