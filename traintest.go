package nudgenet

import (
	"github.com/pkg/errors"
)

// Result is a wrapper for sending back the progress of training or testing.
type Result struct {
	// The epoch the result is being sent after.
	Epoch int

	// Average cost per example, from the squared-error cost function.
	Cost float64

	// The fraction correct, as per IsCorrect from TrainArgs. 0 → 1
	Correct float64

	// The result is either from a test or a status update.
	IsTest bool
}

type TrainArgs struct {
	// Batches is the training data, pre-chunked into mini-batches (see Batch.Chunks). One
	// averaged nudge update is applied per batch, per epoch.
	Batches []Batch

	// TestData is the source of cross-validation data while training. This can be nil if
	// ShouldTest is also nil.
	TestData Batch

	// ShouldTest indicates whether or not testing should be done after the given epoch.
	// ShouldTest can be left nil to represent an unconditional false.
	ShouldTest func(int) bool

	// SendStatus indicates whether or not to send back general information about the training
	// since the last time 'true' was returned. SendStatus can be left nil to represent an
	// unconditional false.
	SendStatus func(int) bool

	// RunCondition will be called before each successive epoch to determine if training
	// should continue. Training will stop if 'false' is returned.
	RunCondition func(int) bool

	// IsCorrect returns whether or not the network outputs are correct, given the target
	// outputs. In order, it is given: outputs; targets.
	//
	// The length of both provided slices is guaranteed to be equal.
	IsCorrect func([]float64, []float64) bool

	// Update is how testing and status updates are returned. If both ShouldTest and
	// SendStatus are nil, then Update can also be left nil.
	Update func(Result)
}

// Train runs epochs of mini-batch gradient descent over args.Batches until args.RunCondition
// returns false. Malformed arguments and examples that do not fit the Network are reported as
// errors before any training happens; precondition violations inside the core still panic.
func (net *Network) Train(args TrainArgs) error {
	// handle error cases and set defaults
	{
		if args.Update == nil {
			args.Update = func(r Result) {}
		}

		if len(args.Batches) == 0 {
			return errors.Errorf("TrainArgs.Batches is empty")
		}

		for bi, b := range args.Batches {
			if len(b) == 0 {
				return errors.Errorf("batch %d is empty", bi)
			}

			for xi, ex := range b {
				if !ex.Fits(net) {
					return errors.Errorf("example %d of batch %d does not fit Network dimensions", xi, bi)
				}
			}
		}

		if args.TestData == nil {
			if args.ShouldTest != nil {
				return errors.Errorf("TestData is nil but ShouldTest is not")
			}
			args.ShouldTest = func(int) bool { return false }
		} else if args.ShouldTest == nil {
			args.ShouldTest = func(int) bool { return false }
		}

		if args.SendStatus == nil {
			args.SendStatus = func(int) bool { return false }
		}

		if args.RunCondition == nil {
			return errors.Errorf("RunCondition is nil")
		}

		if args.IsCorrect == nil {
			args.IsCorrect = func(a, b []float64) bool { return false }
		}
	}

	var statusCost, statusCorrect float64
	var statusSize int

	for epoch := 0; args.RunCondition(epoch); epoch++ {
		for _, b := range args.Batches {
			for _, ex := range b {
				net.TrainOnData(ex)

				// the backward sweep left this example's forward caches intact, so reading
				// the cost and outputs here is free
				statusCost += net.CurrentCost(ex.Expected)
				if args.IsCorrect(net.Outputs(), ex.Expected) {
					statusCorrect++
				}
				statusSize++
			}

			net.ApplyNudges()
		}

		if args.SendStatus(epoch) {
			args.Update(Result{
				Epoch:   epoch,
				Cost:    statusCost / float64(statusSize),
				Correct: statusCorrect / float64(statusSize),
				IsTest:  false,
			})

			statusCost, statusCorrect = 0, 0
			statusSize = 0
		}

		if args.ShouldTest(epoch) {
			cost, correct, err := net.Test(args.TestData, args.IsCorrect)
			if err != nil {
				return errors.Wrapf(err, "testing after epoch %d failed", epoch)
			}

			args.Update(Result{
				Epoch:   epoch,
				Cost:    cost,
				Correct: correct,
				IsTest:  true,
			})
		}
	}

	return nil
}

// Test measures the average cost per example over the given data, and the fraction of examples
// isCorrect accepts. Testing is forward-only: gradient accumulators are untouched. isCorrect
// may be nil for an unconditional false.
func (net *Network) Test(data Batch, isCorrect func([]float64, []float64) bool) (float64, float64, error) {
	if len(data) == 0 {
		return 0, 0, errors.Errorf("test data is empty")
	}

	if isCorrect == nil {
		isCorrect = func(a, b []float64) bool { return false }
	}

	var avgCost, avgCorrect float64
	for i, ex := range data {
		if !ex.Fits(net) {
			return 0, 0, errors.Errorf("test example %d does not fit Network dimensions", i)
		}

		net.SetInputs(ex.Inputs)
		net.Invalidate()

		avgCost += net.CurrentCost(ex.Expected)
		if isCorrect(net.Outputs(), ex.Expected) {
			avgCorrect++
		}
	}

	avgCost /= float64(len(data))
	avgCorrect /= float64(len(data))

	return avgCost, avgCorrect, nil
}
