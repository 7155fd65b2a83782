// Package nudgenet implements a small feedforward neural network engine: a layered graph of
// scalar nodes with sigmoid activation, lazily memoized forward evaluation, and pull-based
// ("nudge") backpropagation with batch-averaged gradient descent.
//
// Creating Networks
//
// The center of everything is the Network, constructed from a shape (node count per layer,
// input layer first):
//
//		net := nudgenet.New(2, 3, 1)
//
// or from a full Config when the learning rate matters:
//
//		net := nudgenet.WithConfig(nudgenet.Config{LearningRate: 2.5, Shape: []int{2, 3, 1}})
//
// Layer 0 holds StartNodes, which simply store externally set input values. Every later layer
// holds Neurons, each with one weight per node in the layer below plus a bias, all starting at
// zero. Nodes are addressed by (layer, index) through the Network; they are never shared or
// referenced from outside it.
//
// Evaluation
//
// Evaluation is demand-driven: reading an output recursively pulls values from the previous
// layer, and each Neuron memoizes its pre-activation sum and sigmoid result. Reading a value
// is logically pure but operationally memoizing. The caches are NOT invalidated automatically;
// after changing inputs (or setting weights directly), call *Network.Invalidate() before
// reading again:
//
//		net.SetInputs([]float64{1, 0})
//		net.Invalidate()
//		outs := net.Outputs()
//
// Training
//
// Training accumulates gradient "nudges" in two strictly separated phases. Each example's
// backward sweep adds to per-Neuron accumulators, and one call to *Network.ApplyNudges() at
// the end of a batch applies the averaged update and resets the accumulators:
//
//		batch := nudgenet.Batch{
//			nudgenet.NewExample([]float64{0, 1}, []float64{1}),
//			// ...
//		}
//		net.TrainOnBatch(batch)
//
// For longer runs, *Network.Train() drives epochs of mini-batch descent with status and
// cross-validation callbacks (see TrainArgs), and Batch.Chunks splits a dataset into
// mini-batches.
//
// Errors
//
// The core is a fail-fast computational kernel: dimension mismatches, bad shapes, variant
// mismatches and applying an empty accumulator all panic with the error values defined in
// errors.go. Only the outer *Network.Train()/*Network.Test() loop returns errors.
package nudgenet
