package nudgenet

// requestEndNudges seeds the backward sweep: the derivative of the squared-error cost w.r.t.
// each output is 2*(out - expected), negated because descent moves against the direction of
// increasing cost. Reading the output values here implicitly runs (memoized) forward
// evaluation.
func (net *Network) requestEndNudges(expected []float64) {
	last := net.LastLayer()
	if len(expected) != len(last) {
		panic(SizeMismatchError{len(last), len(expected), "expected outputs"})
	}

	for i, n := range last {
		n.RequestNudge(-2 * (n.Value(net) - expected[i]))
	}
}

// TrainOnCurrentData accumulates the gradient of the current inputs against the expected
// outputs: it seeds nudge requests into the last layer, then calls CalcNudge on every Neuron,
// sweeping layers in reverse order. Last layer first is required: a Neuron's pending nudge
// must be fully accumulated from every consumer in later layers before CalcNudge consumes it.
func (net *Network) TrainOnCurrentData(expected []float64) {
	net.requestEndNudges(expected)

	for li := net.NumLayers() - 1; li >= 1; li-- {
		for ni := range net.layers[li] {
			net.Neuron(li, ni).CalcNudge(net)
		}
	}
}

// TrainOnData accumulates the gradient for a single training example: it sets the inputs,
// invalidates the stale caches, and runs the backward sweep. Accumulators are not cleared, so
// successive calls build up a batch.
func (net *Network) TrainOnData(example TrainingExample) {
	net.SetInputs(example.Inputs)
	net.Invalidate()
	net.TrainOnCurrentData(example.Expected)
}

// ApplyNudges applies the batch-averaged accumulated nudges to every Neuron and resets all
// accumulators. All accumulation completes strictly before any parameter moves. Panics
// ErrNoNudges if no examples have been accumulated.
func (net *Network) ApplyNudges() {
	for li := 1; li < net.NumLayers(); li++ {
		for ni := range net.layers[li] {
			n := net.Neuron(li, ni)
			n.ApplyNudges()
			n.ClearNudges()
		}
	}
}

// ClearNudges discards all accumulated gradient state without applying it.
func (net *Network) ClearNudges() {
	for li := 1; li < net.NumLayers(); li++ {
		for ni := range net.layers[li] {
			net.Neuron(li, ni).ClearNudges()
		}
	}
}

// TrainOnBatch accumulates gradients over every example in the batch and then applies a single
// averaged update: mini-batch gradient descent with arithmetic-mean averaging.
func (net *Network) TrainOnBatch(batch Batch) {
	for _, example := range batch {
		net.TrainOnData(example)
	}

	net.ApplyNudges()
}

// TrainOnBatches trains on each pre-chunked batch in order, applying one update per batch.
func (net *Network) TrainOnBatches(batches []Batch) {
	for _, batch := range batches {
		net.TrainOnBatch(batch)
	}
}
