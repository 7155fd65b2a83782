package nudgenet

// TrainingExample pairs one input vector with the output vector the network should learn to
// produce for it. Examples are immutable once constructed.
type TrainingExample struct {
	// Inputs must have the same size as the network's input layer.
	Inputs []float64

	// Expected must have the same size as the network's last layer.
	Expected []float64
}

// NewExample returns a TrainingExample holding copies of both slices.
func NewExample(inputs, expected []float64) TrainingExample {
	in := make([]float64, len(inputs))
	copy(in, inputs)
	out := make([]float64, len(expected))
	copy(out, expected)

	return TrainingExample{Inputs: in, Expected: out}
}

// Fits indicates whether the example's dimensions match those of the Network, allowing it to
// be used for training or testing.
func (ex TrainingExample) Fits(net *Network) bool {
	return len(ex.Inputs) == net.InputSize() && len(ex.Expected) == net.OutputSize()
}

// Batch is an ordered, finite group of training examples whose gradients are accumulated
// together and applied as one averaged update.
type Batch []TrainingExample

// Chunks splits the batch into sub-batches of at most maxSize examples each, preserving
// order; the last chunk may be smaller. The source batch is never mutated, and the returned
// chunks are capacity-capped subslices of it. Chunks panics ErrZeroChunkSize if maxSize < 1.
func (b Batch) Chunks(maxSize int) []Batch {
	if maxSize < 1 {
		panic(ErrZeroChunkSize)
	}

	chunks := make([]Batch, 0, (len(b)+maxSize-1)/maxSize)
	for start := 0; start < len(b); start += maxSize {
		end := start + maxSize
		if end > len(b) {
			end = len(b)
		}

		chunks = append(chunks, b[start:end:end])
	}

	return chunks
}
