package nudgenet

// A Node is a single scalar unit of the Network's computation graph. Exactly two
// implementations exist: StartNode for layer 0 and Neuron for every layer after it. Nodes never
// hold direct references to each other; a Neuron reaches the previous layer through (layer,
// index) lookups on its host Network, so the ownership graph stays acyclic even though the
// backward sweep conceptually runs edges in both directions.
type Node interface {
	// Value returns the scalar value of the node. For Neurons this is logically pure but
	// operationally memoizing: the first call recursively pulls values from every node in the
	// previous layer and caches both the pre-activation sum and the activated result.
	Value(net *Network) float64

	// Invalidate clears any cached values. Weights, biases and nudge accumulators are not
	// touched.
	Invalidate()

	// RequestNudge adds a gradient request to the node's pending nudge. StartNodes ignore it;
	// inputs receive no gradient and terminate the backward sweep.
	RequestNudge(amount float64)
}

// memo is a lazily-filled cell for a single float64. Reading a Neuron's value fills its memo
// cells as a side effect, which is the one place a conceptually read-only operation mutates
// state.
type memo struct {
	val float64
	ok  bool
}

func (m *memo) set(v float64) float64 {
	m.val, m.ok = v, true
	return v
}

func (m *memo) get() (float64, bool) {
	return m.val, m.ok
}

func (m *memo) clear() {
	*m = memo{}
}

// StartNode is the input variant of Node. It holds an externally set scalar and has no cache
// and no gradient state; the value persists across forward passes until overwritten.
type StartNode struct {
	value float64
}

// NewStartNode returns a StartNode holding the given value.
func NewStartNode(value float64) *StartNode {
	return &StartNode{value: value}
}

// Value returns the stored input value. The Network argument is unused; there is nothing to
// compute.
func (n *StartNode) Value(_ *Network) float64 {
	return n.value
}

// SetValue overwrites the stored input value. Compute caches downstream are NOT invalidated;
// that is the caller's responsibility (see *Network.Invalidate()).
func (n *StartNode) SetValue(value float64) {
	n.value = value
}

// Invalidate is a no-op: StartNodes have no cache to clear.
func (n *StartNode) Invalidate() {}

// RequestNudge is a no-op: inputs never receive gradient.
func (n *StartNode) RequestNudge(_ float64) {}

// Neuron is the compute variant of Node. It holds one weight per node in the previous layer
// plus a bias, memoizes its pre-activation sum and sigmoid result, and accumulates
// batch-scoped gradient statistics ("nudges") during the backward sweep.
type Neuron struct {
	bias    float64
	weights []float64
	layer   int

	sumCache    memo
	resultCache memo

	// batch-scoped gradient accumulators; reset together by ClearNudges
	biasNudgeSum   float64
	weightNudgeSum []float64
	pendingNudge   float64
	nudgeCount     int
}

// NewNeuron returns a Neuron for the given layer (which must be >= 1) with the provided
// starting bias and weights. The weights are copied. Their length must equal the size of the
// layer below in the Network the Neuron is installed into; *Network.SetNeuron() enforces this.
// All caches and accumulators start empty.
func NewNeuron(bias float64, weights []float64, layer int) *Neuron {
	ws := make([]float64, len(weights))
	copy(ws, weights)

	return &Neuron{
		bias:           bias,
		weights:        ws,
		layer:          layer,
		weightNudgeSum: make([]float64, len(ws)),
	}
}

// Sum returns the pre-activation value of the Neuron: the weighted sum over the previous
// layer's values, plus the bias. The result is memoized; the first call recursively evaluates
// everything the Neuron can reach by pulling backward.
func (n *Neuron) Sum(net *Network) float64 {
	if v, ok := n.sumCache.get(); ok {
		return v
	}

	prev := net.Layer(n.layer - 1)
	sum := n.bias
	for i, w := range n.weights {
		sum += w * prev[i].Value(net)
	}

	return n.sumCache.set(sum)
}

// Value returns the activated value of the Neuron, Sigmoid(*Neuron.Sum()), memoized in the
// result cache.
func (n *Neuron) Value(net *Network) float64 {
	if v, ok := n.resultCache.get(); ok {
		return v
	}

	return n.resultCache.set(Sigmoid(n.Sum(net)))
}

// Invalidate clears the sum and result caches. Parameters and nudge accumulators are
// untouched.
func (n *Neuron) Invalidate() {
	n.sumCache.clear()
	n.resultCache.clear()
}

// RequestNudge adds amount to the Neuron's pending nudge, to be consumed by the next call to
// *Neuron.CalcNudge().
func (n *Neuron) RequestNudge(amount float64) {
	n.pendingNudge += amount
}

// CalcNudge consumes the pending nudge: it folds one training example's gradient contribution
// into the Neuron's bias and weight accumulators, and propagates a nudge request to each node
// in the previous layer. This is one step of reverse-mode differentiation w.r.t. the Neuron's
// pre-activation sum.
//
// CalcNudge must only run once the pending nudge is fully accumulated from every consumer in
// later layers; *Network.TrainOnCurrentData() guarantees this by sweeping layers in reverse
// order.
func (n *Neuron) CalcNudge(net *Network) {
	base := n.pendingNudge * SigmoidDeriv(n.Sum(net)) * net.LearningRate()
	n.pendingNudge = 0

	n.biasNudgeSum += base
	prev := net.Layer(n.layer - 1)
	for i, w := range n.weights {
		n.weightNudgeSum[i] += base * prev[i].Value(net)
		prev[i].RequestNudge(base * w)
	}

	n.nudgeCount++
}

// ApplyNudges adds the mean accumulated nudge (over the examples counted by NudgeCount) to the
// bias and each weight. Applying with no accumulated examples would divide by zero, so it
// panics ErrNoNudges instead. Accumulators are not reset; see *Neuron.ClearNudges().
func (n *Neuron) ApplyNudges() {
	if n.nudgeCount == 0 {
		panic(ErrNoNudges)
	}

	k := float64(n.nudgeCount)
	n.bias += n.biasNudgeSum / k
	for i := range n.weights {
		n.weights[i] += n.weightNudgeSum[i] / k
	}
}

// ClearNudges resets the bias and weight accumulators, the pending nudge, and the nudge count.
// The value caches are not touched.
func (n *Neuron) ClearNudges() {
	n.biasNudgeSum = 0
	for i := range n.weightNudgeSum {
		n.weightNudgeSum[i] = 0
	}
	n.pendingNudge = 0
	n.nudgeCount = 0
}

// LayerIndex returns the index of the layer the Neuron computes in. It is always >= 1.
func (n *Neuron) LayerIndex() int {
	return n.layer
}

// Bias returns the Neuron's bias.
func (n *Neuron) Bias() float64 {
	return n.bias
}

// SetBias overwrites the bias. The value caches are NOT invalidated: a stale cache will
// silently diverge from the new parameters until *Neuron.Invalidate() is called.
func (n *Neuron) SetBias(bias float64) {
	n.bias = bias
}

// Weight returns the weight applied to the previous layer's node at the given index.
func (n *Neuron) Weight(i int) float64 {
	return n.weights[i]
}

// SetWeight overwrites one weight. As with *Neuron.SetBias(), the value caches are NOT
// invalidated.
func (n *Neuron) SetWeight(i int, w float64) {
	n.weights[i] = w
}

// NumWeights returns the number of weights, which equals the size of the previous layer.
func (n *Neuron) NumWeights() int {
	return len(n.weights)
}

// CachedSum returns the memoized pre-activation sum and whether it is set.
func (n *Neuron) CachedSum() (float64, bool) {
	return n.sumCache.get()
}

// CachedValue returns the memoized activated value and whether it is set.
func (n *Neuron) CachedValue() (float64, bool) {
	return n.resultCache.get()
}

// PendingNudge returns the gradient requested of this Neuron that has not been consumed by
// *Neuron.CalcNudge() yet.
func (n *Neuron) PendingNudge() float64 {
	return n.pendingNudge
}

// NudgeCount returns the number of training examples folded into the current accumulators.
func (n *Neuron) NudgeCount() int {
	return n.nudgeCount
}

// BiasNudgeSum returns the accumulated (unaveraged) bias gradient.
func (n *Neuron) BiasNudgeSum() float64 {
	return n.biasNudgeSum
}

// WeightNudgeSum returns the accumulated (unaveraged) gradient of the weight at the given
// index.
func (n *Neuron) WeightNudgeSum(i int) float64 {
	return n.weightNudgeSum[i]
}
