package nudgenet

// Config collects the construction parameters of a Network.
type Config struct {
	// LearningRate multiplies every applied gradient step. It must be > 0.
	LearningRate float64

	// Shape is the node count per layer, input layer first. It must have at least two entries,
	// all >= 1.
	Shape []int
}

// Network is the main structure used to learn to map input to output functions. It exclusively
// owns all of its nodes, organized into ordered layers: layer 0 holds StartNodes, every later
// layer holds Neurons with one weight per node in the layer below.
type Network struct {
	config Config
	layers [][]Node
}

// New constructs a Network with the given shape and a learning rate of 1.0. All StartNode
// values, Neuron weights and biases start at zero. New panics ErrTooFewLayers if fewer than two
// layers are given, and ErrBadLayerSize if any layer is empty.
func New(shape ...int) *Network {
	return WithConfig(Config{LearningRate: 1.0, Shape: shape})
}

// WithConfig constructs a Network from a full Config. The shape is copied. WithConfig panics
// ErrTooFewLayers, ErrBadLayerSize or ErrBadLearningRate if the Config is invalid.
func WithConfig(config Config) *Network {
	if len(config.Shape) < 2 {
		panic(ErrTooFewLayers)
	}
	if !(config.LearningRate > 0) {
		panic(ErrBadLearningRate)
	}

	shape := make([]int, len(config.Shape))
	copy(shape, config.Shape)
	config.Shape = shape

	layers := make([][]Node, len(shape))
	for li, size := range shape {
		if size < 1 {
			panic(ErrBadLayerSize)
		}

		layers[li] = make([]Node, size)
		for ni := range layers[li] {
			if li == 0 {
				layers[li][ni] = NewStartNode(0)
			} else {
				layers[li][ni] = NewNeuron(0, make([]float64, shape[li-1]), li)
			}
		}
	}

	return &Network{config: config, layers: layers}
}

// Config returns a copy of the Network's configuration.
func (net *Network) Config() Config {
	cfg := net.config
	cfg.Shape = net.Shape()
	return cfg
}

// LearningRate returns the scalar multiplying every applied gradient step.
func (net *Network) LearningRate() float64 {
	return net.config.LearningRate
}

// Shape returns a copy of the node count per layer.
func (net *Network) Shape() []int {
	shape := make([]int, len(net.config.Shape))
	copy(shape, net.config.Shape)
	return shape
}

// NumLayers returns the number of layers, including the input layer.
func (net *Network) NumLayers() int {
	return len(net.layers)
}

// InputSize returns the number of nodes in the input layer.
func (net *Network) InputSize() int {
	return len(net.layers[0])
}

// OutputSize returns the number of nodes in the last layer.
func (net *Network) OutputSize() int {
	return len(net.LastLayer())
}

// Layer returns the nodes of the given layer. The returned slice is the Network's own storage,
// not a copy; callers must not grow or reorder it.
func (net *Network) Layer(li int) []Node {
	return net.layers[li]
}

// LastLayer returns the output layer, equivalent to Layer(NumLayers()-1).
func (net *Network) LastLayer() []Node {
	return net.layers[len(net.layers)-1]
}

// Node returns the node at the given layer and index. Out-of-range indexes panic.
func (net *Network) Node(li, ni int) Node {
	return net.layers[li][ni]
}

// StartNode returns the input node at the given index of layer 0, panicking with type
// VariantError if the node there is not a StartNode.
func (net *Network) StartNode(ni int) *StartNode {
	n, ok := net.Node(0, ni).(*StartNode)
	if !ok {
		panic(VariantError{0, ni, "StartNode"})
	}

	return n
}

// Neuron returns the compute node at the given layer and index, panicking with type
// VariantError if (li, ni) does not hold a Neuron. Layer 0 never does.
func (net *Network) Neuron(li, ni int) *Neuron {
	n, ok := net.Node(li, ni).(*Neuron)
	if !ok {
		panic(VariantError{li, ni, "Neuron"})
	}

	return n
}

// SetNeuron installs a caller-constructed Neuron at (li, ni), typically to seed a network with
// preset parameters. It panics with type VariantError if li is 0, type SizeMismatchError if
// the Neuron's weight vector does not match the size of the previous layer, and ErrWrongLayer
// if the Neuron was built for a different layer index.
func (net *Network) SetNeuron(li, ni int, n *Neuron) {
	if li == 0 {
		panic(VariantError{li, ni, "Neuron"})
	}
	if len(n.weights) != net.config.Shape[li-1] {
		panic(SizeMismatchError{net.config.Shape[li-1], len(n.weights), "weights"})
	}
	if n.layer != li {
		panic(ErrWrongLayer)
	}

	net.layers[li][ni] = n
}

// Output returns the value of the last layer's node at the given index, triggering memoized
// evaluation of everything it depends on.
func (net *Network) Output(i int) float64 {
	return net.LastLayer()[i].Value(net)
}

// Outputs returns the values of the whole last layer.
func (net *Network) Outputs() []float64 {
	last := net.LastLayer()
	outs := make([]float64, len(last))
	for i, n := range last {
		outs[i] = n.Value(net)
	}

	return outs
}

// SetInput overwrites the value of the input node at the given index. Compute caches are NOT
// invalidated; callers must invalidate before re-evaluating (see *Network.Invalidate()).
func (net *Network) SetInput(i int, value float64) {
	net.StartNode(i).SetValue(value)
}

// SetInputs overwrites every input node's value, panicking with type SizeMismatchError if the
// number of values does not match the input layer. As with *Network.SetInput(), compute caches
// are not invalidated.
func (net *Network) SetInputs(values []float64) {
	if len(values) != net.InputSize() {
		panic(SizeMismatchError{net.InputSize(), len(values), "inputs"})
	}

	for i, v := range values {
		net.StartNode(i).SetValue(v)
	}
}

// CurrentCost returns the sum over the last layer of the squared error against the expected
// values, for the current inputs. It panics with type SizeMismatchError if expected does not
// match the last layer's size.
func (net *Network) CurrentCost(expected []float64) float64 {
	last := net.LastLayer()
	if len(expected) != len(last) {
		panic(SizeMismatchError{len(last), len(expected), "expected outputs"})
	}

	var cost float64
	for i, n := range last {
		d := n.Value(net) - expected[i]
		cost += d * d
	}

	return cost
}

// Invalidate clears the value caches of every Neuron in the Network. Evaluation is not
// input-change-aware, so this must be called after changing inputs (or parameters) and before
// recomputing outputs, cost or gradients.
func (net *Network) Invalidate() {
	for _, l := range net.layers[1:] {
		for _, n := range l {
			n.Invalidate()
		}
	}
}
