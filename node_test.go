package nudgenet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarcellPerger1/nudgenet/testutil"
)

func TestStartNode(t *testing.T) {
	n := NewStartNode(0.3)
	assert.Equal(t, 0.3, n.Value(nil))

	n.SetValue(-1.5)
	assert.Equal(t, -1.5, n.Value(nil))

	// both are no-ops on inputs
	n.Invalidate()
	n.RequestNudge(0.9)
	assert.Equal(t, -1.5, n.Value(nil))
}

func TestNewNeuronCopiesWeights(t *testing.T) {
	ws := []float64{0.1, 0.2}
	n := NewNeuron(0.5, ws, 1)

	ws[0] = 99
	assert.Equal(t, 0.1, n.Weight(0))
	assert.Equal(t, 0.5, n.Bias())
	assert.Equal(t, 2, n.NumWeights())
	assert.Equal(t, 1, n.LayerIndex())
}

func TestNeuronStartsClean(t *testing.T) {
	n := NewNeuron(0, []float64{0, 0, 0}, 2)

	assert.Equal(t, 0, n.NudgeCount())
	assert.Equal(t, 0.0, n.BiasNudgeSum())
	assert.Equal(t, 0.0, n.PendingNudge())
	for i := 0; i < n.NumWeights(); i++ {
		assert.Equal(t, 0.0, n.WeightNudgeSum(i))
	}

	_, ok := n.CachedSum()
	assert.False(t, ok)
	_, ok = n.CachedValue()
	assert.False(t, ok)
}

func TestNeuronRequestNudgeAccumulates(t *testing.T) {
	n := NewNeuron(0, []float64{0}, 1)
	n.RequestNudge(0.5)
	n.RequestNudge(0.25)
	testutil.AssertFloatEq(t, n.PendingNudge(), 0.75, "pending nudge")
}

func TestNeuronCacheStateMachine(t *testing.T) {
	net := New(2, 1)
	net.SetInputs([]float64{0.5, -0.5})
	n := net.Neuron(1, 0)
	n.SetWeight(0, 1)
	n.SetWeight(1, 2)
	n.SetBias(0.25)

	// Empty
	_, ok := n.CachedSum()
	require.False(t, ok)
	_, ok = n.CachedValue()
	require.False(t, ok)

	// forcing only the sum is legal but unusual
	sum := n.Sum(net)
	testutil.AssertFloatEq(t, sum, 0.5-1+0.25, "Sum")
	cached, ok := n.CachedSum()
	require.True(t, ok)
	assert.Equal(t, sum, cached)
	_, ok = n.CachedValue()
	assert.False(t, ok)

	// Full
	v := n.Value(net)
	testutil.AssertFloatEq(t, v, Sigmoid(sum), "Value")
	cached, ok = n.CachedValue()
	require.True(t, ok)
	assert.Equal(t, v, cached)

	// back to Empty
	n.Invalidate()
	_, ok = n.CachedSum()
	assert.False(t, ok)
	_, ok = n.CachedValue()
	assert.False(t, ok)
}

func TestNeuronApplyWithoutNudgesPanics(t *testing.T) {
	n := NewNeuron(0, []float64{0}, 1)
	assert.PanicsWithValue(t, ErrNoNudges, func() { n.ApplyNudges() })
}

func TestNeuronClearNudgesLeavesCaches(t *testing.T) {
	net := New(1, 1)
	net.SetInput(0, 0.4)
	net.TrainOnCurrentData([]float64{1})

	n := net.Neuron(1, 0)
	require.NotZero(t, n.NudgeCount())

	n.ClearNudges()
	assert.Equal(t, 0, n.NudgeCount())
	assert.Equal(t, 0.0, n.BiasNudgeSum())
	assert.Equal(t, 0.0, n.WeightNudgeSum(0))
	assert.Equal(t, 0.0, n.PendingNudge())

	// caches survive a clear
	_, ok := n.CachedValue()
	assert.True(t, ok)
}
