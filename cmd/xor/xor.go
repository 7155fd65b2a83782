package main

import (
	"fmt"
	"math/rand"

	nn "github.com/MarcellPerger1/nudgenet"
)

const (
	statusFrequency int = 500

	// main hyperparameters
	learningRate float64 = 2.5
	batchSize    int     = 4
	maxEpochs    int     = 5000

	seed int64 = 42
)

func dataset() nn.Batch {
	return nn.Batch{
		nn.NewExample([]float64{0, 0}, []float64{0}),
		nn.NewExample([]float64{0, 1}, []float64{1}),
		nn.NewExample([]float64{1, 0}, []float64{1}),
		nn.NewExample([]float64{1, 1}, []float64{0}),
	}
}

// seedWeights breaks the symmetry of the zero-initialized hidden layer; with every weight
// equal, all hidden neurons would receive identical nudges forever and XOR could never be
// learned.
func seedWeights(net *nn.Network, rng *rand.Rand) {
	for li := 1; li < net.NumLayers(); li++ {
		for ni := range net.Layer(li) {
			n := net.Neuron(li, ni)
			for wi := 0; wi < n.NumWeights(); wi++ {
				n.SetWeight(wi, rng.Float64()*2-1)
			}
			n.SetBias(rng.Float64()*2 - 1)
		}
	}

	net.Invalidate()
}

func main() {
	net := nn.WithConfig(nn.Config{LearningRate: learningRate, Shape: []int{2, 3, 1}})
	seedWeights(net, rand.New(rand.NewSource(seed)))

	data := dataset()

	fmt.Println("Starting training...")
	fmt.Println("Epoch, Cost, Percent Correct")

	args := nn.TrainArgs{
		Batches:      data.Chunks(batchSize),
		RunCondition: nn.TrainUntil(maxEpochs),
		SendStatus:   nn.Every(statusFrequency),
		IsCorrect:    nn.CorrectRound,
		Update: func(r nn.Result) {
			fmt.Printf("%d, %v, %v\n", r.Epoch, r.Cost, r.Correct)
		},
	}

	if err := net.Train(args); err != nil {
		panic(err.Error())
	}
	fmt.Println("Done training!")

	for _, ex := range data {
		net.SetInputs(ex.Inputs)
		net.Invalidate()
		fmt.Printf("%v -> %.4f (want %v)\n", ex.Inputs, net.Output(0), ex.Expected[0])
	}
}
