package strategy

import (
	"fmt"
	"io"
	mathrand "math/rand"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/yaricom/goNEAT/v2/neat"
	"github.com/yaricom/goNEAT/v2/neat/genetics"
	"github.com/yaricom/goNEAT/v2/neat/network"

	"github.com/boyter/dilemma/game"
)

// Shape of the networks Neural drives: two sensors (own and opponent's
// previous move), a bias input and a single output. goNEAT counts the bias
// as the last input.
const (
	neuralSensors   = 2
	neuralInputs    = neuralSensors + 1
	neuralOutputs   = 1
	neuralMaxHidden = 10
	neuralLinkProb  = 0.7
	defectThreshold = 0.5
	compatThreshold = 0.5
)

// Neural asks a NEAT network what to play. An output above 0.5 means defect.
type Neural struct {
	genome *genetics.Genome
	net    *network.Network
}

// NewNeural builds the network described by a goNEAT plain text genome.
func NewNeural(r io.Reader) (*Neural, error) {
	genome, err := genetics.ReadGenome(r, 1)
	if err != nil {
		return nil, fmt.Errorf("reading genome: %w", err)
	}
	return newNeuralFromGenome(genome)
}

// NewNeuralFromFile reads a genome file, see NewNeural.
func NewNeuralFromFile(path string) (*Neural, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening genome: %w", err)
	}
	defer f.Close()
	return NewNeural(f)
}

// NewRandomNeural wires up an untrained network with random connectivity.
// goNEAT draws from the math/rand global source, so seed reseeds it and the
// same seed always yields the same network.
func NewRandomNeural(seed uint64) (*Neural, error) {
	mathrand.Seed(int64(seed))

	opts := &neat.Options{PopSize: 1, CompatThreshold: compatThreshold}
	pop, err := genetics.NewPopulationRandom(neuralInputs, neuralOutputs, neuralMaxHidden, false, neuralLinkProb, opts)
	if err != nil {
		return nil, fmt.Errorf("creating random genome: %w", err)
	}
	return newNeuralFromGenome(pop.Organisms[0].Genotype)
}

func newNeuralFromGenome(genome *genetics.Genome) (*Neural, error) {
	net, err := genome.Genesis(1)
	if err != nil {
		return nil, fmt.Errorf("building network: %w", err)
	}
	return &Neural{genome: genome, net: net}, nil
}

func (n *Neural) Name() string { return "Neural Network" }

// InputCount returns how many sensor and bias nodes the genome declares.
func (n *Neural) InputCount() (sensors, biases int) {
	for _, node := range n.genome.Nodes {
		switch node.NeuronType {
		case network.InputNeuron:
			sensors++
		case network.BiasNeuron:
			biases++
		}
	}
	return sensors, biases
}

func (n *Neural) NextMove(mine, theirs game.MoveHistory) game.Move {
	game.RequireEqualLength(mine, theirs)

	// nothing played yet reads as both cooperating
	myLast, _ := mine.Last()
	theirLast, _ := theirs.Last()

	if err := n.net.LoadSensors([]float64{float64(myLast), float64(theirLast)}); err != nil {
		logrus.WithError(err).Warn("neural strategy failed to load sensors, cooperating")
		return game.Cooperate
	}
	if _, err := n.net.Activate(); err != nil {
		logrus.WithError(err).Warn("neural strategy failed to activate, cooperating")
		return game.Cooperate
	}
	outputs := n.net.ReadOutputs()
	if len(outputs) == 0 {
		return game.Cooperate
	}

	// based on what the network says play!
	if outputs[0] > defectThreshold {
		return game.Defect
	}
	return game.Cooperate
}
