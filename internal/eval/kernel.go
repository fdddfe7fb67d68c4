package eval

import (
	"fmt"
	"github.com/chewxy/math32"
	. "github.com/janpfeifer/hexGo/internal/state"
	"sync"
)

// Kernel evaluates a board with a fixed symmetric 2D gaussian surface, centered on the board
// and normalized to sum 1: central cells weigh more than those at the edges.
//
// Each cell owned by the player contributes negatively with its weight, so the result is
// in [-1, 0], and an empty board evaluates to 0.
type Kernel struct {
	sigma float32

	mu      sync.Mutex
	weights map[int][]float32 // Per board size.
}

var _ Evaluator = (*Kernel)(nil)

// NewKernel returns a Kernel evaluator with the given spread (standard deviation) in cells.
// If sigma is 0, a quarter of the board size (at least 0.5) is used.
func NewKernel(sigma float32) *Kernel {
	return &Kernel{sigma: sigma, weights: make(map[int][]float32)}
}

// String implements Evaluator.
func (k *Kernel) String() string {
	if k.sigma == 0 {
		return "kernel"
	}
	return fmt.Sprintf("kernel(sigma=%g)", k.sigma)
}

// Weights returns the kernel for the given board size, in row-major order. It must not be modified.
func (k *Kernel) Weights(size int) []float32 {
	k.mu.Lock()
	defer k.mu.Unlock()
	if w, found := k.weights[size]; found {
		return w
	}
	w := gaussianKernel(size, k.sigma)
	k.weights[size] = w
	return w
}

// gaussianKernel builds a discretized gaussian surface over size×size cells, normalized to sum 1.
func gaussianKernel(size int, sigma float32) []float32 {
	if sigma <= 0 {
		sigma = math32.Max(float32(size)/4, 0.5)
	}
	center := float32(size-1) / 2
	w := make([]float32, size*size)
	var total float32
	for row := range size {
		dRow := float32(row) - center
		for col := range size {
			dCol := float32(col) - center
			v := math32.Exp(-(dRow*dRow + dCol*dCol) / (2 * sigma * sigma))
			w[row*size+col] = v
			total += v
		}
	}
	for ii := range w {
		w[ii] /= total
	}
	return w
}

// Evaluate implements Evaluator.
func (k *Kernel) Evaluate(b *Board, player PlayerNum) float32 {
	w := k.Weights(b.Size)
	var score float32
	for row := range int8(b.Size) {
		for col := range int8(b.Size) {
			if b.At(Pos{Row: row, Col: col}) == player {
				score -= w[int(row)*b.Size+int(col)]
			}
		}
	}
	return score
}
