package pixelgrid

import (
	"errors"
	"fmt"
)

// ErrUnknownOperation is returned by Apply for names not listed by Operations.
var ErrUnknownOperation = errors.New("unknown operation")

// Operation names accepted by Apply.
const (
	OpNegative  = "negative"
	OpMirror    = "mirror"
	OpGrayscale = "grayscale"
	OpBinarize  = "binarize"
	OpBright    = "brightness"
	OpThreshold = "threshold"
	OpSepia     = "sepia"
	OpFlag      = "flag"
)

// Params holds the scalar arguments used by parameterized operations.
// Operations ignore the fields they do not use.
type Params struct {
	// Threshold is used by binarize and threshold.
	Threshold float64

	// Delta is used by brightness.
	Delta float64
}

type operation func(g Grid, p Params) Grid

var operations = map[string]operation{
	OpNegative:  func(g Grid, _ Params) Grid { return Invert(g) },
	OpMirror:    func(g Grid, _ Params) Grid { return Mirror(g) },
	OpGrayscale: func(g Grid, _ Params) Grid { return Grayscale(g) },
	OpBinarize:  func(g Grid, p Params) Grid { return Binarize(g, p.Threshold) },
	OpBright:    func(g Grid, p Params) Grid { return AdjustBrightness(g, p.Delta) },
	OpThreshold: func(g Grid, p Params) Grid { return ThresholdHighlight(g, p.Threshold) },
	OpSepia:     func(g Grid, _ Params) Grid { return Sepia(g) },
	OpFlag:      func(g Grid, _ Params) Grid { return FlagFilter(g) },
}

// Operations returns the names accepted by Apply in a stable order.
func Operations() []string {
	return []string{OpNegative, OpMirror, OpGrayscale, OpBinarize, OpBright, OpThreshold, OpSepia, OpFlag}
}

// Apply runs the named transform on g.
func Apply(name string, g Grid, p Params) (Grid, error) {
	op, ok := operations[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, name)
	}
	return op(g, p), nil
}
