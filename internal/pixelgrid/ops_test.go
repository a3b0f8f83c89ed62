package pixelgrid

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestApply(t *testing.T) {
	g := SampleGrid()
	params := Params{Threshold: 0.5, Delta: 0.25}

	tests := []struct {
		name string
		want Grid
	}{
		{OpNegative, Invert(g)},
		{OpMirror, Mirror(g)},
		{OpGrayscale, Grayscale(g)},
		{OpBinarize, Binarize(g, 0.5)},
		{OpBright, AdjustBrightness(g, 0.25)},
		{OpThreshold, ThresholdHighlight(g, 0.5)},
		{OpSepia, Sepia(g)},
		{OpFlag, FlagFilter(g)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.name, g, params)
			if err != nil {
				t.Fatalf("Apply failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApply_Unknown(t *testing.T) {
	_, err := Apply("emboss", SampleGrid(), Params{})
	if !errors.Is(err, ErrUnknownOperation) {
		t.Errorf("expected ErrUnknownOperation, got %v", err)
	}
}

func TestOperations(t *testing.T) {
	names := Operations()
	if len(names) != len(operations) {
		t.Fatalf("Operations lists %d names, registry has %d", len(names), len(operations))
	}
	for _, name := range names {
		if _, ok := operations[name]; !ok {
			t.Errorf("Operations lists %q which is not registered", name)
		}
	}
}
