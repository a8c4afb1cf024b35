package analysis

import (
	"errors"
	"math"
	"testing"
)

func TestSummarizeErrors(t *testing.T) {
	keys := []string{"a", "b"}

	if _, err := Summarize(keys, 10, nil); !errors.Is(err, ErrNoSamples) {
		t.Fatalf("Summarize() error = %v, want %v", err, ErrNoSamples)
	}
	if _, err := Summarize(keys, 10, [][]int{{5, 5}, {10}}); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("Summarize() error = %v, want %v", err, ErrShapeMismatch)
	}
}

func TestSummarizeColumns(t *testing.T) {
	samples := [][]int{
		{100, 900},
		{200, 800},
		{300, 700},
		{400, 600},
	}

	summary, err := Summarize([]string{"hit", "energy"}, 1000, samples)
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if summary.Samples != 4 {
		t.Fatalf("Samples = %d, want 4", summary.Samples)
	}
	if summary.OffTotal != 0 {
		t.Fatalf("OffTotal = %d, want 0", summary.OffTotal)
	}
	if len(summary.Attributes) != 2 {
		t.Fatalf("got %d attributes, want 2", len(summary.Attributes))
	}

	hit := summary.Attributes[0]
	if hit.Key != "hit" {
		t.Fatalf("Key = %q, want hit", hit.Key)
	}
	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"mean", hit.Mean, 250},
		{"stddev", hit.StdDev, math.Sqrt(12500)},
		{"min", hit.Min, 100},
		{"max", hit.Max, 400},
		{"median", hit.Median, 250},
		{"q25", hit.Q25, 100},
		{"q75", hit.Q75, 300},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-9 {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	if got := summary.Attributes[1].Mean; got != 750 {
		t.Errorf("energy mean = %v, want 750", got)
	}
}

func TestSummarizeCountsOffTotal(t *testing.T) {
	summary, err := Summarize([]string{"a", "b"}, 10, [][]int{{5, 5}, {5, 4}, {9, 2}})
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if summary.OffTotal != 2 {
		t.Fatalf("OffTotal = %d, want 2", summary.OffTotal)
	}
}

func TestSummarizeSingleSample(t *testing.T) {
	summary, err := Summarize([]string{"a"}, 7, [][]int{{7}})
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	got := summary.Attributes[0]
	if got.Mean != 7 || got.StdDev != 0 || got.Q25 != 7 || got.Q75 != 7 {
		t.Fatalf("unexpected summary: %+v", got)
	}
}
