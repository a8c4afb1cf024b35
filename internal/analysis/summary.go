// Package analysis summarizes batches of generated distributions, one
// attribute at a time.
package analysis

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"
)

// ErrNoSamples indicates an empty batch.
var ErrNoSamples = errors.New("at least one sample is required")

// ErrShapeMismatch indicates a sample whose length differs from the key set.
var ErrShapeMismatch = errors.New("sample length does not match attributes")

// AttributeSummary holds the marginal statistics of one attribute, in units.
type AttributeSummary struct {
	Key    string
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Median float64
	Q25    float64
	Q75    float64
}

// Summary aggregates a batch of samples.
type Summary struct {
	Samples    int
	Attributes []AttributeSummary
	// OffTotal counts samples whose entries did not add up to the expected total.
	OffTotal int
}

// Summarize computes per-attribute statistics over samples. Each sample must
// have one entry per key; total is the sum every sample is expected to reach.
func Summarize(keys []string, total int, samples [][]int) (Summary, error) {
	if len(samples) == 0 {
		return Summary{}, ErrNoSamples
	}

	columns := make([][]float64, len(keys))
	for i := range columns {
		columns[i] = make([]float64, 0, len(samples))
	}

	summary := Summary{Samples: len(samples)}
	for n, sample := range samples {
		if len(sample) != len(keys) {
			return Summary{}, fmt.Errorf("%w: sample %d has %d entries, want %d", ErrShapeMismatch, n, len(sample), len(keys))
		}
		sum := 0
		for i, v := range sample {
			columns[i] = append(columns[i], float64(v))
			sum += v
		}
		if sum != total {
			summary.OffTotal++
		}
	}

	summary.Attributes = make([]AttributeSummary, 0, len(keys))
	for i, key := range keys {
		attr, err := summarizeColumn(key, columns[i])
		if err != nil {
			return Summary{}, err
		}
		summary.Attributes = append(summary.Attributes, attr)
	}
	return summary, nil
}

func summarizeColumn(key string, data []float64) (AttributeSummary, error) {
	attr := AttributeSummary{Key: key}
	var err error

	if attr.Mean, err = stats.Mean(data); err != nil {
		return attr, fmt.Errorf("mean of %s: %w", key, err)
	}
	// Population deviation; a single sample has zero spread.
	if attr.StdDev, err = stats.StandardDeviation(data); err != nil {
		return attr, fmt.Errorf("standard deviation of %s: %w", key, err)
	}
	if attr.Min, err = stats.Min(data); err != nil {
		return attr, fmt.Errorf("min of %s: %w", key, err)
	}
	if attr.Max, err = stats.Max(data); err != nil {
		return attr, fmt.Errorf("max of %s: %w", key, err)
	}
	if attr.Median, err = stats.Median(data); err != nil {
		return attr, fmt.Errorf("median of %s: %w", key, err)
	}
	if attr.Q25, err = stats.PercentileNearestRank(data, 25); err != nil {
		return attr, fmt.Errorf("q25 of %s: %w", key, err)
	}
	if attr.Q75, err = stats.PercentileNearestRank(data, 75); err != nil {
		return attr, fmt.Errorf("q75 of %s: %w", key, err)
	}
	return attr, nil
}
