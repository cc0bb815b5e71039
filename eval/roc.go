package eval

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

// ROCAUC computes the micro-averaged area under the ROC curve for pooled
// boolean true-classes and float scores.
//
// Description:
//
//	Micro averaging means all samples are pooled before the curve is
//	constructed — the caller may concatenate samples from multiple
//	trials or proportions and obtain one curve over the union. Scores
//	that are NaN are coerced to zero before ranking (nan_to_num
//	semantics), so a model emitting undefined scores degrades instead of
//	poisoning the metric.
//
// Errors:
//   - ErrDimensionMismatch  — len(classes) != len(scores).
//   - ErrNoSamples          — empty input.
//   - ErrDegenerateClasses  — only one class present.
//
// Complexity: O(n log n) for the score sort.
func ROCAUC(classes []bool, scores []float64) (float64, error) {
	if len(classes) != len(scores) {
		return 0, ErrDimensionMismatch
	}
	if len(classes) == 0 {
		return 0, ErrNoSamples
	}

	var pos, neg int
	y := make([]float64, len(scores))
	c := make([]bool, len(classes))
	for k, s := range scores {
		if math.IsNaN(s) {
			s = 0
		}
		y[k] = s
		c[k] = classes[k]
		if classes[k] {
			pos++
		} else {
			neg++
		}
	}
	if pos == 0 || neg == 0 {
		return 0, ErrDegenerateClasses
	}

	// stat.ROC requires scores ascending with classes aligned.
	sort.Sort(&byScore{y: y, c: c})
	tpr, fpr, _ := stat.ROC(nil, y, c, nil)

	return integrate.Trapezoidal(fpr, tpr), nil
}

// byScore sorts scores ascending, carrying classes along.
type byScore struct {
	y []float64
	c []bool
}

func (b *byScore) Len() int           { return len(b.y) }
func (b *byScore) Less(i, j int) bool { return b.y[i] < b.y[j] }
func (b *byScore) Swap(i, j int) {
	b.y[i], b.y[j] = b.y[j], b.y[i]
	b.c[i], b.c[j] = b.c[j], b.c[i]
}
