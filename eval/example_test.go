package eval_test

import (
	"fmt"

	"github.com/katalvlaran/linkpred/eval"
)

// ExampleROCAUC scores a small pooled prediction set.
func ExampleROCAUC() {
	classes := []bool{true, true, false, false}
	scores := []float64{0.92, 0.81, 0.33, 0.05}

	auc, err := eval.ROCAUC(classes, scores)
	if err != nil {
		fmt.Println("roc:", err)
		return
	}
	fmt.Printf("micro ROC-AUC: %.2f\n", auc)
	// Output:
	// micro ROC-AUC: 1.00
}
