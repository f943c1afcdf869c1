package validation

import (
	"fmt"

	"github.com/lensview/lens-go/internal/summary"
)

// CheckFeatureSummaries verifies that the six bin-statistic sequences of
// every feature summary share a length. Mismatched lengths indicate a data
// error upstream. The check is advisory: saving does not run it, so callers
// that want it must invoke it themselves.
func CheckFeatureSummaries(featureSummaries []summary.FeatureSummary) error {
	for _, fs := range featureSummaries {
		bins := len(fs.Data.BinEdgeRight)
		sequences := map[string]int{
			"sum_target":         len(fs.Data.SumTarget),
			"sum_prediction":     len(fs.Data.SumPrediction),
			"sum_weight":         len(fs.Data.SumWeight),
			"wtd_avg_prediction": len(fs.Data.WtdAvgPrediction),
			"wtd_avg_target":     len(fs.Data.WtdAvgTarget),
		}
		for name, length := range sequences {
			if length != bins {
				return fmt.Errorf("feature %s: %s has %d entries, expected %d to match bin_edge_right",
					fs.Name, name, length, bins)
			}
		}
	}
	return nil
}
