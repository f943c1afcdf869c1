// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/lensview/lens-go/internal/summary"
)

// PopulatedPayload returns a regression summary payload with every field set,
// suitable as a baseline for save tests.
func PopulatedPayload() summary.GLMSummaryPayload {
	return summary.GLMSummaryPayload{
		Name:              "claim-frequency-glm",
		Desc:              "Claim frequency model, Q3 refresh",
		Target:            "claim_count",
		Prediction:        "predicted_claim_count",
		VarWeights:        "exposure",
		LinkFunction:      "log",
		ErrorDist:         "poisson",
		ExplainedVariance: 0.42,
		FeatureSummary: []summary.FeatureSummary{
			{
				Name: "driver_age",
				Data: summary.FeatureSummaryData{
					BinEdgeRight:     []float64{25, 40, 65},
					SumTarget:        []float64{120, 80, 60},
					SumPrediction:    []float64{115, 84, 58},
					SumWeight:        []float64{1000, 2500, 1800},
					WtdAvgPrediction: []float64{0.115, 0.0336, 0.0322},
					WtdAvgTarget:     []float64{0.12, 0.032, 0.0333},
				},
			},
			{
				Name: "vehicle_value",
				Data: summary.FeatureSummaryData{
					BinEdgeRight:     []float64{10000, 30000},
					SumTarget:        []float64{150, 110},
					SumPrediction:    []float64{148, 113},
					SumWeight:        []float64{3000, 2300},
					WtdAvgPrediction: []float64{0.0493, 0.0491},
					WtdAvgTarget:     []float64{0.05, 0.0478},
				},
			},
		},
	}
}

// FindField finds a field by name in a summary field view.
// Returns a pointer to the field if found, nil otherwise.
func FindField(fields []summary.Field, name string) *summary.Field {
	for i := range fields {
		if fields[i].Name == name {
			return &fields[i]
		}
	}
	return nil
}
