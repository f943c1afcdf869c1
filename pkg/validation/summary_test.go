package validation

import (
	"strings"
	"testing"

	"github.com/lensview/lens-go/internal/summary"
	"github.com/lensview/lens-go/pkg/testutil"
)

func TestCheckFeatureSummariesValid(t *testing.T) {
	payload := testutil.PopulatedPayload()
	if err := CheckFeatureSummaries(payload.FeatureSummary); err != nil {
		t.Errorf("CheckFeatureSummaries() unexpected error = %v", err)
	}
}

func TestCheckFeatureSummariesEmpty(t *testing.T) {
	if err := CheckFeatureSummaries(nil); err != nil {
		t.Errorf("CheckFeatureSummaries(nil) unexpected error = %v", err)
	}
}

func TestCheckFeatureSummariesMismatch(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(data *summary.FeatureSummaryData)
		want   string
	}{
		{
			name:   "Short sum_target",
			mutate: func(data *summary.FeatureSummaryData) { data.SumTarget = data.SumTarget[:1] },
			want:   "sum_target",
		},
		{
			name:   "Long wtd_avg_prediction",
			mutate: func(data *summary.FeatureSummaryData) { data.WtdAvgPrediction = append(data.WtdAvgPrediction, 0.1) },
			want:   "wtd_avg_prediction",
		},
		{
			name:   "Missing sum_weight",
			mutate: func(data *summary.FeatureSummaryData) { data.SumWeight = nil },
			want:   "sum_weight",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := testutil.PopulatedPayload()
			tt.mutate(&payload.FeatureSummary[0].Data)

			err := CheckFeatureSummaries(payload.FeatureSummary)
			if err == nil {
				t.Fatal("CheckFeatureSummaries() expected error but got none")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("CheckFeatureSummaries() error %q does not name %s", err.Error(), tt.want)
			}
			if !strings.Contains(err.Error(), "driver_age") {
				t.Errorf("CheckFeatureSummaries() error %q does not name the feature", err.Error())
			}
		})
	}
}
