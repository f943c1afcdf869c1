package testutil

import (
	"testing"

	"github.com/lensview/lens-go/internal/summary"
)

func TestPopulatedPayloadIsFullySet(t *testing.T) {
	payload := PopulatedPayload()

	s := summary.NewGLMEstimatorSummary(nil, payload)
	for _, field := range s.Show() {
		switch v := field.Value.(type) {
		case string:
			if v == "" {
				t.Errorf("field %s is empty", field.Name)
			}
		case float64:
			if v == 0 {
				t.Errorf("field %s is zero", field.Name)
			}
		case []summary.FeatureSummary:
			if len(v) == 0 {
				t.Errorf("field %s is empty", field.Name)
			}
		}
	}
}

func TestFindField(t *testing.T) {
	fields := summary.NewGLMEstimatorSummary(nil, PopulatedPayload()).Show()

	if f := FindField(fields, "link_function"); f == nil || f.Value != "log" {
		t.Errorf("FindField(link_function) = %v, expected log", f)
	}
	if f := FindField(fields, "nonexistent"); f != nil {
		t.Errorf("FindField(nonexistent) = %v, expected nil", f)
	}
}
