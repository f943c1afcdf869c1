// Package summary defines the model summary shapes published to the lens
// model summary service and the estimator summary entities that publish them.
package summary

// GLMBasicInfo describes the identifying configuration of a fitted GLM.
// It is a descriptive shape only; nothing in this module instantiates it.
type GLMBasicInfo struct {
	Name       string   `json:"name" yaml:"name"`
	Formula    string   `json:"formula" yaml:"formula"`
	Features   []string `json:"features" yaml:"features"`
	Prediction string   `json:"prediction" yaml:"prediction"`
	Target     string   `json:"target" yaml:"target"`
	Weight     string   `json:"weight" yaml:"weight"`
}

// FeatureSummaryData holds per-bin statistics for a single feature. All six
// sequences are indexed by histogram bin and are expected to share a length;
// nothing here enforces that, see validation.CheckFeatureSummaries.
type FeatureSummaryData struct {
	BinEdgeRight     []float64 `json:"bin_edge_right" yaml:"bin_edge_right"`
	SumTarget        []float64 `json:"sum_target" yaml:"sum_target"`
	SumPrediction    []float64 `json:"sum_prediction" yaml:"sum_prediction"`
	SumWeight        []float64 `json:"sum_weight" yaml:"sum_weight"`
	WtdAvgPrediction []float64 `json:"wtd_avg_prediction" yaml:"wtd_avg_prediction"`
	WtdAvgTarget     []float64 `json:"wtd_avg_target" yaml:"wtd_avg_target"`
}

// FeatureSummary pairs a feature name with its binned statistics.
type FeatureSummary struct {
	Name string             `json:"name" yaml:"name"`
	Data FeatureSummaryData `json:"data" yaml:"data"`
}

// GLMSummaryPayload is the wire shape of a regression model summary. The
// feature summary order follows the model's feature order and is preserved
// through serialization.
type GLMSummaryPayload struct {
	Name              string           `json:"name" yaml:"name"`
	Desc              string           `json:"desc" yaml:"desc"`
	Target            string           `json:"target" yaml:"target"`
	Prediction        string           `json:"prediction" yaml:"prediction"`
	VarWeights        string           `json:"var_weights" yaml:"var_weights"`
	LinkFunction      string           `json:"link_function" yaml:"link_function"`
	ErrorDist         string           `json:"error_dist" yaml:"error_dist"`
	ExplainedVariance float64          `json:"explained_variance" yaml:"explained_variance"`
	FeatureSummary    []FeatureSummary `json:"feature_summary" yaml:"feature_summary"`
}
