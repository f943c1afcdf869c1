package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/lensview/lens-go/pkg/constants"
	"go.uber.org/zap"
)

// Field is a single entry of an estimator summary's field view.
type Field struct {
	Name  string
	Value interface{}
}

// EstimatorSummary is the capability contract every estimator summary
// variant implements: render the field view, and persist it to the model
// summary service.
type EstimatorSummary interface {
	Show() []Field
	Save(ctx context.Context) (*Receipt, error)
}

// Receipt reports the outcome of a Save call. Saved is false when the
// service rejected the write; Location is the opaque identifier the service
// returned on acceptance.
type Receipt struct {
	Saved       bool
	Location    string
	CreatedTime string
}

// UnsetFieldsError reports a Save precondition violation: one or more fields
// held an unset value at save time.
type UnsetFieldsError struct {
	Fields []string
}

func (e *UnsetFieldsError) Error() string {
	return fmt.Sprintf("set all properties before saving: unset fields %s", strings.Join(e.Fields, ", "))
}

// GLMEstimatorSummary is the regression estimator summary. It holds the
// regression payload fields plus the created_time stamped at save time, and
// publishes to the regression path of the model summary service.
type GLMEstimatorSummary struct {
	GLMSummaryPayload
	CreatedTime string `json:"created_time"`

	client *Client
}

// NewGLMEstimatorSummary builds a regression summary over the given payload.
// The created_time starts at the placeholder sentinel and is only stamped by
// Save. A nil client targets the default endpoint without logging.
func NewGLMEstimatorSummary(client *Client, payload GLMSummaryPayload) *GLMEstimatorSummary {
	if client == nil {
		client = NewClient("", nil, nil)
	}
	return &GLMEstimatorSummary{
		GLMSummaryPayload: payload,
		CreatedTime:       constants.CreatedTimeSentinel,
		client:            client,
	}
}

// Show returns every public field of the summary as name/value pairs in
// declaration order, using the wire field names. It works on partially
// populated summaries and has no side effects.
func (s *GLMEstimatorSummary) Show() []Field {
	return []Field{
		{Name: "name", Value: s.Name},
		{Name: "desc", Value: s.Desc},
		{Name: "target", Value: s.Target},
		{Name: "prediction", Value: s.Prediction},
		{Name: "var_weights", Value: s.VarWeights},
		{Name: "link_function", Value: s.LinkFunction},
		{Name: "error_dist", Value: s.ErrorDist},
		{Name: "explained_variance", Value: s.ExplainedVariance},
		{Name: "feature_summary", Value: s.FeatureSummary},
		{Name: "created_time", Value: s.CreatedTime},
	}
}

// Save stamps created_time with the current UTC time and writes the summary
// to the regression path as a single JSON PUT.
//
// Every field must hold a set value first; a violation returns an
// UnsetFieldsError and performs no network call. "Set" means non-empty for
// strings and sequences and non-zero for numbers, so a legitimate explained
// variance of exactly 0.0 fails the check. Known limitation, kept for
// compatibility with existing callers.
//
// A response body of exactly "error" means the service rejected the write;
// this is logged and reported through the Receipt, not as an error. Any
// other body, whatever its status code, is taken as the storage location of
// the saved summary. Transport failures are returned as errors. Save may be
// called again; each call restamps created_time and issues a fresh write.
func (s *GLMEstimatorSummary) Save(ctx context.Context) (*Receipt, error) {
	if unset := s.unsetFields(); len(unset) > 0 {
		return nil, &UnsetFieldsError{Fields: unset}
	}

	s.CreatedTime = time.Now().UTC().Format(constants.CreatedTimeLayout)

	body, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize model summary, %w", err)
	}

	text, err := s.client.PutSummary(ctx, constants.RegressionPath, body)
	if err != nil {
		return nil, err
	}

	if text == constants.ErrorBody {
		s.client.logger.Error("error saving model summary",
			zap.String("op", "summary.Save"),
			zap.String("name", s.Name),
		)
		return &Receipt{Saved: false, CreatedTime: s.CreatedTime}, nil
	}

	s.client.logger.Info("model summary saved at "+text,
		zap.String("op", "summary.Save"),
		zap.String("name", s.Name),
	)
	return &Receipt{Saved: true, Location: text, CreatedTime: s.CreatedTime}, nil
}

// unsetFields lists the fields currently holding unset values, in
// declaration order. The created_time sentinel counts as set.
func (s *GLMEstimatorSummary) unsetFields() []string {
	var unset []string
	for _, field := range s.Show() {
		switch v := field.Value.(type) {
		case string:
			if v == "" {
				unset = append(unset, field.Name)
			}
		case float64:
			if v == 0 {
				unset = append(unset, field.Name)
			}
		case []FeatureSummary:
			if len(v) == 0 {
				unset = append(unset, field.Name)
			}
		}
	}
	return unset
}
