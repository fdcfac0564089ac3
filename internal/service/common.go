package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	apperrors "rtk-backend/internal/errors"
	"rtk-backend/internal/metrics"
	"rtk-backend/internal/prediction"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	timeLayout      = time.RFC3339
)

// registry lists the part families the prediction engine can evaluate.
var registry = prediction.NewRegistry()

// normalizePage clamps pagination parameters and returns the row offset.
func normalizePage(page, pageSize int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return page, pageSize, (page - 1) * pageSize
}

// validateRequest runs struct validation and reports failures as a ValidationError.
func validateRequest(v *validator.Validate, req interface{}) error {
	if err := v.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("validation failed: %w",
				apperrors.NewValidationError(fe.Field(), fmt.Sprintf("failed on the '%s' rule", fe.Tag())))
		}
		return fmt.Errorf("validation failed: %w", apperrors.NewValidationError("", err.Error()))
	}
	return nil
}

// notFound translates gorm.ErrRecordNotFound into the entity sentinel.
func notFound(err error, sentinel error, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// toJSON marshals a value for a jsonb column. Nil and empty maps become nil.
func toJSON(v interface{}) json.RawMessage {
	switch m := v.(type) {
	case nil:
		return nil
	case map[string]float64:
		if len(m) == 0 {
			return nil
		}
	case map[string]string:
		if len(m) == 0 {
			return nil
		}
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return raw
}

// floatMap decodes a jsonb column holding numbers.
func floatMap(raw json.RawMessage) map[string]float64 {
	out := map[string]float64{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}
	return out
}

// stringMap decodes a jsonb column holding strings.
func stringMap(raw json.RawMessage) map[string]string {
	out := map[string]string{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}
	return out
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(timeLayout)
}

// observe records the duration and outcome of an engine run.
func observe(kind string, start time.Time, err error) {
	metrics.RecordCalculation(kind, time.Since(start).Seconds(), err)
}

// partSpec is the engine view of one hardware item.
type partSpec struct {
	Input      prediction.Input
	Adjustment prediction.Adjustment
}

// partOutcome holds per-unit hazard rates of one evaluated part.
type partOutcome struct {
	Active  float64
	Dormant float64
	Result  *prediction.Result
}

// evaluatePart runs the handbook model when the adjustment needs it and
// applies the user overrides. Rates are per unit.
func evaluatePart(spec partSpec, multiplier float64) (*partOutcome, error) {
	var (
		res      *prediction.Result
		modelled float64
	)
	if spec.Adjustment.NeedsModel() {
		r, err := prediction.Calculate(spec.Input)
		if err != nil {
			return nil, err
		}
		res = r
		modelled = r.HazardRate
	}
	active, err := spec.Adjustment.Apply(modelled, multiplier)
	if err != nil {
		return nil, err
	}
	return &partOutcome{
		Active:  active,
		Dormant: prediction.DormantHazardRate(spec.Input.Category, spec.Input.Environment, active),
		Result:  res,
	}, nil
}

func quantityOf(q int) float64 {
	if q < 1 {
		return 1
	}
	return float64(q)
}
