// Package survival fits life distributions and non-parametric estimates to
// field and test records.
package survival

import (
	"fmt"
	"math"

	apperrors "rtk-backend/internal/errors"
)

// Status is the observation type of a record.
type Status string

const (
	Failure          Status = "failure"
	RightCensored    Status = "right_censored"
	IntervalCensored Status = "interval_censored"
)

// IsValid checks if the Status is valid
func (s Status) IsValid() bool {
	switch s {
	case Failure, RightCensored, IntervalCensored:
		return true
	}
	return false
}

// Distribution names a fitted life distribution.
type Distribution string

const (
	Exponential Distribution = "exponential"
	Weibull     Distribution = "weibull"
)

// Distributions lists every distribution Compare fits.
func Distributions() []Distribution {
	return []Distribution{Exponential, Weibull}
}

// Record is Quantity identical units, each observed from age zero. A
// failure happens at age RightTime, a suspension survives to RightTime and
// an interval censored failure happens somewhere in (LeftTime, RightTime].
// LeftTime only bounds interval censored failures; the parametric fits and
// Kaplan-Meier charge every record its full age as exposure. MCF instead
// reads the records of one Unit as recurrences on a single system.
type Record struct {
	Unit      string  `json:"unit" yaml:"unit"`
	LeftTime  float64 `json:"left_time" yaml:"left_time"`
	RightTime float64 `json:"right_time" yaml:"right_time"`
	Status    Status  `json:"status" yaml:"status"`
	Quantity  int     `json:"quantity" yaml:"quantity"`
}

// Time is the event or exposure time used by the estimators. Interval
// censored records use the interval midpoint.
func (r Record) Time() float64 {
	if r.Status == IntervalCensored {
		return (r.LeftTime + r.RightTime) / 2.0
	}
	return r.RightTime
}

// Failed reports whether the record is a failure of any kind.
func (r Record) Failed() bool {
	return r.Status == Failure || r.Status == IntervalCensored
}

func (r Record) weight() float64 {
	if r.Quantity < 1 {
		return 1
	}
	return float64(r.Quantity)
}

// Validate checks a record's times and status.
func (r Record) Validate() error {
	if !r.Status.IsValid() {
		return apperrors.NewValidationError("status", fmt.Sprintf("unknown status %q", r.Status))
	}
	if r.LeftTime < 0 || math.IsNaN(r.LeftTime) {
		return apperrors.NewValidationError("left_time", "must not be negative")
	}
	if !(r.RightTime > 0) || math.IsInf(r.RightTime, 0) {
		return apperrors.NewValidationError("right_time", "must be positive and finite")
	}
	if r.LeftTime > r.RightTime {
		return apperrors.NewValidationError("left_time", "must not exceed right_time")
	}
	if r.Quantity < 0 {
		return apperrors.NewValidationError("quantity", "must not be negative")
	}
	return nil
}

// summary holds the weighted totals every parametric fit needs.
type summary struct {
	failures    float64
	suspensions float64
	exposure    float64
}

func summarize(records []Record) (summary, error) {
	var s summary
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return summary{}, fmt.Errorf("record %d: %w", i, err)
		}
		w := r.weight()
		s.exposure += w * r.Time()
		if r.Failed() {
			s.failures += w
		} else {
			s.suspensions += w
		}
	}
	return s, nil
}

// Fit is a fitted parametric distribution.
type Fit struct {
	Distribution  Distribution       `json:"distribution"`
	Confidence    float64            `json:"confidence"`
	Failures      int                `json:"failures"`
	Suspensions   int                `json:"suspensions"`
	Parameters    map[string]float64 `json:"parameters"`
	Lower         map[string]float64 `json:"lower"`
	Upper         map[string]float64 `json:"upper"`
	LogLikelihood float64            `json:"log_likelihood"`
	AIC           float64            `json:"aic"`
	BIC           float64            `json:"bic"`
}

func newFit(d Distribution, confidence float64, s summary) *Fit {
	return &Fit{
		Distribution: d,
		Confidence:   confidence,
		Failures:     int(s.failures),
		Suspensions:  int(s.suspensions),
		Parameters:   make(map[string]float64),
		Lower:        make(map[string]float64),
		Upper:        make(map[string]float64),
	}
}

// FitDistribution fits the named distribution.
func FitDistribution(records []Record, d Distribution, confidence float64) (*Fit, error) {
	switch d {
	case Exponential:
		return FitExponential(records, confidence)
	case Weibull:
		return FitWeibull(records, confidence)
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownDistribution, d)
	}
}
