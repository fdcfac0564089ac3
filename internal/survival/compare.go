package survival

import (
	"fmt"
	"sort"

	apperrors "rtk-backend/internal/errors"
	"rtk-backend/internal/numeric"
)

// Ranking is one candidate of a Compare run.
type Ranking struct {
	Rank  int    `json:"rank"`
	Fit   *Fit   `json:"fit,omitempty"`
	Error string `json:"error,omitempty"`
	// Distribution is repeated so failed candidates still name themselves.
	Distribution Distribution `json:"distribution"`
}

// Compare fits every supported distribution and ranks the successful fits
// by AIC, lowest first. Candidates that cannot be fitted are listed last
// with their error.
func Compare(records []Record, confidence float64) ([]Ranking, error) {
	if err := numeric.CheckConfidence(confidence); err != nil {
		return nil, err
	}
	var ok, failed []Ranking
	for _, d := range Distributions() {
		fit, err := FitDistribution(records, d, confidence)
		if err != nil {
			if apperrors.IsValidation(err) || !apperrors.IsCalculation(err) {
				return nil, err
			}
			failed = append(failed, Ranking{Distribution: d, Error: err.Error()})
			continue
		}
		ok = append(ok, Ranking{Distribution: d, Fit: fit})
	}
	if len(ok) == 0 {
		return nil, fmt.Errorf("%w: no distribution could be fitted", apperrors.ErrInsufficientData)
	}
	sort.SliceStable(ok, func(i, j int) bool { return ok[i].Fit.AIC < ok[j].Fit.AIC })
	out := append(ok, failed...)
	for i := range out {
		out[i].Rank = i + 1
	}
	return out, nil
}
