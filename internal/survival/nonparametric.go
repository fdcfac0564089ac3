package survival

import (
	"fmt"
	"math"
	"sort"

	apperrors "rtk-backend/internal/errors"
	"rtk-backend/internal/numeric"
)

// KMPoint is the product-limit estimate just after one failure time.
type KMPoint struct {
	Time     float64 `json:"time"`
	AtRisk   float64 `json:"at_risk"`
	Failures float64 `json:"failures"`
	Survival float64 `json:"survival"`
	Variance float64 `json:"variance"`
	Lower    float64 `json:"lower"`
	Upper    float64 `json:"upper"`
}

type event struct {
	time   float64
	weight float64
	failed bool
}

// KaplanMeier returns the product-limit survival estimate at each distinct
// failure time with Greenwood's variance and normal bounds clamped to
// [0, 1]. Units suspended at a failure time are counted at risk.
func KaplanMeier(records []Record, confidence float64) ([]KMPoint, error) {
	if err := numeric.CheckConfidence(confidence); err != nil {
		return nil, err
	}
	events := make([]event, 0, len(records))
	total := 0.0
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		events = append(events, event{time: r.Time(), weight: r.weight(), failed: r.Failed()})
		total += r.weight()
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("%w: no records", apperrors.ErrInsufficientData)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].time < events[j].time })

	z := numeric.NormalQuantile(1.0 - numeric.Alpha(confidence))
	var out []KMPoint
	survival, greenwood, atRisk := 1.0, 0.0, total
	for i := 0; i < len(events); {
		t := events[i].time
		var failed, leaving float64
		for ; i < len(events) && events[i].time == t; i++ {
			leaving += events[i].weight
			if events[i].failed {
				failed += events[i].weight
			}
		}
		if failed > 0 {
			survival *= 1.0 - failed/atRisk
			if atRisk > failed {
				greenwood += failed / (atRisk * (atRisk - failed))
			}
			v := survival * survival * greenwood
			half := z * math.Sqrt(v)
			out = append(out, KMPoint{
				Time:     t,
				AtRisk:   atRisk,
				Failures: failed,
				Survival: survival,
				Variance: v,
				Lower:    math.Max(0, survival-half),
				Upper:    math.Min(1, survival+half),
			})
		}
		atRisk -= leaving
	}
	return out, nil
}

// MCFPoint is the mean cumulative function at one recurrence time.
type MCFPoint struct {
	Time     float64 `json:"time"`
	AtRisk   int     `json:"at_risk"`
	Events   float64 `json:"events"`
	MCF      float64 `json:"mcf"`
	Variance float64 `json:"variance"`
	Lower    float64 `json:"lower"`
	Upper    float64 `json:"upper"`
}

// MCF estimates the mean cumulative number of failures per unit for
// repairable systems. Each unit is observed until its latest record time;
// failures are recurrences. The variance is the Poisson estimate
// sum d / r^2.
func MCF(records []Record, confidence float64) ([]MCFPoint, error) {
	if err := numeric.CheckConfidence(confidence); err != nil {
		return nil, err
	}
	end := make(map[string]float64)
	var recurrences []event
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if r.Unit == "" {
			return nil, apperrors.NewValidationError("unit", "every record needs a unit for a mean cumulative function")
		}
		end[r.Unit] = math.Max(end[r.Unit], r.RightTime)
		if r.Failed() {
			recurrences = append(recurrences, event{time: r.Time(), weight: r.weight(), failed: true})
		}
	}
	if len(recurrences) == 0 {
		return nil, fmt.Errorf("%w: no recurrences", apperrors.ErrInsufficientData)
	}
	sort.Slice(recurrences, func(i, j int) bool { return recurrences[i].time < recurrences[j].time })

	z := numeric.NormalQuantile(1.0 - numeric.Alpha(confidence))
	var out []MCFPoint
	var mcf, vr float64
	for i := 0; i < len(recurrences); {
		t := recurrences[i].time
		d := 0.0
		for ; i < len(recurrences) && recurrences[i].time == t; i++ {
			d += recurrences[i].weight
		}
		atRisk := 0
		for _, e := range end {
			if e >= t {
				atRisk++
			}
		}
		r := float64(atRisk)
		mcf += d / r
		vr += d / (r * r)
		half := z * math.Sqrt(vr)
		out = append(out, MCFPoint{
			Time:     t,
			AtRisk:   atRisk,
			Events:   d,
			MCF:      mcf,
			Variance: vr,
			Lower:    math.Max(0, mcf-half),
			Upper:    mcf + half,
		})
	}
	return out, nil
}
