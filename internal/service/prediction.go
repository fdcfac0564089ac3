package service

import (
	"context"
	"fmt"
	"time"

	apperrors "rtk-backend/internal/errors"
	"rtk-backend/internal/logger"
	"rtk-backend/internal/metrics"
	"rtk-backend/internal/prediction"

	"github.com/go-playground/validator/v10"
)

// PredictionService evaluates parts lists that are not stored in a revision
type PredictionService struct {
	validator          *validator.Validate
	multiplier         float64
	defaultMissionTime float64
}

// NewPredictionService creates a new prediction service
func NewPredictionService(validator *validator.Validate, multiplier, defaultMissionTime float64) *PredictionService {
	return &PredictionService{
		validator:          validator,
		multiplier:         multiplier,
		defaultMissionTime: defaultMissionTime,
	}
}

var _ PredictionServiceInterface = (*PredictionService)(nil)

// PredictPart is one part or assembly of a stateless prediction
type PredictPart struct {
	ID                  string             `json:"id" yaml:"id" validate:"required"`
	ParentID            string             `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
	Category            string             `json:"category" yaml:"category" validate:"required"`
	Subcategory         string             `json:"subcategory,omitempty" yaml:"subcategory,omitempty"`
	Quantity            int                `json:"quantity,omitempty" yaml:"quantity,omitempty" validate:"omitempty,min=1"`
	Environment         string             `json:"environment,omitempty" yaml:"environment,omitempty"`
	Quality             string             `json:"quality,omitempty" yaml:"quality,omitempty"`
	Method              string             `json:"method,omitempty" yaml:"method,omitempty" validate:"omitempty,oneof=parts_count parts_stress"`
	AmbientTemp         *float64           `json:"ambient_temp,omitempty" yaml:"ambient_temp,omitempty"`
	Attributes          map[string]float64 `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Options             map[string]string  `json:"options,omitempty" yaml:"options,omitempty"`
	HazardRateType      string             `json:"hazard_rate_type,omitempty" yaml:"hazard_rate_type,omitempty" validate:"omitempty,oneof=assessed specified_hazard_rate specified_mtbf"`
	SpecifiedHazardRate float64            `json:"specified_hazard_rate,omitempty" yaml:"specified_hazard_rate,omitempty" validate:"gte=0"`
	SpecifiedMTBF       float64            `json:"specified_mtbf,omitempty" yaml:"specified_mtbf,omitempty" validate:"gte=0"`
	MultAdjFactor       float64            `json:"mult_adj_factor,omitempty" yaml:"mult_adj_factor,omitempty" validate:"gte=0"`
	AddAdjFactor        float64            `json:"add_adj_factor,omitempty" yaml:"add_adj_factor,omitempty"`
}

// PredictRequest represents a parts list to evaluate
type PredictRequest struct {
	MissionTime float64       `json:"mission_time,omitempty" yaml:"mission_time,omitempty" validate:"gte=0"`
	Parts       []PredictPart `json:"parts" yaml:"parts" validate:"required,min=1,dive"`
}

// PredictPartResult is the evaluation of one part or assembly
type PredictPartResult struct {
	ID                  string                  `json:"id"`
	ParentID            string                  `json:"parent_id,omitempty"`
	Category            string                  `json:"category"`
	Quantity            int                     `json:"quantity"`
	HazardRateActive    float64                 `json:"hazard_rate_active"`
	HazardRateDormant   float64                 `json:"hazard_rate_dormant"`
	HazardRateLogistics float64                 `json:"hazard_rate_logistics"`
	MTBF                float64                 `json:"mtbf"`
	Reliability         float64                 `json:"reliability"`
	PercentOfParent     float64                 `json:"percent_of_parent"`
	Model               string                  `json:"model,omitempty"`
	Factors             map[string]float64      `json:"factors,omitempty"`
	Stress              map[string]float64      `json:"stress,omitempty"`
	Overstressed        bool                    `json:"overstressed"`
	Reasons             []string                `json:"reasons,omitempty"`
	Contributions       []prediction.Contribution `json:"contributions,omitempty"`
}

// PredictResponse represents the evaluated parts list with system totals
type PredictResponse struct {
	MissionTime         float64             `json:"mission_time"`
	HazardRateActive    float64             `json:"hazard_rate_active"`
	HazardRateDormant   float64             `json:"hazard_rate_dormant"`
	HazardRateLogistics float64             `json:"hazard_rate_logistics"`
	MTBF                float64             `json:"mtbf"`
	Reliability         float64             `json:"reliability"`
	Overstressed        int                 `json:"overstressed"`
	Parts               []PredictPartResult `json:"parts"`
}

// CategoryInfo describes one part family
type CategoryInfo struct {
	Category      string   `json:"category"`
	Subcategories []string `json:"subcategories"`
	Qualities     []string `json:"qualities"`
}

// CatalogResponse lists the values the prediction engine accepts
type CatalogResponse struct {
	Categories      []CategoryInfo `json:"categories"`
	Environments    []string       `json:"environments"`
	Methods         []string       `json:"methods"`
	HazardRateTypes []string       `json:"hazard_rate_types"`
	Multiplier      float64        `json:"multiplier"`
}

// Predict evaluates every part, rolls up assemblies and returns system
// totals. The first part that cannot be evaluated fails the request.
func (s *PredictionService) Predict(ctx context.Context, req *PredictRequest) (*PredictResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	missionTime := req.MissionTime
	if missionTime == 0 {
		missionTime = s.defaultMissionTime
	}

	start := time.Now()
	resp, err := s.predict(req.Parts, missionTime)
	observe(metrics.KindPrediction, start, err)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Prediction failed")
		return nil, err
	}
	metrics.RecordOverstressed(resp.Overstressed)
	return resp, nil
}

func (s *PredictionService) predict(parts []PredictPart, missionTime float64) (*PredictResponse, error) {
	resp := &PredictResponse{
		MissionTime: missionTime,
		Parts:       make([]PredictPartResult, len(parts)),
	}
	active := make([]*prediction.Node, len(parts))
	dormant := make([]*prediction.Node, len(parts))
	seen := make(map[string]bool, len(parts))

	for i, p := range parts {
		if seen[p.ID] {
			return nil, apperrors.NewValidationError("id", fmt.Sprintf("duplicate part id %q", p.ID))
		}
		seen[p.ID] = true

		assembly := p.Category == "assembly"
		quantity := p.Quantity
		if quantity == 0 {
			quantity = 1
		}
		active[i] = &prediction.Node{ID: p.ID, ParentID: p.ParentID, Assembly: assembly, Quantity: quantity}
		dormant[i] = &prediction.Node{ID: p.ID, ParentID: p.ParentID, Assembly: assembly, Quantity: quantity}
		resp.Parts[i] = PredictPartResult{ID: p.ID, ParentID: p.ParentID, Category: p.Category, Quantity: quantity}
		if assembly {
			continue
		}

		spec, err := p.spec(quantity)
		if err != nil {
			return nil, fmt.Errorf("part %s: %w", p.ID, err)
		}
		outcome, err := evaluatePart(spec, s.multiplier)
		if err != nil {
			return nil, fmt.Errorf("part %s: %w", p.ID, err)
		}
		active[i].HazardRate = outcome.Active
		dormant[i].HazardRate = outcome.Dormant
		if r := outcome.Result; r != nil {
			resp.Parts[i].Model = r.Model
			resp.Parts[i].Factors = r.Factors
			resp.Parts[i].Stress = r.Stress
			resp.Parts[i].Overstressed = r.Overstressed
			resp.Parts[i].Reasons = r.Reasons
			if r.Overstressed {
				resp.Overstressed++
			}
		}
	}

	summaries, err := prediction.Rollup(active, missionTime, s.multiplier)
	if err != nil {
		return nil, err
	}
	if _, err := prediction.Rollup(dormant, missionTime, s.multiplier); err != nil {
		return nil, err
	}

	percent := make(map[string]float64)
	for _, sum := range summaries {
		for _, c := range sum.Contributions {
			percent[c.ID] = c.Percent
		}
	}

	for i := range resp.Parts {
		out := &resp.Parts[i]
		lambda := active[i].HazardRate
		out.HazardRateActive = lambda
		out.HazardRateDormant = dormant[i].HazardRate
		out.HazardRateLogistics = lambda * quantityOf(out.Quantity)
		out.MTBF = prediction.MTBF(lambda, s.multiplier)
		out.Reliability = prediction.Reliability(lambda, missionTime, s.multiplier)
		out.PercentOfParent = percent[out.ID]
		if sum, ok := summaries[out.ID]; ok {
			out.Contributions = sum.Contributions
		}
		if out.ParentID == "" {
			resp.HazardRateActive += out.HazardRateLogistics
			resp.HazardRateDormant += out.HazardRateDormant * quantityOf(out.Quantity)
			resp.HazardRateLogistics += out.HazardRateLogistics
		}
	}
	resp.MTBF = prediction.MTBF(resp.HazardRateActive, s.multiplier)
	resp.Reliability = prediction.Reliability(resp.HazardRateActive, missionTime, s.multiplier)
	return resp, nil
}

func (p PredictPart) spec(quantity int) (partSpec, error) {
	envCode := p.Environment
	if envCode == "" {
		envCode = string(prediction.EnvGroundBenign)
	}
	env, err := prediction.ParseEnvironment(envCode)
	if err != nil {
		return partSpec{}, err
	}
	method := prediction.Method(p.Method)
	if method == "" {
		method = prediction.PartsCount
	}
	ambient := 30.0
	if p.AmbientTemp != nil {
		ambient = *p.AmbientTemp
	}
	return partSpec{
		Input: prediction.Input{
			Category:    prediction.Category(p.Category),
			Subcategory: p.Subcategory,
			Environment: env,
			Quality:     p.Quality,
			Method:      method,
			Quantity:    quantity,
			AmbientTemp: ambient,
			Attributes:  p.Attributes,
			Options:     p.Options,
		},
		Adjustment: prediction.Adjustment{
			Type:                prediction.HazardRateType(p.HazardRateType),
			SpecifiedHazardRate: p.SpecifiedHazardRate,
			SpecifiedMTBF:       p.SpecifiedMTBF,
			MultAdjFactor:       p.MultAdjFactor,
			AddAdjFactor:        p.AddAdjFactor,
		},
	}, nil
}

// Catalog lists categories with their parts-count subcategories and quality
// levels, the environments and the supported methods.
func (s *PredictionService) Catalog() *CatalogResponse {
	resp := &CatalogResponse{
		Methods:         []string{string(prediction.PartsCount), string(prediction.PartsStress)},
		HazardRateTypes: []string{string(prediction.Assessed), string(prediction.SpecifiedHazardRate), string(prediction.SpecifiedMTBF)},
		Multiplier:      s.multiplier,
	}
	for _, c := range registry.Categories() {
		resp.Categories = append(resp.Categories, CategoryInfo{
			Category:      string(c),
			Subcategories: prediction.Subcategories(c),
			Qualities:     prediction.Qualities(c),
		})
	}
	for _, env := range prediction.Environments() {
		resp.Environments = append(resp.Environments, string(env))
	}
	return resp
}
