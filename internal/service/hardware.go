package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rtk-backend/internal/database/models"
	apperrors "rtk-backend/internal/errors"
	"rtk-backend/internal/logger"
	"rtk-backend/internal/metrics"
	"rtk-backend/internal/prediction"
	"rtk-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HardwareService handles business logic for the hardware tree of a revision
type HardwareService struct {
	hardwareRepo repository.HardwareRepositoryInterface
	revisionRepo repository.RevisionRepositoryInterface
	validator    *validator.Validate
	multiplier   float64
}

// NewHardwareService creates a new hardware service. multiplier is the
// hazard rate unit (failures per multiplier hours).
func NewHardwareService(hardwareRepo repository.HardwareRepositoryInterface, revisionRepo repository.RevisionRepositoryInterface, validator *validator.Validate, multiplier float64) *HardwareService {
	return &HardwareService{
		hardwareRepo: hardwareRepo,
		revisionRepo: revisionRepo,
		validator:    validator,
		multiplier:   multiplier,
	}
}

var _ HardwareServiceInterface = (*HardwareService)(nil)

// CreateHardwareRequest represents the request to add a part or assembly to a revision
type CreateHardwareRequest struct {
	RefDes              string             `json:"ref_des" validate:"required,min=1,max=40"`
	Title               string             `json:"title,omitempty" validate:"max=100"`
	Description         string             `json:"description,omitempty" validate:"max=200"`
	ParentID            *uuid.UUID         `json:"parent_id,omitempty"`
	Category            string             `json:"category" validate:"required"`
	Subcategory         string             `json:"subcategory,omitempty" validate:"max=60"`
	Quantity            int                `json:"quantity,omitempty" validate:"omitempty,min=1"`
	Environment         string             `json:"environment,omitempty"`
	Quality             string             `json:"quality,omitempty" validate:"max=20"`
	Method              string             `json:"method,omitempty" validate:"omitempty,oneof=parts_count parts_stress"`
	HazardRateType      string             `json:"hazard_rate_type,omitempty" validate:"omitempty,oneof=assessed specified_hazard_rate specified_mtbf"`
	SpecifiedHazardRate float64            `json:"specified_hazard_rate,omitempty" validate:"gte=0"`
	SpecifiedMTBF       float64            `json:"specified_mtbf,omitempty" validate:"gte=0"`
	MultAdjFactor       *float64           `json:"mult_adj_factor,omitempty" validate:"omitempty,gte=0"`
	AddAdjFactor        float64            `json:"add_adj_factor,omitempty"`
	AmbientTemp         *float64           `json:"ambient_temp,omitempty" validate:"omitempty,gte=-273"`
	Attributes          map[string]float64 `json:"attributes,omitempty"`
	Options             map[string]string  `json:"options,omitempty"`
	CreatedBy           string             `json:"created_by,omitempty" validate:"max=40"`
}

// UpdateHardwareRequest represents the request to update a hardware item.
// Nil fields are left unchanged.
type UpdateHardwareRequest struct {
	Title               *string            `json:"title,omitempty" validate:"omitempty,max=100"`
	Description         *string            `json:"description,omitempty" validate:"omitempty,max=200"`
	ParentID            *uuid.UUID         `json:"parent_id,omitempty"`
	DetachParent        bool               `json:"detach_parent,omitempty"`
	Category            *string            `json:"category,omitempty" validate:"omitempty,min=1"`
	Subcategory         *string            `json:"subcategory,omitempty" validate:"omitempty,max=60"`
	Quantity            *int               `json:"quantity,omitempty" validate:"omitempty,min=1"`
	Environment         *string            `json:"environment,omitempty"`
	Quality             *string            `json:"quality,omitempty" validate:"omitempty,max=20"`
	Method              *string            `json:"method,omitempty" validate:"omitempty,oneof=parts_count parts_stress"`
	HazardRateType      *string            `json:"hazard_rate_type,omitempty" validate:"omitempty,oneof=assessed specified_hazard_rate specified_mtbf"`
	SpecifiedHazardRate *float64           `json:"specified_hazard_rate,omitempty" validate:"omitempty,gte=0"`
	SpecifiedMTBF       *float64           `json:"specified_mtbf,omitempty" validate:"omitempty,gte=0"`
	MultAdjFactor       *float64           `json:"mult_adj_factor,omitempty" validate:"omitempty,gte=0"`
	AddAdjFactor        *float64           `json:"add_adj_factor,omitempty"`
	AmbientTemp         *float64           `json:"ambient_temp,omitempty" validate:"omitempty,gte=-273"`
	Attributes          map[string]float64 `json:"attributes,omitempty"`
	Options             map[string]string  `json:"options,omitempty"`
	UpdatedBy           string             `json:"updated_by,omitempty" validate:"max=40"`
}

// HardwareResponse represents a hardware item with its last calculation results
type HardwareResponse struct {
	ID                  uuid.UUID          `json:"id"`
	RevisionID          uuid.UUID          `json:"revision_id"`
	ParentID            *uuid.UUID         `json:"parent_id,omitempty"`
	RefDes              string             `json:"ref_des"`
	Title               string             `json:"title"`
	Description         string             `json:"description"`
	Category            string             `json:"category"`
	Subcategory         string             `json:"subcategory"`
	Quantity            int                `json:"quantity"`
	Environment         string             `json:"environment"`
	Quality             string             `json:"quality"`
	Method              string             `json:"method"`
	HazardRateType      string             `json:"hazard_rate_type"`
	SpecifiedHazardRate float64            `json:"specified_hazard_rate"`
	SpecifiedMTBF       float64            `json:"specified_mtbf"`
	MultAdjFactor       float64            `json:"mult_adj_factor"`
	AddAdjFactor        float64            `json:"add_adj_factor"`
	AmbientTemp         float64            `json:"ambient_temp"`
	Attributes          map[string]float64 `json:"attributes"`
	Options             map[string]string  `json:"options"`
	HazardRateActive    float64            `json:"hazard_rate_active"`
	HazardRateDormant   float64            `json:"hazard_rate_dormant"`
	HazardRateLogistics float64            `json:"hazard_rate_logistics"`
	MTBF                float64            `json:"mtbf"`
	Reliability         float64            `json:"reliability"`
	PercentOfParent     float64            `json:"percent_of_parent"`
	Model               string             `json:"model,omitempty"`
	Factors             map[string]float64 `json:"factors"`
	Stress              map[string]float64 `json:"stress"`
	Overstressed        bool               `json:"overstressed"`
	Reason              string             `json:"reason,omitempty"`
	CalculatedAt        string             `json:"calculated_at,omitempty"`
}

// HardwareListResponse represents the hardware tree of a revision
type HardwareListResponse struct {
	Hardware []HardwareResponse `json:"hardware"`
	Total    int64              `json:"total"`
}

// PartFailure names a part that could not be calculated
type PartFailure struct {
	ID     uuid.UUID `json:"id"`
	RefDes string    `json:"ref_des"`
	Error  string    `json:"error"`
}

// RevisionCalculationResponse represents the result of calculating a whole revision
type RevisionCalculationResponse struct {
	RevisionID          uuid.UUID          `json:"revision_id"`
	MissionTime         float64            `json:"mission_time"`
	HazardRateActive    float64            `json:"hazard_rate_active"`
	HazardRateDormant   float64            `json:"hazard_rate_dormant"`
	HazardRateLogistics float64            `json:"hazard_rate_logistics"`
	MTBF                float64            `json:"mtbf"`
	Reliability         float64            `json:"reliability"`
	PartCount           int                `json:"part_count"`
	Overstressed        int                `json:"overstressed"`
	Failures            []PartFailure      `json:"failures"`
	Hardware            []HardwareResponse `json:"hardware"`
}

// Create adds a part or assembly to a revision
func (s *HardwareService) Create(revisionID uuid.UUID, req *CreateHardwareRequest) (*HardwareResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	if _, err := s.revisionRepo.GetByID(revisionID); err != nil {
		return nil, notFound(err, apperrors.ErrRevisionNotFound, "get revision")
	}

	existing, err := s.hardwareRepo.GetByRefDes(revisionID, req.RefDes)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing hardware: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrHardwareExists
	}

	title := req.Title
	if title == "" {
		title = req.RefDes
	}
	hw := &models.Hardware{
		BaseModel: models.BaseModel{
			Name:        req.RefDes,
			Title:       title,
			Description: req.Description,
			CreatedBy:   req.CreatedBy,
			UpdatedBy:   req.CreatedBy,
		},
		RevisionID:          revisionID,
		ParentID:            req.ParentID,
		RefDes:              req.RefDes,
		Category:            req.Category,
		Subcategory:         req.Subcategory,
		Quantity:            req.Quantity,
		Environment:         req.Environment,
		Quality:             req.Quality,
		Method:              req.Method,
		HazardRateType:      req.HazardRateType,
		SpecifiedHazardRate: req.SpecifiedHazardRate,
		SpecifiedMTBF:       req.SpecifiedMTBF,
		MultAdjFactor:       1,
		AddAdjFactor:        req.AddAdjFactor,
		AmbientTemp:         30,
		Attributes:          toJSON(req.Attributes),
		Options:             toJSON(req.Options),
	}
	if hw.Quantity == 0 {
		hw.Quantity = 1
	}
	if req.MultAdjFactor != nil {
		hw.MultAdjFactor = *req.MultAdjFactor
	}
	if req.AmbientTemp != nil {
		hw.AmbientTemp = *req.AmbientTemp
	}
	if err := s.normalize(hw); err != nil {
		return nil, err
	}
	if hw.ParentID != nil {
		if err := s.checkParent(hw, *hw.ParentID); err != nil {
			return nil, err
		}
	}

	if err := s.hardwareRepo.Create(hw); err != nil {
		return nil, fmt.Errorf("failed to create hardware: %w", err)
	}
	return s.toResponse(hw), nil
}

// GetByID retrieves a hardware item by ID
func (s *HardwareService) GetByID(id uuid.UUID) (*HardwareResponse, error) {
	hw, err := s.hardwareRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrHardwareNotFound, "get hardware")
	}
	return s.toResponse(hw), nil
}

// GetByRevision retrieves every hardware item of a revision
func (s *HardwareService) GetByRevision(revisionID uuid.UUID) (*HardwareListResponse, error) {
	if _, err := s.revisionRepo.GetByID(revisionID); err != nil {
		return nil, notFound(err, apperrors.ErrRevisionNotFound, "get revision")
	}
	items, err := s.hardwareRepo.GetByRevisionID(revisionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get hardware: %w", err)
	}
	return &HardwareListResponse{
		Hardware: s.toResponses(items),
		Total:    int64(len(items)),
	}, nil
}

// Update modifies the inputs of a hardware item. Results are left as they
// are until the next calculation.
func (s *HardwareService) Update(id uuid.UUID, req *UpdateHardwareRequest) (*HardwareResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	hw, err := s.hardwareRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrHardwareNotFound, "get hardware")
	}

	if req.Title != nil {
		hw.Title = *req.Title
	}
	if req.Description != nil {
		hw.Description = *req.Description
	}
	if req.Category != nil {
		if hw.IsAssembly() && *req.Category != models.CategoryAssembly {
			children, err := s.hardwareRepo.GetChildren(hw.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to get children: %w", err)
			}
			if len(children) > 0 {
				return nil, fmt.Errorf("%w: %s has children", apperrors.ErrParentNotAssembly, hw.RefDes)
			}
		}
		hw.Category = *req.Category
	}
	if req.Subcategory != nil {
		hw.Subcategory = *req.Subcategory
	}
	if req.Quantity != nil {
		hw.Quantity = *req.Quantity
	}
	if req.Environment != nil {
		hw.Environment = *req.Environment
	}
	if req.Quality != nil {
		hw.Quality = *req.Quality
	}
	if req.Method != nil {
		hw.Method = *req.Method
	}
	if req.HazardRateType != nil {
		hw.HazardRateType = *req.HazardRateType
	}
	if req.SpecifiedHazardRate != nil {
		hw.SpecifiedHazardRate = *req.SpecifiedHazardRate
	}
	if req.SpecifiedMTBF != nil {
		hw.SpecifiedMTBF = *req.SpecifiedMTBF
	}
	if req.MultAdjFactor != nil {
		hw.MultAdjFactor = *req.MultAdjFactor
	}
	if req.AddAdjFactor != nil {
		hw.AddAdjFactor = *req.AddAdjFactor
	}
	if req.AmbientTemp != nil {
		hw.AmbientTemp = *req.AmbientTemp
	}
	if req.Attributes != nil {
		hw.Attributes = toJSON(req.Attributes)
	}
	if req.Options != nil {
		hw.Options = toJSON(req.Options)
	}
	hw.UpdatedBy = req.UpdatedBy

	switch {
	case req.DetachParent:
		hw.ParentID = nil
	case req.ParentID != nil:
		if err := s.checkParent(hw, *req.ParentID); err != nil {
			return nil, err
		}
		hw.ParentID = req.ParentID
	}

	if err := s.normalize(hw); err != nil {
		return nil, err
	}
	if err := s.hardwareRepo.Update(hw); err != nil {
		return nil, fmt.Errorf("failed to update hardware: %w", err)
	}
	return s.toResponse(hw), nil
}

// Delete removes a hardware item. Its children become top-level items.
func (s *HardwareService) Delete(id uuid.UUID) error {
	if _, err := s.hardwareRepo.GetByID(id); err != nil {
		return notFound(err, apperrors.ErrHardwareNotFound, "get hardware")
	}
	if err := s.hardwareRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete hardware: %w", err)
	}
	return nil
}

// Calculate evaluates one part and stores its results. Calculating an
// assembly recalculates the whole revision so its children are current.
func (s *HardwareService) Calculate(ctx context.Context, id uuid.UUID) (*HardwareResponse, error) {
	hw, err := s.hardwareRepo.GetByID(id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrHardwareNotFound, "get hardware")
	}

	if hw.IsAssembly() {
		result, err := s.CalculateRevision(ctx, hw.RevisionID)
		if err != nil {
			return nil, err
		}
		for i := range result.Hardware {
			if result.Hardware[i].ID == hw.ID {
				return &result.Hardware[i], nil
			}
		}
		return nil, apperrors.ErrHardwareNotFound
	}

	revision, err := s.revisionRepo.GetByID(hw.RevisionID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrRevisionNotFound, "get revision")
	}

	start := time.Now()
	outcome, err := evaluatePart(specOf(hw), s.multiplier)
	observe(metrics.KindPrediction, start, err)
	if err != nil {
		logger.WithContext(ctx).WithField("ref_des", hw.RefDes).WithError(err).Warn("Part calculation failed")
		return nil, err
	}

	now := time.Now()
	s.applyOutcome(hw, outcome, revision.MissionTime, now)
	if hw.Overstressed {
		metrics.RecordOverstressed(1)
	}
	if err := s.hardwareRepo.SaveResults([]models.Hardware{*hw}); err != nil {
		return nil, fmt.Errorf("failed to save results: %w", err)
	}
	return s.toResponse(hw), nil
}

// CalculateRevision evaluates every part of a revision, rolls the results up
// through the assemblies and stores the revision totals. A part that fails
// to evaluate is reported and contributes nothing; tree errors abort.
func (s *HardwareService) CalculateRevision(ctx context.Context, revisionID uuid.UUID) (*RevisionCalculationResponse, error) {
	revision, err := s.revisionRepo.GetByID(revisionID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrRevisionNotFound, "get revision")
	}
	items, err := s.hardwareRepo.GetByRevisionID(revisionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get hardware: %w", err)
	}

	log := logger.WithContext(ctx).WithField("revision_id", revisionID)
	start := time.Now()
	now := start

	resp := &RevisionCalculationResponse{
		RevisionID:  revisionID,
		MissionTime: revision.MissionTime,
		Failures:    []PartFailure{},
	}

	active := make([]*prediction.Node, len(items))
	dormant := make([]*prediction.Node, len(items))
	for i := range items {
		hw := &items[i]
		parent := ""
		if hw.ParentID != nil {
			parent = hw.ParentID.String()
		}
		active[i] = &prediction.Node{ID: hw.ID.String(), ParentID: parent, Assembly: hw.IsAssembly(), Quantity: hw.Quantity}
		dormant[i] = &prediction.Node{ID: hw.ID.String(), ParentID: parent, Assembly: hw.IsAssembly(), Quantity: hw.Quantity}
		if hw.IsAssembly() {
			continue
		}

		outcome, err := evaluatePart(specOf(hw), s.multiplier)
		if err != nil {
			log.WithField("ref_des", hw.RefDes).WithError(err).Warn("Part calculation failed")
			resp.Failures = append(resp.Failures, PartFailure{ID: hw.ID, RefDes: hw.RefDes, Error: err.Error()})
			s.applyOutcome(hw, &partOutcome{}, revision.MissionTime, now)
			hw.Reason = err.Error()
			continue
		}
		s.applyOutcome(hw, outcome, revision.MissionTime, now)
		if hw.Overstressed {
			resp.Overstressed++
		}
		active[i].HazardRate = outcome.Active
		dormant[i].HazardRate = outcome.Dormant
	}

	summaries, err := prediction.Rollup(active, revision.MissionTime, s.multiplier)
	if err == nil {
		_, err = prediction.Rollup(dormant, revision.MissionTime, s.multiplier)
	}
	observe(metrics.KindRollup, start, err)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*models.Hardware, len(items))
	for i := range items {
		byID[items[i].ID] = &items[i]
	}
	for i := range items {
		if !items[i].IsAssembly() {
			resp.PartCount += installedQuantity(&items[i], byID)
		}
	}

	percent := make(map[string]float64)
	for _, sum := range summaries {
		for _, c := range sum.Contributions {
			percent[c.ID] = c.Percent
		}
	}

	for i := range items {
		hw := &items[i]
		if hw.IsAssembly() {
			s.applyOutcome(hw, &partOutcome{Active: active[i].HazardRate, Dormant: dormant[i].HazardRate}, revision.MissionTime, now)
			hw.Model = "sum of children"
		}
		hw.PercentOfParent = percent[hw.ID.String()]
		if hw.ParentID == nil {
			q := quantityOf(hw.Quantity)
			resp.HazardRateActive += active[i].HazardRate * q
			resp.HazardRateDormant += dormant[i].HazardRate * q
			resp.HazardRateLogistics += hw.HazardRateLogistics
		}
	}
	resp.MTBF = prediction.MTBF(resp.HazardRateActive, s.multiplier)
	resp.Reliability = prediction.Reliability(resp.HazardRateActive, revision.MissionTime, s.multiplier)

	if err := s.hardwareRepo.SaveResults(items); err != nil {
		return nil, fmt.Errorf("failed to save results: %w", err)
	}

	revision.HazardRateActive = resp.HazardRateActive
	revision.HazardRateDormant = resp.HazardRateDormant
	revision.HazardRateLogistics = resp.HazardRateLogistics
	revision.MTBF = resp.MTBF
	revision.Reliability = resp.Reliability
	revision.PartCount = resp.PartCount
	revision.CalculatedAt = &now
	if err := s.revisionRepo.Update(revision); err != nil {
		return nil, fmt.Errorf("failed to update revision: %w", err)
	}

	metrics.RecordOverstressed(resp.Overstressed)
	log.WithFields(map[string]interface{}{
		"hazard_rate": resp.HazardRateActive,
		"parts":       resp.PartCount,
		"failures":    len(resp.Failures),
	}).Info("Revision calculated")

	resp.Hardware = s.toResponses(items)
	return resp, nil
}

// normalize canonicalizes the enumerated inputs and rejects unknown values.
// installedQuantity is the part's quantity times the quantities of every
// enclosing assembly. Rollup has already rejected cycles.
func installedQuantity(hw *models.Hardware, byID map[uuid.UUID]*models.Hardware) int {
	n := int(quantityOf(hw.Quantity))
	for parentID := hw.ParentID; parentID != nil; {
		parent, ok := byID[*parentID]
		if !ok {
			break
		}
		n *= int(quantityOf(parent.Quantity))
		parentID = parent.ParentID
	}
	return n
}

func (s *HardwareService) normalize(hw *models.Hardware) error {
	if hw.Category != models.CategoryAssembly && !knownCategory(prediction.Category(hw.Category)) {
		return fmt.Errorf("%w: %q", apperrors.ErrUnknownCategory, hw.Category)
	}
	if hw.Environment == "" {
		hw.Environment = string(prediction.EnvGroundBenign)
	}
	env, err := prediction.ParseEnvironment(hw.Environment)
	if err != nil {
		return err
	}
	hw.Environment = string(env)
	if hw.Method == "" {
		hw.Method = string(prediction.PartsCount)
	}
	if hw.HazardRateType == "" {
		hw.HazardRateType = string(prediction.Assessed)
	}
	if prediction.HazardRateType(hw.HazardRateType) == prediction.SpecifiedMTBF && hw.SpecifiedMTBF <= 0 {
		return apperrors.NewValidationError("specified_mtbf", "must be greater than zero")
	}
	return nil
}

// checkParent verifies that parentID is an assembly of the same revision and
// that attaching hw below it keeps the tree acyclic.
func (s *HardwareService) checkParent(hw *models.Hardware, parentID uuid.UUID) error {
	if parentID == hw.ID {
		return fmt.Errorf("%w: %s", apperrors.ErrAssemblyCycle, hw.RefDes)
	}
	parent, err := s.hardwareRepo.GetByID(parentID)
	if err != nil {
		return notFound(err, apperrors.ErrParentHardwareNotFound, "get parent hardware")
	}
	if parent.RevisionID != hw.RevisionID {
		return apperrors.ErrParentHardwareNotFound
	}
	if !parent.IsAssembly() {
		return fmt.Errorf("%w: %s", apperrors.ErrParentNotAssembly, parent.RefDes)
	}

	if hw.ID == uuid.Nil {
		return nil
	}
	for ancestor := parent.ParentID; ancestor != nil; {
		if *ancestor == hw.ID {
			return fmt.Errorf("%w: %s", apperrors.ErrAssemblyCycle, hw.RefDes)
		}
		next, err := s.hardwareRepo.GetByID(*ancestor)
		if err != nil {
			return notFound(err, apperrors.ErrParentHardwareNotFound, "get parent hardware")
		}
		ancestor = next.ParentID
	}
	return nil
}

func (s *HardwareService) applyOutcome(hw *models.Hardware, o *partOutcome, missionTime float64, at time.Time) {
	hw.HazardRateActive = o.Active
	hw.HazardRateDormant = o.Dormant
	hw.HazardRateLogistics = o.Active * quantityOf(hw.Quantity)
	hw.MTBF = prediction.MTBF(o.Active, s.multiplier)
	hw.Reliability = prediction.Reliability(o.Active, missionTime, s.multiplier)
	hw.Model = ""
	hw.Factors = nil
	hw.Stress = nil
	hw.Overstressed = false
	hw.Reason = ""
	hw.CalculatedAt = &at
	if o.Result != nil {
		hw.Model = o.Result.Model
		hw.Factors = toJSON(o.Result.Factors)
		hw.Stress = toJSON(o.Result.Stress)
		hw.Overstressed = o.Result.Overstressed
		hw.Reason = strings.Join(o.Result.Reasons, "; ")
	}
}

func (s *HardwareService) toResponses(items []models.Hardware) []HardwareResponse {
	out := make([]HardwareResponse, len(items))
	for i := range items {
		out[i] = *s.toResponse(&items[i])
	}
	return out
}

func (s *HardwareService) toResponse(hw *models.Hardware) *HardwareResponse {
	return &HardwareResponse{
		ID:                  hw.ID,
		RevisionID:          hw.RevisionID,
		ParentID:            hw.ParentID,
		RefDes:              hw.RefDes,
		Title:               hw.Title,
		Description:         hw.Description,
		Category:            hw.Category,
		Subcategory:         hw.Subcategory,
		Quantity:            hw.Quantity,
		Environment:         hw.Environment,
		Quality:             hw.Quality,
		Method:              hw.Method,
		HazardRateType:      hw.HazardRateType,
		SpecifiedHazardRate: hw.SpecifiedHazardRate,
		SpecifiedMTBF:       hw.SpecifiedMTBF,
		MultAdjFactor:       hw.MultAdjFactor,
		AddAdjFactor:        hw.AddAdjFactor,
		AmbientTemp:         hw.AmbientTemp,
		Attributes:          floatMap(hw.Attributes),
		Options:             stringMap(hw.Options),
		HazardRateActive:    hw.HazardRateActive,
		HazardRateDormant:   hw.HazardRateDormant,
		HazardRateLogistics: hw.HazardRateLogistics,
		MTBF:                hw.MTBF,
		Reliability:         hw.Reliability,
		PercentOfParent:     hw.PercentOfParent,
		Model:               hw.Model,
		Factors:             floatMap(hw.Factors),
		Stress:              floatMap(hw.Stress),
		Overstressed:        hw.Overstressed,
		Reason:              hw.Reason,
		CalculatedAt:        formatTime(hw.CalculatedAt),
	}
}

// specOf builds the engine input of a stored part.
func specOf(hw *models.Hardware) partSpec {
	return partSpec{
		Input: prediction.Input{
			Category:    prediction.Category(hw.Category),
			Subcategory: hw.Subcategory,
			Environment: prediction.Environment(hw.Environment),
			Quality:     hw.Quality,
			Method:      prediction.Method(hw.Method),
			Quantity:    hw.Quantity,
			AmbientTemp: hw.AmbientTemp,
			Attributes:  floatMap(hw.Attributes),
			Options:     stringMap(hw.Options),
		},
		Adjustment: prediction.Adjustment{
			Type:                prediction.HazardRateType(hw.HazardRateType),
			SpecifiedHazardRate: hw.SpecifiedHazardRate,
			SpecifiedMTBF:       hw.SpecifiedMTBF,
			MultAdjFactor:       hw.MultAdjFactor,
			AddAdjFactor:        hw.AddAdjFactor,
		},
	}
}

func knownCategory(c prediction.Category) bool {
	for _, known := range registry.Categories() {
		if known == c {
			return true
		}
	}
	return false
}
