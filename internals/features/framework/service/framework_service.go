// file: internals/features/framework/service/framework_service.go
package service

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	fwModel "selfassessment_backend/internals/features/framework/model"
	unitModel "selfassessment_backend/internals/features/units/model"
)

type FrameworkService struct {
	DB *gorm.DB
}

func NewFrameworkService(db *gorm.DB) *FrameworkService {
	return &FrameworkService{DB: db}
}

// ApplicableIndicatorType maps a unit type onto the indicator type whose
// questions the unit answers. Federal institutes and city administrations
// answer the regional framework, sub-cities answer the woreda framework,
// regions and woredas answer their own.
func ApplicableIndicatorType(unitType string) fwModel.IndicatorType {
	switch unitType {
	case unitModel.UnitTypeFederalInstitute, unitModel.UnitTypeCityAdministration, unitModel.UnitTypeRegion:
		return fwModel.IndicatorTypeRegion
	case unitModel.UnitTypeSubCity, unitModel.UnitTypeWoreda:
		return fwModel.IndicatorTypeWoreda
	default:
		return fwModel.IndicatorType(unitType)
	}
}

// FlattenTreeOrder orders sub-questions parent-then-children, depth first,
// siblings by display order. The framework nests at most 3 levels; deeper
// strays are cut off rather than recursed into forever.
func FlattenTreeOrder(items []fwModel.SubQuestionModel) []fwModel.SubQuestionModel {
	children := make(map[uuid.UUID][]fwModel.SubQuestionModel)
	var roots []fwModel.SubQuestionModel
	for _, it := range items {
		if it.SubQuestionParentID == nil {
			roots = append(roots, it)
		} else {
			children[*it.SubQuestionParentID] = append(children[*it.SubQuestionParentID], it)
		}
	}

	byOrder := func(s []fwModel.SubQuestionModel) {
		sort.SliceStable(s, func(i, j int) bool {
			return s[i].SubQuestionOrder < s[j].SubQuestionOrder
		})
	}
	byOrder(roots)
	for k := range children {
		byOrder(children[k])
	}

	out := make([]fwModel.SubQuestionModel, 0, len(items))
	var walk func(node fwModel.SubQuestionModel, depth int)
	walk = func(node fwModel.SubQuestionModel, depth int) {
		out = append(out, node)
		if depth >= 3 {
			return
		}
		for _, ch := range children[node.SubQuestionID] {
			walk(ch, depth+1)
		}
	}
	for _, r := range roots {
		walk(r, 1)
	}
	return out
}

func (s *FrameworkService) ListDimensions(ctx context.Context) ([]fwModel.DimensionModel, error) {
	var out []fwModel.DimensionModel
	err := s.DB.WithContext(ctx).
		Order("dimension_order ASC").
		Find(&out).Error
	return out, err
}

func (s *FrameworkService) ListIndicatorsByDimension(ctx context.Context, dimensionID uuid.UUID) ([]fwModel.IndicatorModel, error) {
	var out []fwModel.IndicatorModel
	err := s.DB.WithContext(ctx).
		Where("indicator_dimension_id = ?", dimensionID).
		Order("indicator_order ASC").
		Find(&out).Error
	return out, err
}

func (s *FrameworkService) GetSubQuestionsByIndicator(ctx context.Context, indicatorID uuid.UUID) ([]fwModel.SubQuestionModel, error) {
	var out []fwModel.SubQuestionModel
	err := s.DB.WithContext(ctx).
		Where("sub_question_indicator_id = ?", indicatorID).
		Order("sub_question_order ASC").
		Find(&out).Error
	return out, err
}

func (s *FrameworkService) GetSubQuestionsInTreeOrder(ctx context.Context, indicatorID uuid.UUID) ([]fwModel.SubQuestionModel, error) {
	items, err := s.GetSubQuestionsByIndicator(ctx, indicatorID)
	if err != nil {
		return nil, err
	}
	return FlattenTreeOrder(items), nil
}

// ApplicableSubQuestion is a sub-question joined with its dimension and
// indicator context, used by the completeness gate to name what is missing.
type ApplicableSubQuestion struct {
	SubQuestionID           uuid.UUID            `json:"sub_question_id"`
	SubQuestionText         string               `json:"sub_question_text"`
	SubQuestionResponseType fwModel.ResponseType `json:"sub_question_response_type"`
	IndicatorID             uuid.UUID            `json:"indicator_id"`
	IndicatorName           string               `json:"indicator_name"`
	DimensionName           string               `json:"dimension_name"`
}

// ApplicableSubQuestions resolves every sub-question a unit of the given type
// must answer, with dimension/indicator labels attached.
func (s *FrameworkService) ApplicableSubQuestions(ctx context.Context, unitType string) ([]ApplicableSubQuestion, error) {
	indicatorType := ApplicableIndicatorType(unitType)

	var out []ApplicableSubQuestion
	err := s.DB.WithContext(ctx).
		Table("assessment_sub_questions AS sq").
		Select(`sq.sub_question_id, sq.sub_question_text, sq.sub_question_response_type,
			i.indicator_id, i.indicator_name, d.dimension_name`).
		Joins("JOIN assessment_indicators i ON i.indicator_id = sq.sub_question_indicator_id").
		Joins("JOIN assessment_dimensions d ON d.dimension_id = i.indicator_dimension_id").
		Where("i.indicator_type = ?", indicatorType).
		Order("d.dimension_order ASC, i.indicator_order ASC, sq.sub_question_order ASC").
		Scan(&out).Error
	return out, err
}
