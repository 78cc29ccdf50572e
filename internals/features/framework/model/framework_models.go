// file: internals/features/framework/model/framework_models.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Indicator types decide which part of the framework applies to a unit.
type IndicatorType string

const (
	IndicatorTypeRegion IndicatorType = "region"
	IndicatorTypeWoreda IndicatorType = "woreda"
)

// Response types. Subjective answers go through committee consensus scoring;
// choice answers are scored by the downstream rollup engine.
type ResponseType string

const (
	ResponseTypeChoice     ResponseType = "choice"
	ResponseTypeSubjective ResponseType = "subjective"
)

type DimensionModel struct {
	DimensionID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:dimension_id" json:"dimension_id"`
	DimensionName   string    `gorm:"type:varchar(160);not null;column:dimension_name" json:"dimension_name"`
	DimensionWeight float64   `gorm:"type:numeric(5,2);not null;default:0;column:dimension_weight" json:"dimension_weight"`
	DimensionOrder  int       `gorm:"type:smallint;not null;default:0;column:dimension_order" json:"dimension_order"`

	DimensionCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:dimension_created_at" json:"dimension_created_at"`
	DimensionUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:dimension_updated_at" json:"dimension_updated_at"`
}

func (DimensionModel) TableName() string { return "assessment_dimensions" }

type IndicatorModel struct {
	IndicatorID          uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:indicator_id" json:"indicator_id"`
	IndicatorDimensionID uuid.UUID     `gorm:"type:uuid;not null;index;column:indicator_dimension_id" json:"indicator_dimension_id"`
	IndicatorName        string        `gorm:"type:varchar(200);not null;column:indicator_name" json:"indicator_name"`
	IndicatorType        IndicatorType `gorm:"type:varchar(16);not null;column:indicator_type" json:"indicator_type"`
	IndicatorWeight      float64       `gorm:"type:numeric(5,2);not null;default:0;column:indicator_weight" json:"indicator_weight"`
	IndicatorOrder       int           `gorm:"type:smallint;not null;default:0;column:indicator_order" json:"indicator_order"`

	IndicatorCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:indicator_created_at" json:"indicator_created_at"`
	IndicatorUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:indicator_updated_at" json:"indicator_updated_at"`
}

func (IndicatorModel) TableName() string { return "assessment_indicators" }

// Sub-questions nest up to 3 levels via the parent pointer. Weight is the
// share among siblings, consumed by the downstream scoring engine.
type SubQuestionModel struct {
	SubQuestionID            uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:sub_question_id" json:"sub_question_id"`
	SubQuestionIndicatorID   uuid.UUID    `gorm:"type:uuid;not null;index;column:sub_question_indicator_id" json:"sub_question_indicator_id"`
	SubQuestionParentID      *uuid.UUID   `gorm:"type:uuid;column:sub_question_parent_id" json:"sub_question_parent_id,omitempty"`
	SubQuestionText          string       `gorm:"type:text;not null;column:sub_question_text" json:"sub_question_text"`
	SubQuestionResponseType  ResponseType `gorm:"type:varchar(16);not null;default:'choice';column:sub_question_response_type" json:"sub_question_response_type"`
	SubQuestionWeightPercent float64      `gorm:"type:numeric(5,2);not null;default:0;column:sub_question_weight_percent" json:"sub_question_weight_percent"`
	SubQuestionOrder         int          `gorm:"type:smallint;not null;default:0;column:sub_question_order" json:"sub_question_order"`

	SubQuestionCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:sub_question_created_at" json:"sub_question_created_at"`
	SubQuestionUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:sub_question_updated_at" json:"sub_question_updated_at"`
}

func (SubQuestionModel) TableName() string { return "assessment_sub_questions" }
