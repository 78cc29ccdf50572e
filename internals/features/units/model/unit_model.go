// file: internals/features/units/model/unit_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Unit types used by the unit-type → indicator-type mapping and the access
// filter. The hierarchy itself is owned by the administrative-unit service;
// this is the read side the workflow consumes.
const (
	UnitTypeFederalInstitute   = "federal_institute"
	UnitTypeCityAdministration = "city_administration"
	UnitTypeRegion             = "region"
	UnitTypeSubCity            = "sub_city"
	UnitTypeWoreda             = "woreda"
)

type AdministrativeUnitModel struct {
	UnitID       uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:unit_id" json:"unit_id"`
	UnitName     string     `gorm:"type:varchar(160);not null;column:unit_name" json:"unit_name"`
	UnitType     string     `gorm:"type:varchar(32);not null;column:unit_type" json:"unit_type"`
	UnitParentID *uuid.UUID `gorm:"type:uuid;index;column:unit_parent_id" json:"unit_parent_id,omitempty"`

	UnitCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:unit_created_at" json:"unit_created_at"`
	UnitUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:unit_updated_at" json:"unit_updated_at"`
}

func (AdministrativeUnitModel) TableName() string { return "administrative_units" }
