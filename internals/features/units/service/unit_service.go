// file: internals/features/units/service/unit_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	unitModel "selfassessment_backend/internals/features/units/model"
	helper "selfassessment_backend/internals/helpers"
)

type UnitService struct {
	DB *gorm.DB
}

func NewUnitService(db *gorm.DB) *UnitService {
	return &UnitService{DB: db}
}

func (s *UnitService) GetUnitByID(ctx context.Context, unitID uuid.UUID) (*unitModel.AdministrativeUnitModel, error) {
	var unit unitModel.AdministrativeUnitModel
	if err := s.DB.WithContext(ctx).
		First(&unit, "unit_id = ?", unitID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, helper.NewNotFound("administrative unit")
		}
		return nil, err
	}
	return &unit, nil
}

// UnitIndex returns all units keyed by id, fresh from the store on every
// call. The ancestry walks in the access filter run against this snapshot.
func (s *UnitService) UnitIndex(ctx context.Context) (map[uuid.UUID]unitModel.AdministrativeUnitModel, error) {
	var all []unitModel.AdministrativeUnitModel
	if err := s.DB.WithContext(ctx).Find(&all).Error; err != nil {
		return nil, err
	}
	return BuildUnitIndex(all), nil
}

func BuildUnitIndex(units []unitModel.AdministrativeUnitModel) map[uuid.UUID]unitModel.AdministrativeUnitModel {
	idx := make(map[uuid.UUID]unitModel.AdministrativeUnitModel, len(units))
	for _, u := range units {
		idx[u.UnitID] = u
	}
	return idx
}

// IsWithinScope reports whether candidate equals scope or descends from it.
// The parent walk is capped so a corrupted hierarchy cannot loop forever.
func IsWithinScope(units map[uuid.UUID]unitModel.AdministrativeUnitModel, scopeUnitID, candidateUnitID uuid.UUID) bool {
	if scopeUnitID == uuid.Nil || candidateUnitID == uuid.Nil {
		return false
	}
	cur := candidateUnitID
	for depth := 0; depth < 32; depth++ {
		if cur == scopeUnitID {
			return true
		}
		u, ok := units[cur]
		if !ok || u.UnitParentID == nil {
			return false
		}
		cur = *u.UnitParentID
	}
	return false
}
