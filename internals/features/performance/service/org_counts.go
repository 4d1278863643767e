package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	orgModel "polstat_backend/internals/features/organization/model"
	userModel "polstat_backend/internals/features/users/model"
)

// OrgCounts are the organizational unit counts used as fixed form defaults
// (PS / SUB / CIRCLE / PSOP default sources).
type OrgCounts struct {
	PoliceStations int
	Subdivisions   int
	Circles        int
	Outposts       int
}

// OrgCountProvider resolves the counts for a user. The production provider
// reads them off the user's district row; tests inject a fixed one.
type OrgCountProvider interface {
	Counts(ctx context.Context, userID uuid.UUID) (OrgCounts, error)
}

type DistrictCountProvider struct {
	DB *gorm.DB
}

// Counts falls back to zeroes when the user has no district, matching the
// behavior units without a mapped district always had.
func (p DistrictCountProvider) Counts(ctx context.Context, userID uuid.UUID) (OrgCounts, error) {
	var user userModel.User
	if err := p.DB.WithContext(ctx).Take(&user, "user_id = ?", userID).Error; err != nil {
		return OrgCounts{}, err
	}
	if user.UserDistrictID == 0 {
		return OrgCounts{}, nil
	}

	var district orgModel.District
	if err := p.DB.WithContext(ctx).Take(&district, "district_id = ?", user.UserDistrictID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrgCounts{}, nil
		}
		return OrgCounts{}, err
	}
	return OrgCounts{
		PoliceStations: district.DistrictPSCount,
		Subdivisions:   district.DistrictSubdivisionCount,
		Circles:        district.DistrictCircleCount,
		Outposts:       district.DistrictPSOPCount,
	}, nil
}
