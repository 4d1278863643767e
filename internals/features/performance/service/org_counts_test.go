package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orgModel "polstat_backend/internals/features/organization/model"
)

func TestDistrictCountProvider(t *testing.T) {
	db := newTestDB(t)
	district := orgModel.District{
		DistrictRangeID:          2,
		DistrictStateID:          1,
		DistrictName:             "Alpha District",
		DistrictPSCount:          12,
		DistrictSubdivisionCount: 3,
		DistrictCircleCount:      5,
		DistrictPSOPCount:        7,
		DistrictIsActive:         true,
	}
	require.NoError(t, db.Create(&district).Error)

	user := seedUser(t, db)
	require.NoError(t, db.Model(&user).Update("user_district_id", district.DistrictID).Error)

	provider := DistrictCountProvider{DB: db}
	counts, err := provider.Counts(context.Background(), user.UserID)
	require.NoError(t, err)
	assert.Equal(t, OrgCounts{PoliceStations: 12, Subdivisions: 3, Circles: 5, Outposts: 7}, counts)
}

func TestDistrictCountProviderNoDistrict(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db)
	require.NoError(t, db.Model(&user).Update("user_district_id", 0).Error)

	provider := DistrictCountProvider{DB: db}
	counts, err := provider.Counts(context.Background(), user.UserID)
	require.NoError(t, err)
	assert.Equal(t, OrgCounts{}, counts)
}

func TestDistrictCountProviderUnknownUser(t *testing.T) {
	db := newTestDB(t)
	provider := DistrictCountProvider{DB: db}
	_, err := provider.Counts(context.Background(), uuid.New())
	assert.Error(t, err)
}
