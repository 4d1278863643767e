package dto

type StateCreateRequest struct {
	StateName     string `json:"state_name" validate:"required,min=2,max=100"`
	StatePriority int    `json:"state_priority" validate:"omitempty,min=1"`
}

type StateUpdateRequest struct {
	StateName     *string `json:"state_name" validate:"omitempty,min=2,max=100"`
	StatePriority *int    `json:"state_priority" validate:"omitempty,min=1"`
	StateIsActive *bool   `json:"state_is_active"`
}

type RangeCreateRequest struct {
	RangeStateID  uint   `json:"range_state_id" validate:"required"`
	RangeName     string `json:"range_name" validate:"required,min=2,max=100"`
	RangePriority int    `json:"range_priority" validate:"omitempty,min=1"`
}

type RangeUpdateRequest struct {
	RangeName     *string `json:"range_name" validate:"omitempty,min=2,max=100"`
	RangePriority *int    `json:"range_priority" validate:"omitempty,min=1"`
	RangeIsActive *bool   `json:"range_is_active"`
}

type DistrictCreateRequest struct {
	DistrictRangeID          uint   `json:"district_range_id" validate:"required"`
	DistrictName             string `json:"district_name" validate:"required,min=2,max=100"`
	DistrictPriority         int    `json:"district_priority" validate:"omitempty,min=1"`
	DistrictPSCount          int    `json:"district_ps_count" validate:"omitempty,min=0"`
	DistrictSubdivisionCount int    `json:"district_subdivision_count" validate:"omitempty,min=0"`
	DistrictCircleCount      int    `json:"district_circle_count" validate:"omitempty,min=0"`
	DistrictPSOPCount        int    `json:"district_psop_count" validate:"omitempty,min=0"`
}

type DistrictUpdateRequest struct {
	DistrictName             *string `json:"district_name" validate:"omitempty,min=2,max=100"`
	DistrictPriority         *int    `json:"district_priority" validate:"omitempty,min=1"`
	DistrictPSCount          *int    `json:"district_ps_count" validate:"omitempty,min=0"`
	DistrictSubdivisionCount *int    `json:"district_subdivision_count" validate:"omitempty,min=0"`
	DistrictCircleCount      *int    `json:"district_circle_count" validate:"omitempty,min=0"`
	DistrictPSOPCount        *int    `json:"district_psop_count" validate:"omitempty,min=0"`
	DistrictIsActive         *bool   `json:"district_is_active"`
}
