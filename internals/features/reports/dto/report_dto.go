package dto

// ReportRequest selects a scope, a question set and a month window. Months
// may be listed explicitly; otherwise StartMonth..EndMonth is expanded
// inclusively.
type ReportRequest struct {
	Scope       string   `json:"scope" validate:"required,oneof=STATE RANGE DISTRICT MODULE TOPIC SUBTOPIC USER"`
	ScopeIDs    []uint   `json:"scopeIds"`
	UserIDs     []string `json:"userIds" validate:"omitempty,dive,uuid"`
	QuestionIDs []uint   `json:"questionIds" validate:"required,min=1"`
	Months      []string `json:"months"`
	StartMonth  string   `json:"startMonth"`
	EndMonth    string   `json:"endMonth"`
}

// ReportMatrix is the label (month) x dataset (scope entity) chart payload.
// Every dataset is zero-filled to the label axis.
type ReportMatrix struct {
	Labels   []string        `json:"labels"`
	Datasets []ReportDataset `json:"datasets"`
}

type ReportDataset struct {
	Name string    `json:"name"`
	Data []float64 `json:"data"`
}

type ModuleSummary struct {
	ModuleID   uint   `json:"module_id"`
	ModuleName string `json:"module_name"`
	InProgress int64  `json:"in_progress"`
	Success    int64  `json:"success"`
}
