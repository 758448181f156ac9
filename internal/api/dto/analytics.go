package dto

import "github.com/shopspring/decimal"

// Analytics is the dashboard summary across every module
type Analytics struct {
	Headcount             int             `json:"headcount"`
	EmployeesByStatus     map[string]int  `json:"employees_by_status"`
	EmployeesByDepartment map[string]int  `json:"employees_by_department"`
	JobsByStatus          map[string]int  `json:"jobs_by_status"`
	ApplicationsByStage   map[string]int  `json:"applications_by_stage"`
	LeaveByStatus         map[string]int  `json:"leave_by_status"`
	AssetsByStatus        map[string]int  `json:"assets_by_status"`
	ReviewCount           int             `json:"review_count"`
	AverageRating         decimal.Decimal `json:"average_rating"`
}
