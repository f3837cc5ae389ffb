package dto

type ReportQueryDTO struct {
	StartDate  string `form:"start_date" binding:"required"`
	EndDate    string `form:"end_date" binding:"required"`
	ActionBy   *uint  `form:"action_by"`
	Categories string `form:"categories"`
	ReportType string `form:"report_type" binding:"omitempty,oneof=all pending in_progress completed"`
}
