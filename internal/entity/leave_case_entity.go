package entity

const (
	LeaveTypeAnnual    = "annual"
	LeaveStatusCreated = "created"
)

// LeaveCase is a structured record of a requested absence, derived from
// free-text chat input. Cases are appended once and never mutated.
type LeaveCase struct {
	Id         string `json:"id"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Days       int    `json:"days"`
	Type       string `json:"type"`
	Note       string `json:"note"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
	EmployeeId string `json:"employeeId"`
}
