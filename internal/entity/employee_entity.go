package entity

// Employee is the single current employee record. It is replaced wholesale
// by the demo seed endpoint; no history is kept.
type Employee struct {
	Name               string `json:"name"`
	Position           string `json:"position"`
	Department         string `json:"department"`
	RemainingLeaveDays int    `json:"remainingLeaveDays"`
	TotalLeaveDays     int    `json:"totalLeaveDays"`
	HireDate           string `json:"hireDate"`
	EmployeeId         string `json:"employeeId"`
}
