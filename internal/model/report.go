package model

// ReportFilter scopes a report to one calendar month, optionally narrowed
// to a single camera zone and/or PPE type. Zone matching is exact and
// case-sensitive against the persisted value; type matching is
// case-insensitive against the PPEType enumeration.
type ReportFilter struct {
	Year          int    `json:"year"`
	Month         int    `json:"month"`
	CameraZone    string `json:"camera_zone,omitempty"`
	ViolationType string `json:"violation_type,omitempty"`
}

type ViolationTypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type WorkerViolationReport struct {
	WorkerID        int                  `json:"worker_id"`
	WorkerName      string               `json:"worker_name"`
	EmployeeID      string               `json:"employee_id"`
	TotalViolations int                  `json:"total_violations"`
	Breakdown       []ViolationTypeCount `json:"breakdown"`
}

type MonthlySummary struct {
	Month           string               `json:"month"`
	TotalViolations int                  `json:"total_violations"`
	Breakdown       []ViolationTypeCount `json:"breakdown"`
}
