package dto

// LogTimeCreateRequest is the payload for POST /logtimes. Date is a
// "2006-01-02" string.
type LogTimeCreateRequest struct {
	EmpID        int64   `json:"EmpId"`
	TaskID       int64   `json:"TaskId"`
	Date         string  `json:"Date"`
	CompanyID    int64   `json:"CompanyId"`
	Description  *string `json:"Description"`
	MinutesSpent *int    `json:"MinutesSpent"`
	HoursSpent   *int    `json:"HoursSpent"`
	CreatedBy    int64   `json:"CreatedBy"`
}

// LogTimeUpdateRequest is the payload for PUT /logtimes/{log_id}.
type LogTimeUpdateRequest struct {
	EmpID        *int64  `json:"EmpId"`
	TaskID       *int64  `json:"TaskId"`
	Date         *string `json:"Date"`
	UpdatedBy    int64   `json:"UpdatedBy"`
	Description  *string `json:"Description"`
	MinutesSpent *int    `json:"MinutesSpent"`
	HoursSpent   *int    `json:"HoursSpent"`
}

// LogTimeResponse is the wire form of a work log.
type LogTimeResponse struct {
	LogID        int64   `json:"LogId"`
	EmpID        int64   `json:"EmpId"`
	TaskID       int64   `json:"TaskId"`
	Date         string  `json:"Date"`
	CompanyID    int64   `json:"CompanyId"`
	Description  *string `json:"Description"`
	MinutesSpent *int    `json:"MinutesSpent"`
	HoursSpent   *int    `json:"HoursSpent"`
	CreatedOn    *string `json:"CreatedOn"`
	CreatedBy    int64   `json:"CreatedBy"`
	UpdatedOn    *string `json:"UpdatedOn"`
	UpdatedBy    *int64  `json:"UpdatedBy"`
	IsActive     bool    `json:"IsActive"`
	DeletedOn    *string `json:"DeletedOn"`
	DeletedBy    *int64  `json:"DeletedBy"`
}

// LogTimePageRequest is the payload for POST /logtimesPaginated.
type LogTimePageRequest struct {
	Page         int    `json:"page"`
	PageLimit    int    `json:"PageLimit"`
	EmployeeName string `json:"employee_name"`
	TaskTitle    string `json:"task_title"`
}

// LogTimePage is one window of work logs.
type LogTimePage struct {
	Data       []LogTimeResponse `json:"data"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageLimit  int               `json:"PageLimit"`
	TotalPages int64             `json:"total_pages"`
}
