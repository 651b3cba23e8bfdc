package dto

// TaskCreateRequest is the payload for POST /tasks. ExptedHours keeps its
// historical misspelling; clients already send it.
type TaskCreateRequest struct {
	Name         string   `json:"Name"`
	ProjectID    int64    `json:"ProjectId"`
	AssignedTo   *int64   `json:"AssignedTo"`
	DocumentPath *string  `json:"DocumentPath"`
	DocumentURL  *string  `json:"DocumentUrl"`
	Deadline     *string  `json:"Deadline"`
	Priority     *string  `json:"Priority"`
	Status       *string  `json:"Status"`
	CreatedBy    int64    `json:"CreatedBy"`
	CompanyID    int64    `json:"CompanyId"`
	Description  *string  `json:"Description"`
	DocumentName *string  `json:"DocumentName"`
	ExptedHours  *float64 `json:"ExptedHours"`
}

// TaskUpdateRequest is the payload for PUT /tasks/{task_id}.
type TaskUpdateRequest struct {
	Name         *string  `json:"Name"`
	ProjectID    *int64   `json:"ProjectId"`
	AssignedTo   *int64   `json:"AssignedTo"`
	DocumentPath *string  `json:"DocumentPath"`
	DocumentURL  *string  `json:"DocumentUrl"`
	Deadline     *string  `json:"Deadline"`
	Priority     *string  `json:"Priority"`
	Status       *string  `json:"Status"`
	UpdatedBy    int64    `json:"UpdatedBy"`
	CompanyID    *int64   `json:"CompanyId"`
	Description  *string  `json:"Description"`
	DocumentName *string  `json:"DocumentName"`
	IsActive     *bool    `json:"IsActive"`
	ExptedHours  *float64 `json:"ExptedHours"`
}

// TaskResponse is the wire form of a task.
type TaskResponse struct {
	TaskID       int64    `json:"TaskId"`
	Name         string   `json:"Name"`
	ProjectID    int64    `json:"ProjectId"`
	AssignedTo   *int64   `json:"AssignedTo"`
	DocumentPath *string  `json:"DocumentPath"`
	DocumentURL  *string  `json:"DocumentUrl"`
	Deadline     *string  `json:"Deadline"`
	Priority     *string  `json:"Priority"`
	Status       *string  `json:"Status"`
	CreatedOn    string   `json:"CreatedOn"`
	CreatedBy    int64    `json:"CreatedBy"`
	UpdatedOn    *string  `json:"UpdatedOn"`
	UpdatedBy    *int64   `json:"UpdatedBy"`
	DeletedOn    *string  `json:"DeletedOn"`
	DeletedBy    *int64   `json:"DeletedBy"`
	CompanyID    int64    `json:"CompanyId"`
	Description  *string  `json:"Description"`
	DocumentName *string  `json:"DocumentName"`
	IsActive     bool     `json:"IsActive"`
	ExptedHours  *float64 `json:"ExptedHours"`
}

// TaskPageRequest is the payload for POST /tasks/paginated/filter.
type TaskPageRequest struct {
	Page        int    `json:"page"`
	PageLimit   int    `json:"PageLimit"`
	ProjectName string `json:"ProjectName"`
	AssignedTo  *int64 `json:"AssignedTo"`
	Priority    string `json:"Priority"`
	TaskName    string `json:"TaskName"`
	ManagerID   *int64 `json:"ManagerId"`
}

// TaskPage is one window of tasks.
type TaskPage struct {
	Data       []TaskResponse `json:"data"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageLimit  int            `json:"PageLimit"`
	TotalPages int64          `json:"total_pages"`
}
