package dto

// ProjectEmployeeCreateRequest is the payload for POST /project-employees.
type ProjectEmployeeCreateRequest struct {
	EmpID         int64 `json:"EmpId"`
	ProjectID     int64 `json:"ProjectId"`
	CompanyID     int64 `json:"CompanyId"`
	ProjectRoleID int64 `json:"ProjectRoleId"`
	CreatedBy     int64 `json:"CreatedBy"`
}

// ProjectEmployeeUpdateRequest is the payload for PUT /project-employees/{id}.
type ProjectEmployeeUpdateRequest struct {
	EmpID         *int64 `json:"EmpId"`
	ProjectID     *int64 `json:"ProjectId"`
	CompanyID     *int64 `json:"CompanyId"`
	ProjectRoleID *int64 `json:"ProjectRoleId"`
	UpdatedBy     int64  `json:"UpdatedBy"`
}

// ProjectEmployeeResponse is the wire form of a project assignment.
type ProjectEmployeeResponse struct {
	ProjectEmployeeID int64   `json:"ProjectEmployeeId"`
	EmpID             int64   `json:"EmpId"`
	ProjectID         int64   `json:"ProjectId"`
	CompanyID         int64   `json:"CompanyId"`
	ProjectRoleID     int64   `json:"ProjectRoleId"`
	CreatedOn         *string `json:"CreatedOn"`
	CreatedBy         int64   `json:"CreatedBy"`
	UpdatedOn         *string `json:"UpdatedOn"`
	UpdatedBy         *int64  `json:"UpdatedBy"`
	IsActive          bool    `json:"IsActive"`
	DeletedOn         *string `json:"DeletedOn"`
	DeletedBy         *int64  `json:"DeletedBy"`
}
