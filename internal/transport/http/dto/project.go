package dto

// ProjectCreateRequest is the payload for POST /projects. Dates are
// "2006-01-02" strings.
type ProjectCreateRequest struct {
	Name           string  `json:"Name"`
	StartDate      string  `json:"StartDate"`
	EndDate        string  `json:"EndDate"`
	ProjectManager int64   `json:"ProjectManager"`
	Priority       string  `json:"Priority"`
	Status         string  `json:"Status"`
	CompanyID      int64   `json:"CompanyId"`
	Description    *string `json:"Description"`
	CreatedBy      int64   `json:"CreatedBy"`
}

// ProjectUpdateRequest is the payload for PUT /projects/{project_id}.
type ProjectUpdateRequest struct {
	Name           *string `json:"Name"`
	StartDate      *string `json:"StartDate"`
	EndDate        *string `json:"EndDate"`
	ProjectManager *int64  `json:"ProjectManager"`
	Priority       *string `json:"Priority"`
	Status         *string `json:"Status"`
	UpdatedBy      int64   `json:"UpdatedBy"`
	Description    *string `json:"Description"`
	IsActive       *bool   `json:"IsActive"`
}

// ProjectResponse is the wire form of a project.
type ProjectResponse struct {
	ProjectID      int64   `json:"ProjectId"`
	Name           string  `json:"Name"`
	StartDate      string  `json:"StartDate"`
	EndDate        string  `json:"EndDate"`
	ProjectManager int64   `json:"ProjectManager"`
	Priority       string  `json:"Priority"`
	Status         string  `json:"Status"`
	CompanyID      int64   `json:"CompanyId"`
	Description    *string `json:"Description"`
	IsActive       bool    `json:"IsActive"`
	CreatedBy      int64   `json:"CreatedBy"`
	UpdatedBy      *int64  `json:"UpdatedBy"`
	DeletedBy      *int64  `json:"DeletedBy"`
	CreatedOn      string  `json:"CreatedOn"`
	UpdatedOn      *string `json:"UpdatedOn"`
	DeletedOn      *string `json:"DeletedOn"`
}

// ProjectPageRequest is the payload for POST /projects/paginated.
type ProjectPageRequest struct {
	Page           int    `json:"page"`
	PageLimit      int    `json:"PageLimit"`
	Name           string `json:"name"`
	Status         string `json:"status"`
	Priority       string `json:"priority"`
	ProjectManager *int64 `json:"project_manager"`
}

// ProjectPage is one window of projects.
type ProjectPage struct {
	Data       []ProjectResponse `json:"data"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageLimit  int               `json:"PageLimit"`
	TotalPages int64             `json:"total_pages"`
}
