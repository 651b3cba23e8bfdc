package dto

// ProjectRoleCreateRequest is the payload for POST /project-roles.
type ProjectRoleCreateRequest struct {
	Role      string `json:"Role"`
	CompanyID int64  `json:"CompanyId"`
	CreatedBy int64  `json:"CreatedBy"`
}

// ProjectRoleUpdateRequest is the payload for PUT /project-roles/{id}.
type ProjectRoleUpdateRequest struct {
	Role      *string `json:"Role"`
	CompanyID *int64  `json:"CompanyId"`
	UpdatedBy int64   `json:"UpdatedBy"`
}

// ProjectRoleResponse is the wire form of a project role.
type ProjectRoleResponse struct {
	ProjectRoleID int64   `json:"ProjectRoleId"`
	Role          string  `json:"Role"`
	CompanyID     int64   `json:"CompanyId"`
	CreatedOn     *string `json:"CreatedOn"`
	CreatedBy     int64   `json:"CreatedBy"`
	UpdatedOn     *string `json:"UpdatedOn"`
	UpdatedBy     *int64  `json:"UpdatedBy"`
	IsActive      bool    `json:"IsActive"`
	DeletedOn     *string `json:"DeletedOn"`
	DeletedBy     *int64  `json:"DeletedBy"`
}
