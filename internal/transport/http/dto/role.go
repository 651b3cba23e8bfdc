package dto

// RoleCreateRequest is the payload for POST /roles.
type RoleCreateRequest struct {
	Role      string `json:"role"`
	CompanyID int64  `json:"company_id"`
	CreatedBy int64  `json:"created_by"`
}

// RoleUpdateRequest is the payload for PUT /roles/{role_id}.
type RoleUpdateRequest struct {
	Role      *string `json:"role"`
	CompanyID *int64  `json:"company_id"`
	UpdatedBy int64   `json:"updated_by"`
}

// RoleResponse is the wire form of a role.
type RoleResponse struct {
	RoleID      int64   `json:"role_id"`
	Role        string  `json:"role"`
	CompanyID   int64   `json:"company_id"`
	CompanyName string  `json:"company_name"`
	IsActive    bool    `json:"is_active"`
	CreatedOn   *string `json:"created_on"`
	CreatedBy   int64   `json:"created_by"`
	UpdatedOn   *string `json:"updated_on"`
	UpdatedBy   *int64  `json:"updated_by"`
	DeletedOn   *string `json:"deleted_on"`
	DeletedBy   *int64  `json:"deleted_by"`
}

// RolePageRequest is the payload for POST /roles/paginated.
type RolePageRequest struct {
	Page      int `json:"page"`
	PageLimit int `json:"PageLimit"`
}

// RolePage is one window of roles.
type RolePage struct {
	Data       []RoleResponse `json:"data"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageLimit  int            `json:"PageLimit"`
	TotalPages int64          `json:"total_pages"`
}
