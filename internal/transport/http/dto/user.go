package dto

// UserCreateRequest is the payload for POST /users. The password is
// accepted in plaintext and hashed before storage; it is never echoed back.
type UserCreateRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	RoleID    int64  `json:"role_id"`
	CompanyID int64  `json:"company_id"`
	CreatedBy int64  `json:"created_by"`
}

// UserUpdateRequest is the payload for PUT /users/{user_id}.
type UserUpdateRequest struct {
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	IsActive  *int    `json:"is_active"`
	UpdatedBy int64   `json:"updated_by"`
	RoleID    *int64  `json:"role_id"`
	CompanyID *int64  `json:"company_id"`
}

// UserResponse is the wire form of a user. It carries no password material.
type UserResponse struct {
	UserID    int64   `json:"user_id"`
	Email     string  `json:"email"`
	IsActive  int     `json:"is_active"`
	RoleID    int64   `json:"role_id"`
	CompanyID int64   `json:"company_id"`
	CreatedOn *string `json:"created_on"`
	CreatedBy int64   `json:"created_by"`
	UpdatedOn *string `json:"updated_on"`
	UpdatedBy *int64  `json:"updated_by"`
	DeletedOn *string `json:"deleted_on"`
	DeletedBy *int64  `json:"deleted_by"`
}

// UserPageRequest is the payload for POST /users/paginated.
type UserPageRequest struct {
	Page      int    `json:"page"`
	PageLimit int    `json:"PageLimit"`
	CompanyID *int64 `json:"company_id"`
	RoleID    *int64 `json:"role_id"`
	Search    string `json:"search"`
}

// UserPage is one window of users.
type UserPage struct {
	Data       []UserResponse `json:"data"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageLimit  int            `json:"PageLimit"`
	TotalPages int64          `json:"total_pages"`
}
