package dto

// EmployeeCreateRequest is the payload for POST /employees. EmployeeImage
// optionally carries a base64 data URL persisted to disk before insert.
type EmployeeCreateRequest struct {
	Name          string  `json:"name"`
	RoleID        int64   `json:"role_id"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	Email         string  `json:"email"`
	Description   string  `json:"description"`
	EmployeeImage *string `json:"EmployeeImage"`
	ImageURL      *string `json:"ImageUrl"`
	ImagePath     *string `json:"ImagePath"`
	CreatedBy     int64   `json:"created_by"`
	CompanyID     int64   `json:"company_id"`
}

// EmployeeUpdateRequest is the payload for PUT /employees/{emp_id}.
type EmployeeUpdateRequest struct {
	Name          *string `json:"name"`
	RoleID        *int64  `json:"role_id"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	Email         *string `json:"email"`
	Description   *string `json:"description"`
	UpdatedBy     int64   `json:"updated_by"`
	EmployeeImage *string `json:"EmployeeImage"`
	ImageURL      *string `json:"ImageUrl"`
	ImagePath     *string `json:"ImagePath"`
}

// EmployeeResponse is the wire form of an employee.
type EmployeeResponse struct {
	EmpID       int64   `json:"emp_id"`
	Name        string  `json:"name"`
	RoleID      int64   `json:"role_id"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
	Email       string  `json:"email"`
	Description string  `json:"description"`
	ImageURL    *string `json:"ImageUrl"`
	ImagePath   *string `json:"ImagePath"`
	CompanyID   int64   `json:"company_id"`
	CreatedBy   int64   `json:"created_by"`
	UpdatedBy   *int64  `json:"updated_by"`
	IsActive    bool    `json:"is_active"`
}

// EmployeePageRequest is the payload for POST /employees/paginated.
type EmployeePageRequest struct {
	Page      int    `json:"page"`
	PageLimit int    `json:"page_limit"`
	Search    string `json:"search"`
	CompanyID int64  `json:"company_id"`
	RoleID    *int64 `json:"role_id"`
}

// EmployeePage is one window of employees.
type EmployeePage struct {
	Data       []EmployeeResponse `json:"data"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageLimit  int                `json:"page_limit"`
	TotalPages int64              `json:"total_pages"`
}
