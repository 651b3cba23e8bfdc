package dto

// CompanyCreateRequest is the payload for POST /companies.
type CompanyCreateRequest struct {
	Name               string  `json:"name"`
	CompanyDescription *string `json:"company_description"`
	CreatedBy          int64   `json:"created_by"`
	CompanyLogoName    *string `json:"company_logo_name"`
	CompanyLogoURL     *string `json:"company_logo_url"`
	CompanyLogoPath    *string `json:"company_logo_path"`
	ContactNo          string  `json:"contact_no"`
	Email              string  `json:"email"`
	Address            *string `json:"address"`
}

// CompanyUpdateRequest is the payload for PUT /companies/{company_id}.
type CompanyUpdateRequest struct {
	Name               *string `json:"name"`
	IsActive           *int    `json:"is_active"`
	CompanyDescription *string `json:"company_description"`
	UpdatedBy          int64   `json:"updated_by"`
	CompanyLogoName    *string `json:"company_logo_name"`
	CompanyLogoURL     *string `json:"company_logo_url"`
	CompanyLogoPath    *string `json:"company_logo_path"`
	ContactNo          *string `json:"contact_no"`
	Email              *string `json:"email"`
	Address            *string `json:"address"`
}

// CompanyResponse is the wire form of a company.
type CompanyResponse struct {
	CompanyID          int64   `json:"company_id"`
	Name               string  `json:"name"`
	IsActive           int     `json:"is_active"`
	CompanyDescription *string `json:"company_description"`
	CreatedOn          *string `json:"created_on"`
	CreatedBy          int64   `json:"created_by"`
	UpdatedOn          *string `json:"updated_on"`
	UpdatedBy          *int64  `json:"updated_by"`
	DeletedOn          *string `json:"deleted_on"`
	DeletedBy          *int64  `json:"deleted_by"`
	CompanyLogoName    *string `json:"company_logo_name"`
	CompanyLogoURL     *string `json:"company_logo_url"`
	CompanyLogoPath    *string `json:"company_logo_path"`
	ContactNo          string  `json:"contact_no"`
	Email              string  `json:"email"`
	Address            *string `json:"address"`
}

// CompanyPageRequest is the payload for POST /companies/paginated.
type CompanyPageRequest struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// CompanyPage is one window of companies.
type CompanyPage struct {
	Data       []CompanyResponse `json:"data"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int64             `json:"total_pages"`
}
