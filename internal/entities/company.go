// Package entities contains core business entities.
package entities

// Company is the tenant root all other entities hang off.
type Company struct {
	ID          int64
	Name        string
	Description *string
	LogoName    *string
	LogoURL     *string
	LogoPath    *string
	ContactNo   string
	Email       string
	Address     *string
	IsActive    bool
	Audit
}

// CompanyCreate carries the fields accepted on company creation.
type CompanyCreate struct {
	Name        string
	Description *string
	LogoName    *string
	LogoURL     *string
	LogoPath    *string
	ContactNo   string
	Email       string
	Address     *string
	CreatedBy   int64
}

// CompanyPatch is a partial update; nil fields are left untouched.
type CompanyPatch struct {
	Name        *string
	Description *string
	LogoName    *string
	LogoURL     *string
	LogoPath    *string
	ContactNo   *string
	Email       *string
	Address     *string
	IsActive    *bool
	UpdatedBy   int64
}

// Empty reports whether the patch carries no updatable field.
func (p CompanyPatch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.LogoName == nil &&
		p.LogoURL == nil && p.LogoPath == nil && p.ContactNo == nil &&
		p.Email == nil && p.Address == nil && p.IsActive == nil
}
