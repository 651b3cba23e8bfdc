package domain

import (
	"context"
	"fmt"

	"github.com/Harshanand45/WorkNest/internal/entities"
)

// CreateCompany validates required fields and creates a company.
func (u *Usecase) CreateCompany(ctx context.Context, in entities.CompanyCreate) (*entities.Company, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if in.Email == "" {
		return nil, fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}
	if in.ContactNo == "" {
		return nil, fmt.Errorf("%w: contact_no is required", entities.ErrInvalidArgument)
	}
	return u.repo.CreateCompany(ctx, in)
}

// UpdateCompany applies a partial update to a company.
func (u *Usecase) UpdateCompany(ctx context.Context, id int64, patch entities.CompanyPatch) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if patch.Empty() {
		return entities.ErrNoFieldsToUpdate
	}
	return u.repo.UpdateCompany(ctx, id, patch)
}

// DeleteCompany soft-deletes a company.
func (u *Usecase) DeleteCompany(ctx context.Context, id, deletedBy int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.DeleteCompany(ctx, id, deletedBy)
}

// ListCompanies returns companies matching the soft-delete filter.
func (u *Usecase) ListCompanies(ctx context.Context, status entities.StatusFilter) ([]entities.Company, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListCompanies(ctx, status)
}

// PaginateCompanies returns one window of active companies.
func (u *Usecase) PaginateCompanies(ctx context.Context, req entities.PageRequest) (entities.Page[entities.Company], error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	req.Normalize()
	return u.repo.PaginateCompanies(ctx, req)
}
