package handlers_fiber

import (
	"net/http"

	"github.com/Harshanand45/WorkNest/internal/entities"
	"github.com/Harshanand45/WorkNest/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostCompany creates a company.
func (h *Handler) PostCompany(c *fiber.Ctx) error {
	var body dto.CompanyCreateRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	company, err := h.uc.CreateCompany(c.Context(), body.ToEntity())
	if err != nil {
		h.log.Errorw("failed to create company", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(dto.FromCompany(*company))
}

// PutCompany partially updates a company.
func (h *Handler) PutCompany(c *fiber.Ctx) error {
	id, err := pathID(c, "company_id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var body dto.CompanyUpdateRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	if err := h.uc.UpdateCompany(c.Context(), id, body.ToPatch()); err != nil {
		h.log.Errorw("failed to update company", "company_id", id, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "company updated successfully"})
}

// DeleteCompany soft-deletes a company.
func (h *Handler) DeleteCompany(c *fiber.Ctx) error {
	id, err := pathID(c, "company_id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	deletedBy, err := queryID(c, "deleted_by")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.uc.DeleteCompany(c.Context(), id, deletedBy); err != nil {
		h.log.Errorw("failed to delete company", "company_id", id, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "company deleted successfully"})
}

// GetAllCompanies lists companies filtered by the tri-state status query.
func (h *Handler) GetAllCompanies(c *fiber.Ctx) error {
	status, err := statusQuery(c, entities.StatusActive)
	if err != nil {
		return writeError(c, err)
	}

	companies, err := h.uc.ListCompanies(c.Context(), status)
	if err != nil {
		h.log.Errorw("failed to list companies", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.FromCompanies(companies))
}

// PostCompaniesPaginated returns one window of active companies.
func (h *Handler) PostCompaniesPaginated(c *fiber.Ctx) error {
	var body dto.CompanyPageRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	page, err := h.uc.PaginateCompanies(c.Context(), entities.PageRequest{Page: body.Page, Limit: body.Limit})
	if err != nil {
		h.log.Errorw("failed to paginate companies", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.FromCompanyPage(page))
}
