package handlers_fiber

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Harshanand45/WorkNest/internal/entities"
	"github.com/Harshanand45/WorkNest/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	// Backend failures keep their detail in the logs only.
	msg := "database error"

	switch {
	case errors.Is(err, entities.ErrCompanyNotFound),
		errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, entities.ErrRoleNotFound),
		errors.Is(err, entities.ErrEmployeeNotFound),
		errors.Is(err, entities.ErrProjectNotFound),
		errors.Is(err, entities.ErrTaskNotFound),
		errors.Is(err, entities.ErrLogTimeNotFound),
		errors.Is(err, entities.ErrProjectEmployeeNotFound),
		errors.Is(err, entities.ErrProjectRoleNotFound):
		status = http.StatusNotFound
		msg = err.Error()
	case errors.Is(err, entities.ErrInvalidArgument),
		errors.Is(err, entities.ErrNoFieldsToUpdate),
		errors.Is(err, entities.ErrCompanyExists),
		errors.Is(err, entities.ErrEmailExists),
		errors.Is(err, entities.ErrEmployeeExists),
		errors.Is(err, entities.ErrProjectExists):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, entities.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		msg = err.Error()
	case errors.Is(err, entities.ErrUserInactive), errors.Is(err, entities.ErrForbidden):
		status = http.StatusForbidden
		msg = err.Error()
	}

	return c.Status(status).JSON(dto.ErrorResponse{Detail: msg})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(dto.ErrorResponse{Detail: msg})
}

// pathID parses a positive integer path parameter.
func pathID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New(name + " must be a positive integer")
	}
	return id, nil
}

// queryID parses a positive integer query parameter.
func queryID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New(name + " must be a positive integer")
	}
	return id, nil
}

// statusQuery parses the tri-state ?status= filter.
func statusQuery(c *fiber.Ctx, def entities.StatusFilter) (entities.StatusFilter, error) {
	return entities.ParseStatusFilter(c.Query("status"), def)
}
