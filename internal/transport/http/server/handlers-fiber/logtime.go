package handlers_fiber

import (
	"net/http"

	"github.com/Harshanand45/WorkNest/internal/entities"
	"github.com/Harshanand45/WorkNest/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostLogTime creates a work log entry.
func (h *Handler) PostLogTime(c *fiber.Ctx) error {
	var body dto.LogTimeCreateRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	in, err := body.ToEntity()
	if err != nil {
		return writeError(c, err)
	}

	logTime, err := h.uc.CreateLogTime(c.Context(), in)
	if err != nil {
		h.log.Errorw("failed to create log time", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(dto.FromLogTime(*logTime))
}

// PutLogTime partially updates a work log entry.
func (h *Handler) PutLogTime(c *fiber.Ctx) error {
	id, err := pathID(c, "log_id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var body dto.LogTimeUpdateRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	patch, err := body.ToPatch()
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.UpdateLogTime(c.Context(), id, patch); err != nil {
		h.log.Errorw("failed to update log time", "log_id", id, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "log time updated successfully"})
}

// DeleteLogTime soft-deletes a work log entry.
func (h *Handler) DeleteLogTime(c *fiber.Ctx) error {
	id, err := pathID(c, "log_id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	deletedBy, err := queryID(c, "deleted_by")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.uc.DeleteLogTime(c.Context(), id, deletedBy); err != nil {
		h.log.Errorw("failed to delete log time", "log_id", id, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "log time deleted successfully"})
}

// GetAllLogTimes lists active work logs.
func (h *Handler) GetAllLogTimes(c *fiber.Ctx) error {
	logTimes, err := h.uc.ListLogTimes(c.Context())
	if err != nil {
		h.log.Errorw("failed to list log times", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.FromLogTimes(logTimes))
}

// GetLogTimesByTask lists active work logs booked against one task.
func (h *Handler) GetLogTimesByTask(c *fiber.Ctx) error {
	taskID, err := pathID(c, "task_id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	logTimes, err := h.uc.LogTimesByTask(c.Context(), taskID)
	if err != nil {
		h.log.Errorw("failed to list log times by task", "task_id", taskID, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.FromLogTimes(logTimes))
}

// PostLogTimesPaginated returns one window of work logs with optional
// employee-name or task-title filters.
func (h *Handler) PostLogTimesPaginated(c *fiber.Ctx) error {
	var body dto.LogTimePageRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	filter := entities.LogTimePageFilter{
		PageRequest:  entities.PageRequest{Page: body.Page, Limit: body.PageLimit},
		EmployeeName: body.EmployeeName,
		TaskTitle:    body.TaskTitle,
	}
	page, err := h.uc.PaginateLogTimes(c.Context(), filter)
	if err != nil {
		h.log.Errorw("failed to paginate log times", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.FromLogTimePage(page))
}
