package handlers_fiber

import (
	"net/http"

	"github.com/Harshanand45/WorkNest/internal/entities"
	"github.com/Harshanand45/WorkNest/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// PostTask creates a task.
func (h *Handler) PostTask(c *fiber.Ctx) error {
	var body dto.TaskCreateRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	in, err := body.ToEntity()
	if err != nil {
		return writeError(c, err)
	}

	task, err := h.uc.CreateTask(c.Context(), in)
	if err != nil {
		h.log.Errorw("failed to create task", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(dto.FromTask(*task))
}

// PutTask partially updates a task and returns the updated row.
func (h *Handler) PutTask(c *fiber.Ctx) error {
	id, err := pathID(c, "task_id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	var body dto.TaskUpdateRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	patch, err := body.ToPatch()
	if err != nil {
		return writeError(c, err)
	}

	task, err := h.uc.UpdateTask(c.Context(), id, patch)
	if err != nil {
		h.log.Errorw("failed to update task", "task_id", id, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.FromTask(*task))
}

// DeleteTask soft-deletes a task.
func (h *Handler) DeleteTask(c *fiber.Ctx) error {
	id, err := pathID(c, "task_id")
	if err != nil {
		return badRequest(c, err.Error())
	}
	deletedBy, err := queryID(c, "deleted_by")
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.uc.DeleteTask(c.Context(), id, deletedBy); err != nil {
		h.log.Errorw("failed to delete task", "task_id", id, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.MessageResponse{Message: "task deleted successfully"})
}

// GetAllTasks lists active tasks ordered by deadline.
func (h *Handler) GetAllTasks(c *fiber.Ctx) error {
	tasks, err := h.uc.ListTasks(c.Context())
	if err != nil {
		h.log.Errorw("failed to list tasks", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.FromTasks(tasks))
}

// GetTasksByAssignee lists active tasks assigned to one employee.
func (h *Handler) GetTasksByAssignee(c *fiber.Ctx) error {
	employeeID, err := pathID(c, "employee_id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	tasks, err := h.uc.TasksByAssignee(c.Context(), employeeID)
	if err != nil {
		h.log.Errorw("failed to list tasks by assignee", "employee_id", employeeID, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.FromTasks(tasks))
}

// GetTasksByManager lists active tasks in projects managed by one employee.
func (h *Handler) GetTasksByManager(c *fiber.Ctx) error {
	managerID, err := pathID(c, "manager_id")
	if err != nil {
		return badRequest(c, err.Error())
	}

	tasks, err := h.uc.TasksByManager(c.Context(), managerID)
	if err != nil {
		h.log.Errorw("failed to list tasks by manager", "manager_id", managerID, "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.FromTasks(tasks))
}

// PostTasksPaginated returns one window of tasks with optional filters.
func (h *Handler) PostTasksPaginated(c *fiber.Ctx) error {
	var body dto.TaskPageRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	filter := entities.TaskPageFilter{
		PageRequest: entities.PageRequest{Page: body.Page, Limit: body.PageLimit},
		ProjectName: body.ProjectName,
		TaskName:    body.TaskName,
		AssignedTo:  body.AssignedTo,
		Priority:    body.Priority,
		ManagerID:   body.ManagerID,
	}
	page, err := h.uc.PaginateTasks(c.Context(), filter)
	if err != nil {
		h.log.Errorw("failed to paginate tasks", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(dto.FromTaskPage(page))
}
