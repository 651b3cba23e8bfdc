// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/Harshanand45/WorkNest/internal/storage"
	"github.com/Harshanand45/WorkNest/internal/token"
	"github.com/Harshanand45/WorkNest/internal/transport/http/middleware"
	"github.com/Harshanand45/WorkNest/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the REST API using service layer interfaces.
type Handler struct {
	log    *zap.SugaredLogger
	uc     usecase.InterfaceUsecase
	store  *storage.Store
	tokens *token.Service
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase, store *storage.Store, tokens *token.Service) *Handler {
	return &Handler{
		log:    log,
		uc:     uc,
		store:  store,
		tokens: tokens,
	}
}

// RegisterRoutes mounts the full API surface on the app.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/login", h.PostLogin)
	app.Post("/upload", h.PostUpload)

	app.Post("/companies", h.PostCompany)
	app.Put("/companies/:company_id", h.PutCompany)
	app.Delete("/companies/:company_id", h.DeleteCompany)
	app.Get("/allcompanies", h.GetAllCompanies)
	app.Post("/companies/paginated", h.PostCompaniesPaginated)

	app.Post("/users", middleware.RequireAuth(h.tokens), middleware.RequireAdmin(), h.PostUser)
	app.Put("/users/:user_id", h.PutUser)
	app.Delete("/users/:user_id", h.DeleteUser)
	app.Get("/allusers", h.GetAllUsers)
	app.Post("/users/paginated", h.PostUsersPaginated)

	app.Post("/roles", h.PostRole)
	app.Put("/roles/:role_id", h.PutRole)
	app.Delete("/roles/:role_id", h.DeleteRole)
	app.Get("/allroles", h.GetAllRoles)
	app.Post("/roles/paginated", h.PostRolesPaginated)

	app.Post("/employees", h.PostEmployee)
	app.Put("/employees/:emp_id", h.PutEmployee)
	app.Delete("/employees/:emp_id", h.DeleteEmployee)
	app.Get("/allemployees", h.GetAllEmployees)
	app.Post("/employees/paginated", h.PostEmployeesPaginated)

	app.Post("/projects", h.PostProject)
	app.Put("/projects/:project_id", h.PutProject)
	app.Delete("/projects/:project_id", h.DeleteProject)
	app.Get("/allprojects", h.GetAllProjects)
	app.Get("/projects/by-manager", h.GetProjectsByManager)
	app.Get("/projects/:project_id", h.GetProject)
	app.Post("/projects/paginated", h.PostProjectsPaginated)

	app.Post("/tasks", h.PostTask)
	app.Put("/tasks/:task_id", h.PutTask)
	app.Delete("/tasks/:task_id", h.DeleteTask)
	app.Get("/alltasks", h.GetAllTasks)
	app.Get("/tasks/by-assigned/:employee_id", h.GetTasksByAssignee)
	app.Get("/tasks/by-manager/:manager_id", h.GetTasksByManager)
	app.Post("/tasks/paginated/filter", h.PostTasksPaginated)

	app.Post("/logtimes", h.PostLogTime)
	app.Put("/logtimes/:log_id", h.PutLogTime)
	app.Delete("/logtimes/:log_id", h.DeleteLogTime)
	app.Get("/alllogtimes", h.GetAllLogTimes)
	app.Get("/logtimes/by-task/:task_id", h.GetLogTimesByTask)
	app.Post("/logtimesPaginated", h.PostLogTimesPaginated)

	app.Post("/project-employees", h.PostProjectEmployee)
	app.Put("/project-employees/:project_employee_id", h.PutProjectEmployee)
	app.Delete("/project-employees/:project_employee_id", h.DeleteProjectEmployee)
	app.Get("/project-employees", h.GetProjectEmployees)
	app.Get("/project-employees/by-company-project", h.GetProjectEmployeesByCompanyProject)

	app.Post("/project-roles", h.PostProjectRole)
	app.Put("/project-roles/:project_role_id", h.PutProjectRole)
	app.Delete("/project-roles/:project_role_id", h.DeleteProjectRole)
	app.Get("/projectroles", h.GetProjectRoles)
}
