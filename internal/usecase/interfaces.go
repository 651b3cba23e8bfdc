package usecase

import (
	"context"

	"github.com/Harshanand45/WorkNest/internal/entities"
)

// AuthUsecaseInterface abstracts authentication operations.
type AuthUsecaseInterface interface {
	Login(ctx context.Context, creds entities.Credentials) (*entities.AuthToken, error)
}

// CompanyUsecaseInterface abstracts company operations for the delivery layer.
type CompanyUsecaseInterface interface {
	CreateCompany(ctx context.Context, in entities.CompanyCreate) (*entities.Company, error)
	UpdateCompany(ctx context.Context, id int64, patch entities.CompanyPatch) error
	DeleteCompany(ctx context.Context, id, deletedBy int64) error
	ListCompanies(ctx context.Context, status entities.StatusFilter) ([]entities.Company, error)
	PaginateCompanies(ctx context.Context, req entities.PageRequest) (entities.Page[entities.Company], error)
}

// UserUsecaseInterface abstracts user operations.
type UserUsecaseInterface interface {
	CreateUser(ctx context.Context, in entities.UserCreate) (*entities.User, error)
	UpdateUser(ctx context.Context, id int64, patch entities.UserPatch, newPassword string) error
	DeleteUser(ctx context.Context, id, deletedBy int64) error
	ListUsers(ctx context.Context) ([]entities.User, error)
	PaginateUsers(ctx context.Context, filter entities.UserPageFilter) (entities.Page[entities.User], error)
}

// RoleUsecaseInterface abstracts role operations.
type RoleUsecaseInterface interface {
	CreateRole(ctx context.Context, in entities.RoleCreate) (*entities.Role, error)
	UpdateRole(ctx context.Context, id int64, patch entities.RolePatch) error
	DeleteRole(ctx context.Context, id, deletedBy int64) error
	ListRoles(ctx context.Context) ([]entities.Role, error)
	PaginateRoles(ctx context.Context, req entities.PageRequest) (entities.Page[entities.Role], error)
}

// EmployeeUsecaseInterface abstracts employee operations.
type EmployeeUsecaseInterface interface {
	CreateEmployee(ctx context.Context, in entities.EmployeeCreate) (*entities.Employee, error)
	UpdateEmployee(ctx context.Context, id int64, patch entities.EmployeePatch) error
	DeleteEmployee(ctx context.Context, id, deletedBy int64) error
	ListEmployees(ctx context.Context) ([]entities.Employee, error)
	PaginateEmployees(ctx context.Context, filter entities.EmployeePageFilter) (entities.Page[entities.Employee], error)
}

// ProjectUsecaseInterface abstracts project operations.
type ProjectUsecaseInterface interface {
	CreateProject(ctx context.Context, in entities.ProjectCreate) (*entities.Project, error)
	UpdateProject(ctx context.Context, id int64, patch entities.ProjectPatch) error
	DeleteProject(ctx context.Context, id, deletedBy int64) error
	ListProjects(ctx context.Context) ([]entities.Project, error)
	GetProject(ctx context.Context, id int64) (*entities.Project, error)
	ProjectsByManager(ctx context.Context, managerID int64) ([]entities.Project, error)
	PaginateProjects(ctx context.Context, filter entities.ProjectPageFilter) (entities.Page[entities.Project], error)
}

// TaskUsecaseInterface abstracts task operations.
type TaskUsecaseInterface interface {
	CreateTask(ctx context.Context, in entities.TaskCreate) (*entities.Task, error)
	UpdateTask(ctx context.Context, id int64, patch entities.TaskPatch) (*entities.Task, error)
	DeleteTask(ctx context.Context, id, deletedBy int64) error
	ListTasks(ctx context.Context) ([]entities.Task, error)
	TasksByAssignee(ctx context.Context, employeeID int64) ([]entities.Task, error)
	TasksByManager(ctx context.Context, managerID int64) ([]entities.Task, error)
	PaginateTasks(ctx context.Context, filter entities.TaskPageFilter) (entities.Page[entities.Task], error)
}

// LogTimeUsecaseInterface abstracts work log operations.
type LogTimeUsecaseInterface interface {
	CreateLogTime(ctx context.Context, in entities.LogTimeCreate) (*entities.LogTime, error)
	UpdateLogTime(ctx context.Context, id int64, patch entities.LogTimePatch) error
	DeleteLogTime(ctx context.Context, id, deletedBy int64) error
	ListLogTimes(ctx context.Context) ([]entities.LogTime, error)
	LogTimesByTask(ctx context.Context, taskID int64) ([]entities.LogTime, error)
	PaginateLogTimes(ctx context.Context, filter entities.LogTimePageFilter) (entities.Page[entities.LogTime], error)
}

// ProjectEmployeeUsecaseInterface abstracts project assignment operations.
type ProjectEmployeeUsecaseInterface interface {
	CreateProjectEmployee(ctx context.Context, in entities.ProjectEmployeeCreate) error
	UpdateProjectEmployee(ctx context.Context, id int64, patch entities.ProjectEmployeePatch) error
	DeleteProjectEmployee(ctx context.Context, id, deletedBy int64) error
	ListProjectEmployees(ctx context.Context, status entities.StatusFilter) ([]entities.ProjectEmployee, error)
	ProjectEmployeesByCompanyProject(ctx context.Context, filter entities.ProjectEmployeeFilter) ([]entities.ProjectEmployee, error)
}

// ProjectRoleUsecaseInterface abstracts project role operations.
type ProjectRoleUsecaseInterface interface {
	CreateProjectRole(ctx context.Context, in entities.ProjectRoleCreate) error
	UpdateProjectRole(ctx context.Context, id int64, patch entities.ProjectRolePatch) error
	DeleteProjectRole(ctx context.Context, id, deletedBy int64) error
	ListProjectRoles(ctx context.Context) ([]entities.ProjectRole, error)
}
