// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/Harshanand45/WorkNest/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// CompanyInterface exposes company persistence operations.
type CompanyInterface interface {
	CreateCompany(ctx context.Context, in entities.CompanyCreate) (*entities.Company, error)
	UpdateCompany(ctx context.Context, id int64, patch entities.CompanyPatch) error
	DeleteCompany(ctx context.Context, id, deletedBy int64) error
	ListCompanies(ctx context.Context, status entities.StatusFilter) ([]entities.Company, error)
	PaginateCompanies(ctx context.Context, req entities.PageRequest) (entities.Page[entities.Company], error)
}

// UserInterface exposes user persistence operations.
type UserInterface interface {
	CreateUser(ctx context.Context, in entities.UserCreate, passwordHash string) (*entities.User, error)
	UpdateUser(ctx context.Context, id int64, patch entities.UserPatch) error
	DeleteUser(ctx context.Context, id, deletedBy int64) error
	ListUsers(ctx context.Context) ([]entities.User, error)
	PaginateUsers(ctx context.Context, filter entities.UserPageFilter) (entities.Page[entities.User], error)
	GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
}

// RoleInterface exposes role persistence operations.
type RoleInterface interface {
	CreateRole(ctx context.Context, in entities.RoleCreate) (*entities.Role, error)
	UpdateRole(ctx context.Context, id int64, patch entities.RolePatch) error
	DeleteRole(ctx context.Context, id, deletedBy int64) error
	ListRoles(ctx context.Context) ([]entities.Role, error)
	PaginateRoles(ctx context.Context, req entities.PageRequest) (entities.Page[entities.Role], error)
}

// EmployeeInterface exposes employee persistence operations.
type EmployeeInterface interface {
	CreateEmployee(ctx context.Context, in entities.EmployeeCreate) (*entities.Employee, error)
	UpdateEmployee(ctx context.Context, id int64, patch entities.EmployeePatch) error
	DeleteEmployee(ctx context.Context, id, deletedBy int64) error
	ListEmployees(ctx context.Context) ([]entities.Employee, error)
	PaginateEmployees(ctx context.Context, filter entities.EmployeePageFilter) (entities.Page[entities.Employee], error)
}

// ProjectInterface exposes project persistence operations.
type ProjectInterface interface {
	CreateProject(ctx context.Context, in entities.ProjectCreate) (*entities.Project, error)
	UpdateProject(ctx context.Context, id int64, patch entities.ProjectPatch) error
	DeleteProject(ctx context.Context, id, deletedBy int64) error
	ListProjects(ctx context.Context) ([]entities.Project, error)
	GetProject(ctx context.Context, id int64) (*entities.Project, error)
	ProjectsByManager(ctx context.Context, managerID int64) ([]entities.Project, error)
	PaginateProjects(ctx context.Context, filter entities.ProjectPageFilter) (entities.Page[entities.Project], error)
}

// TaskInterface exposes task persistence operations.
type TaskInterface interface {
	CreateTask(ctx context.Context, in entities.TaskCreate) (*entities.Task, error)
	UpdateTask(ctx context.Context, id int64, patch entities.TaskPatch) (*entities.Task, error)
	DeleteTask(ctx context.Context, id, deletedBy int64) error
	ListTasks(ctx context.Context) ([]entities.Task, error)
	TasksByAssignee(ctx context.Context, employeeID int64) ([]entities.Task, error)
	TasksByManager(ctx context.Context, managerID int64) ([]entities.Task, error)
	PaginateTasks(ctx context.Context, filter entities.TaskPageFilter) (entities.Page[entities.Task], error)
}

// LogTimeInterface exposes work-log persistence operations.
type LogTimeInterface interface {
	CreateLogTime(ctx context.Context, in entities.LogTimeCreate) (*entities.LogTime, error)
	UpdateLogTime(ctx context.Context, id int64, patch entities.LogTimePatch) error
	DeleteLogTime(ctx context.Context, id, deletedBy int64) error
	ListLogTimes(ctx context.Context) ([]entities.LogTime, error)
	LogTimesByTask(ctx context.Context, taskID int64) ([]entities.LogTime, error)
	PaginateLogTimes(ctx context.Context, filter entities.LogTimePageFilter) (entities.Page[entities.LogTime], error)
}

// ProjectEmployeeInterface exposes project assignment persistence operations.
type ProjectEmployeeInterface interface {
	CreateProjectEmployee(ctx context.Context, in entities.ProjectEmployeeCreate) error
	UpdateProjectEmployee(ctx context.Context, id int64, patch entities.ProjectEmployeePatch) error
	DeleteProjectEmployee(ctx context.Context, id, deletedBy int64) error
	ListProjectEmployees(ctx context.Context, status entities.StatusFilter) ([]entities.ProjectEmployee, error)
	ProjectEmployeesByCompanyProject(ctx context.Context, filter entities.ProjectEmployeeFilter) ([]entities.ProjectEmployee, error)
}

// ProjectRoleInterface exposes project role persistence operations.
type ProjectRoleInterface interface {
	CreateProjectRole(ctx context.Context, in entities.ProjectRoleCreate) error
	UpdateProjectRole(ctx context.Context, id int64, patch entities.ProjectRolePatch) error
	DeleteProjectRole(ctx context.Context, id, deletedBy int64) error
	ListProjectRoles(ctx context.Context) ([]entities.ProjectRole, error)
}
