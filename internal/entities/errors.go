// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNoFieldsToUpdate signals an update payload without any updatable field.
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrCompanyNotFound is returned when a company does not exist or is inactive.
	ErrCompanyNotFound = errors.New("company not found")
	// ErrUserNotFound is returned when a user does not exist or is inactive.
	ErrUserNotFound = errors.New("user not found")
	// ErrRoleNotFound is returned when a role does not exist or is inactive.
	ErrRoleNotFound = errors.New("role not found")
	// ErrEmployeeNotFound is returned when an employee does not exist or is inactive.
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrProjectNotFound is returned when a project does not exist or is inactive.
	ErrProjectNotFound = errors.New("project not found")
	// ErrTaskNotFound is returned when a task does not exist or is inactive.
	ErrTaskNotFound = errors.New("task not found")
	// ErrLogTimeNotFound is returned when a log entry does not exist or is inactive.
	ErrLogTimeNotFound = errors.New("log time entry not found")
	// ErrProjectEmployeeNotFound is returned when a project assignment is missing.
	ErrProjectEmployeeNotFound = errors.New("project employee not found")
	// ErrProjectRoleNotFound is returned when a project role is missing.
	ErrProjectRoleNotFound = errors.New("project role not found")

	// ErrCompanyExists signals a duplicate company name or email.
	ErrCompanyExists = errors.New("company name or email already exists")
	// ErrEmailExists signals a duplicate user email.
	ErrEmailExists = errors.New("email already exists")
	// ErrEmployeeExists signals a duplicate employee email or phone.
	ErrEmployeeExists = errors.New("employee email or phone already exists")
	// ErrProjectExists signals a duplicate active project name within a company.
	ErrProjectExists = errors.New("project with this name already exists in the company")

	// ErrInvalidCredentials signals a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserInactive signals a login or privileged action by a deactivated user.
	ErrUserInactive = errors.New("user is inactive")
	// ErrForbidden signals an authenticated user lacking the required role.
	ErrForbidden = errors.New("not authorized")
)
