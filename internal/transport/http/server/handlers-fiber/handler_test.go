package handlers_fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Harshanand45/WorkNest/config"
	"github.com/Harshanand45/WorkNest/internal/entities"
	"github.com/Harshanand45/WorkNest/internal/storage"
	"github.com/Harshanand45/WorkNest/internal/token"
	"github.com/Harshanand45/WorkNest/internal/transport/http/dto"
	"github.com/Harshanand45/WorkNest/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type ucMock struct {
	mock.Mock
}

var _ usecase.InterfaceUsecase = (*ucMock)(nil)

func (m *ucMock) Login(ctx context.Context, creds entities.Credentials) (*entities.AuthToken, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AuthToken), args.Error(1)
}

func (m *ucMock) CreateCompany(ctx context.Context, in entities.CompanyCreate) (*entities.Company, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Company), args.Error(1)
}

func (m *ucMock) UpdateCompany(ctx context.Context, id int64, patch entities.CompanyPatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *ucMock) DeleteCompany(ctx context.Context, id, deletedBy int64) error {
	return m.Called(ctx, id, deletedBy).Error(0)
}

func (m *ucMock) ListCompanies(ctx context.Context, status entities.StatusFilter) ([]entities.Company, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]entities.Company), args.Error(1)
}

func (m *ucMock) PaginateCompanies(ctx context.Context, req entities.PageRequest) (entities.Page[entities.Company], error) {
	args := m.Called(ctx, req)
	return args.Get(0).(entities.Page[entities.Company]), args.Error(1)
}

func (m *ucMock) CreateUser(ctx context.Context, in entities.UserCreate) (*entities.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *ucMock) UpdateUser(ctx context.Context, id int64, patch entities.UserPatch, newPassword string) error {
	return m.Called(ctx, id, patch, newPassword).Error(0)
}

func (m *ucMock) DeleteUser(ctx context.Context, id, deletedBy int64) error {
	return m.Called(ctx, id, deletedBy).Error(0)
}

func (m *ucMock) ListUsers(ctx context.Context) ([]entities.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *ucMock) PaginateUsers(ctx context.Context, filter entities.UserPageFilter) (entities.Page[entities.User], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(entities.Page[entities.User]), args.Error(1)
}

func (m *ucMock) CreateRole(ctx context.Context, in entities.RoleCreate) (*entities.Role, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Role), args.Error(1)
}

func (m *ucMock) UpdateRole(ctx context.Context, id int64, patch entities.RolePatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *ucMock) DeleteRole(ctx context.Context, id, deletedBy int64) error {
	return m.Called(ctx, id, deletedBy).Error(0)
}

func (m *ucMock) ListRoles(ctx context.Context) ([]entities.Role, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.Role), args.Error(1)
}

func (m *ucMock) PaginateRoles(ctx context.Context, req entities.PageRequest) (entities.Page[entities.Role], error) {
	args := m.Called(ctx, req)
	return args.Get(0).(entities.Page[entities.Role]), args.Error(1)
}

func (m *ucMock) CreateEmployee(ctx context.Context, in entities.EmployeeCreate) (*entities.Employee, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Employee), args.Error(1)
}

func (m *ucMock) UpdateEmployee(ctx context.Context, id int64, patch entities.EmployeePatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *ucMock) DeleteEmployee(ctx context.Context, id, deletedBy int64) error {
	return m.Called(ctx, id, deletedBy).Error(0)
}

func (m *ucMock) ListEmployees(ctx context.Context) ([]entities.Employee, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.Employee), args.Error(1)
}

func (m *ucMock) PaginateEmployees(ctx context.Context, filter entities.EmployeePageFilter) (entities.Page[entities.Employee], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(entities.Page[entities.Employee]), args.Error(1)
}

func (m *ucMock) CreateProject(ctx context.Context, in entities.ProjectCreate) (*entities.Project, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *ucMock) UpdateProject(ctx context.Context, id int64, patch entities.ProjectPatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *ucMock) DeleteProject(ctx context.Context, id, deletedBy int64) error {
	return m.Called(ctx, id, deletedBy).Error(0)
}

func (m *ucMock) ListProjects(ctx context.Context) ([]entities.Project, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.Project), args.Error(1)
}

func (m *ucMock) GetProject(ctx context.Context, id int64) (*entities.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *ucMock) ProjectsByManager(ctx context.Context, managerID int64) ([]entities.Project, error) {
	args := m.Called(ctx, managerID)
	return args.Get(0).([]entities.Project), args.Error(1)
}

func (m *ucMock) PaginateProjects(ctx context.Context, filter entities.ProjectPageFilter) (entities.Page[entities.Project], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(entities.Page[entities.Project]), args.Error(1)
}

func (m *ucMock) CreateTask(ctx context.Context, in entities.TaskCreate) (*entities.Task, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *ucMock) UpdateTask(ctx context.Context, id int64, patch entities.TaskPatch) (*entities.Task, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *ucMock) DeleteTask(ctx context.Context, id, deletedBy int64) error {
	return m.Called(ctx, id, deletedBy).Error(0)
}

func (m *ucMock) ListTasks(ctx context.Context) ([]entities.Task, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.Task), args.Error(1)
}

func (m *ucMock) TasksByAssignee(ctx context.Context, employeeID int64) ([]entities.Task, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).([]entities.Task), args.Error(1)
}

func (m *ucMock) TasksByManager(ctx context.Context, managerID int64) ([]entities.Task, error) {
	args := m.Called(ctx, managerID)
	return args.Get(0).([]entities.Task), args.Error(1)
}

func (m *ucMock) PaginateTasks(ctx context.Context, filter entities.TaskPageFilter) (entities.Page[entities.Task], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(entities.Page[entities.Task]), args.Error(1)
}

func (m *ucMock) CreateLogTime(ctx context.Context, in entities.LogTimeCreate) (*entities.LogTime, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.LogTime), args.Error(1)
}

func (m *ucMock) UpdateLogTime(ctx context.Context, id int64, patch entities.LogTimePatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *ucMock) DeleteLogTime(ctx context.Context, id, deletedBy int64) error {
	return m.Called(ctx, id, deletedBy).Error(0)
}

func (m *ucMock) ListLogTimes(ctx context.Context) ([]entities.LogTime, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.LogTime), args.Error(1)
}

func (m *ucMock) LogTimesByTask(ctx context.Context, taskID int64) ([]entities.LogTime, error) {
	args := m.Called(ctx, taskID)
	return args.Get(0).([]entities.LogTime), args.Error(1)
}

func (m *ucMock) PaginateLogTimes(ctx context.Context, filter entities.LogTimePageFilter) (entities.Page[entities.LogTime], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(entities.Page[entities.LogTime]), args.Error(1)
}

func (m *ucMock) CreateProjectEmployee(ctx context.Context, in entities.ProjectEmployeeCreate) error {
	return m.Called(ctx, in).Error(0)
}

func (m *ucMock) UpdateProjectEmployee(ctx context.Context, id int64, patch entities.ProjectEmployeePatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *ucMock) DeleteProjectEmployee(ctx context.Context, id, deletedBy int64) error {
	return m.Called(ctx, id, deletedBy).Error(0)
}

func (m *ucMock) ListProjectEmployees(ctx context.Context, status entities.StatusFilter) ([]entities.ProjectEmployee, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]entities.ProjectEmployee), args.Error(1)
}

func (m *ucMock) ProjectEmployeesByCompanyProject(ctx context.Context, filter entities.ProjectEmployeeFilter) ([]entities.ProjectEmployee, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ProjectEmployee), args.Error(1)
}

func (m *ucMock) CreateProjectRole(ctx context.Context, in entities.ProjectRoleCreate) error {
	return m.Called(ctx, in).Error(0)
}

func (m *ucMock) UpdateProjectRole(ctx context.Context, id int64, patch entities.ProjectRolePatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *ucMock) DeleteProjectRole(ctx context.Context, id, deletedBy int64) error {
	return m.Called(ctx, id, deletedBy).Error(0)
}

func (m *ucMock) ListProjectRoles(ctx context.Context) ([]entities.ProjectRole, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.ProjectRole), args.Error(1)
}

func newTestApp(t *testing.T, uc usecase.InterfaceUsecase) (*fiber.App, *token.Service) {
	t.Helper()

	tokens := token.NewService(config.AuthConfig{JWTSecret: "handler-secret", TokenTTL: time.Hour})
	store, err := storage.New(config.StorageConfig{UploadDir: t.TempDir()}, zap.NewNop().Sugar())
	require.NoError(t, err)

	app := fiber.New()
	h := NewHandler(zap.NewNop().Sugar(), uc, store, tokens)
	h.RegisterRoutes(app)
	return app, tokens
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func TestPostCompanyCreated(t *testing.T) {
	uc := new(ucMock)
	app, _ := newTestApp(t, uc)

	uc.On("CreateCompany", mock.Anything, mock.MatchedBy(func(in entities.CompanyCreate) bool {
		return in.Name == "Acme" && in.Email == "hr@acme.io" && in.CreatedBy == int64(1)
	})).Return(&entities.Company{
		ID:        7,
		Name:      "Acme",
		ContactNo: "123456",
		Email:     "hr@acme.io",
		IsActive:  true,
		Audit:     entities.Audit{CreatedOn: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), CreatedBy: 1},
	}, nil)

	req := jsonRequest(t, http.MethodPost, "/companies", dto.CompanyCreateRequest{
		Name:      "Acme",
		ContactNo: "123456",
		Email:     "hr@acme.io",
		CreatedBy: 1,
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body dto.CompanyResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, int64(7), body.CompanyID)
	require.Equal(t, 1, body.IsActive)
	require.NotNil(t, body.CreatedOn)
	require.Equal(t, "2025-03-01 10:00:00", *body.CreatedOn)

	uc.AssertExpectations(t)
}

func TestPutCompanyNoFields(t *testing.T) {
	uc := new(ucMock)
	app, _ := newTestApp(t, uc)

	uc.On("UpdateCompany", mock.Anything, int64(3), mock.Anything).
		Return(entities.ErrNoFieldsToUpdate)

	req := jsonRequest(t, http.MethodPut, "/companies/3", dto.CompanyUpdateRequest{UpdatedBy: 1})
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "no fields to update", body.Detail)
}

func TestDeleteCompanyRequiresDeletedBy(t *testing.T) {
	uc := new(ucMock)
	app, _ := newTestApp(t, uc)

	req := httptest.NewRequest(http.MethodDelete, "/companies/3", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	uc.AssertNotCalled(t, "DeleteCompany")
}

func TestLoginInvalidCredentials(t *testing.T) {
	uc := new(ucMock)
	app, _ := newTestApp(t, uc)

	uc.On("Login", mock.Anything, entities.Credentials{Email: "who@x.io", Password: "nope"}).
		Return(nil, entities.ErrInvalidCredentials)

	req := jsonRequest(t, http.MethodPost, "/login", dto.LoginRequest{Email: "who@x.io", Password: "nope"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "invalid credentials", body.Detail)
}

func TestLoginReturnsToken(t *testing.T) {
	uc := new(ucMock)
	app, _ := newTestApp(t, uc)

	uc.On("Login", mock.Anything, mock.Anything).
		Return(&entities.AuthToken{AccessToken: "signed", TokenType: "bearer"}, nil)

	req := jsonRequest(t, http.MethodPost, "/login", dto.LoginRequest{Email: "admin@x.io", Password: "secret"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "signed", body.AccessToken)
	require.Equal(t, "bearer", body.TokenType)
}

func TestPostUserRequiresAdminToken(t *testing.T) {
	uc := new(ucMock)
	app, tokens := newTestApp(t, uc)

	payload := dto.UserCreateRequest{
		Email:     "new@x.io",
		Password:  "secret",
		RoleID:    2,
		CompanyID: 1,
		CreatedBy: 1,
	}

	// No token at all.
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/users", payload))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Valid token, non-admin role.
	nonAdmin, err := tokens.Issue("dev@x.io", 5, 2)
	require.NoError(t, err)
	req := jsonRequest(t, http.MethodPost, "/users", payload)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+nonAdmin)
	resp, err = app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Admin token goes through.
	uc.On("CreateUser", mock.Anything, mock.Anything).Return(&entities.User{
		ID:        9,
		Email:     "new@x.io",
		IsActive:  true,
		RoleID:    2,
		CompanyID: 1,
		Audit:     entities.Audit{CreatedOn: time.Now(), CreatedBy: 1},
	}, nil)

	admin, err := tokens.Issue("admin@x.io", 1, entities.RoleAdmin)
	require.NoError(t, err)
	req = jsonRequest(t, http.MethodPost, "/users", payload)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+admin)
	resp, err = app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "password")

	var body dto.UserResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Equal(t, int64(9), body.UserID)
	require.Equal(t, 1, body.IsActive)
}

func TestPostCompaniesPaginatedEnvelope(t *testing.T) {
	uc := new(ucMock)
	app, _ := newTestApp(t, uc)

	uc.On("PaginateCompanies", mock.Anything, entities.PageRequest{Page: 2, Limit: 5}).
		Return(entities.Page[entities.Company]{
			Data:       []entities.Company{{ID: 11, Name: "Acme", IsActive: true}},
			Total:      6,
			Page:       2,
			Limit:      5,
			TotalPages: 2,
		}, nil)

	req := jsonRequest(t, http.MethodPost, "/companies/paginated", dto.CompanyPageRequest{Page: 2, Limit: 5})
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Contains(t, envelope, "data")
	require.Contains(t, envelope, "total")
	require.Contains(t, envelope, "page")
	require.Contains(t, envelope, "limit")
	require.Contains(t, envelope, "total_pages")
}

func TestPutTaskReturnsUpdatedRow(t *testing.T) {
	uc := new(ucMock)
	app, _ := newTestApp(t, uc)

	status := "Done"
	uc.On("UpdateTask", mock.Anything, int64(4), mock.MatchedBy(func(p entities.TaskPatch) bool {
		return p.Status != nil && *p.Status == "Done" && p.UpdatedBy == int64(2)
	})).Return(&entities.Task{
		ID:        4,
		Name:      "ship it",
		ProjectID: 1,
		Status:    &status,
		CompanyID: 1,
		IsActive:  true,
		Audit:     entities.Audit{CreatedOn: time.Now(), CreatedBy: 1},
	}, nil)

	req := jsonRequest(t, http.MethodPut, "/tasks/4", dto.TaskUpdateRequest{Status: &status, UpdatedBy: 2})
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.TaskResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, int64(4), body.TaskID)
	require.NotNil(t, body.Status)
	require.Equal(t, "Done", *body.Status)
}

func TestGetProjectEmployeesByCompanyProject(t *testing.T) {
	uc := new(ucMock)
	app, _ := newTestApp(t, uc)

	uc.On("ProjectEmployeesByCompanyProject", mock.Anything, entities.ProjectEmployeeFilter{
		CompanyID: 1,
		ProjectID: 2,
		Status:    entities.StatusActive,
	}).Return([]entities.ProjectEmployee{{ID: 3, EmpID: 4, ProjectID: 2, CompanyID: 1, ProjectRoleID: 5, IsActive: true}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/project-employees/by-company-project?company_id=1&project_id=2", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body []dto.ProjectEmployeeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	require.Equal(t, int64(3), body[0].ProjectEmployeeID)
}

func TestGetProjectEmployeesUnknownCompany(t *testing.T) {
	uc := new(ucMock)
	app, _ := newTestApp(t, uc)

	uc.On("ProjectEmployeesByCompanyProject", mock.Anything, entities.ProjectEmployeeFilter{
		CompanyID: 42,
		ProjectID: 2,
		Status:    entities.StatusActive,
	}).Return(nil, entities.ErrCompanyNotFound)

	req := httptest.NewRequest(http.MethodGet, "/project-employees/by-company-project?company_id=42&project_id=2", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPostUploadStoresFile(t *testing.T) {
	uc := new(ucMock)
	app, _ := newTestApp(t, uc)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "report.pdf")
	require.NoError(t, err)
	_, err = io.Copy(part, strings.NewReader("pdf-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.UploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "report.pdf", body.Filename)
	require.Equal(t, "/uploads/report.pdf", body.URL)
}
