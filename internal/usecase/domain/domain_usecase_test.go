package domain

import (
	"context"
	"testing"
	"time"

	"github.com/Harshanand45/WorkNest/config"
	"github.com/Harshanand45/WorkNest/internal/entities"
	"github.com/Harshanand45/WorkNest/internal/repository"
	"github.com/Harshanand45/WorkNest/internal/token"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) CreateCompany(ctx context.Context, in entities.CompanyCreate) (*entities.Company, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Company), args.Error(1)
}

func (m *repoMock) UpdateCompany(ctx context.Context, id int64, patch entities.CompanyPatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *repoMock) DeleteCompany(ctx context.Context, id, deletedBy int64) error {
	return m.Called(ctx, id, deletedBy).Error(0)
}

func (m *repoMock) ListCompanies(ctx context.Context, status entities.StatusFilter) ([]entities.Company, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Company), args.Error(1)
}

func (m *repoMock) PaginateCompanies(ctx context.Context, req entities.PageRequest) (entities.Page[entities.Company], error) {
	args := m.Called(ctx, req)
	return args.Get(0).(entities.Page[entities.Company]), args.Error(1)
}

func (m *repoMock) CreateUser(ctx context.Context, in entities.UserCreate, passwordHash string) (*entities.User, error) {
	args := m.Called(ctx, in, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) UpdateUser(ctx context.Context, id int64, patch entities.UserPatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *repoMock) DeleteUser(ctx context.Context, id, deletedBy int64) error {
	return m.Called(ctx, id, deletedBy).Error(0)
}

func (m *repoMock) ListUsers(ctx context.Context) ([]entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *repoMock) PaginateUsers(ctx context.Context, filter entities.UserPageFilter) (entities.Page[entities.User], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(entities.Page[entities.User]), args.Error(1)
}

func (m *repoMock) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) CreateRole(ctx context.Context, in entities.RoleCreate) (*entities.Role, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Role), args.Error(1)
}

func (m *repoMock) UpdateRole(ctx context.Context, id int64, patch entities.RolePatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *repoMock) DeleteRole(ctx context.Context, id, deletedBy int64) error {
	return m.Called(ctx, id, deletedBy).Error(0)
}

func (m *repoMock) ListRoles(ctx context.Context) ([]entities.Role, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Role), args.Error(1)
}

func (m *repoMock) PaginateRoles(ctx context.Context, req entities.PageRequest) (entities.Page[entities.Role], error) {
	args := m.Called(ctx, req)
	return args.Get(0).(entities.Page[entities.Role]), args.Error(1)
}

func (m *repoMock) CreateEmployee(ctx context.Context, in entities.EmployeeCreate) (*entities.Employee, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Employee), args.Error(1)
}

func (m *repoMock) UpdateEmployee(ctx context.Context, id int64, patch entities.EmployeePatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *repoMock) DeleteEmployee(ctx context.Context, id, deletedBy int64) error {
	return m.Called(ctx, id, deletedBy).Error(0)
}

func (m *repoMock) ListEmployees(ctx context.Context) ([]entities.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Employee), args.Error(1)
}

func (m *repoMock) PaginateEmployees(ctx context.Context, filter entities.EmployeePageFilter) (entities.Page[entities.Employee], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(entities.Page[entities.Employee]), args.Error(1)
}

func (m *repoMock) CreateProject(ctx context.Context, in entities.ProjectCreate) (*entities.Project, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *repoMock) UpdateProject(ctx context.Context, id int64, patch entities.ProjectPatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *repoMock) DeleteProject(ctx context.Context, id, deletedBy int64) error {
	return m.Called(ctx, id, deletedBy).Error(0)
}

func (m *repoMock) ListProjects(ctx context.Context) ([]entities.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Project), args.Error(1)
}

func (m *repoMock) GetProject(ctx context.Context, id int64) (*entities.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *repoMock) ProjectsByManager(ctx context.Context, managerID int64) ([]entities.Project, error) {
	args := m.Called(ctx, managerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Project), args.Error(1)
}

func (m *repoMock) PaginateProjects(ctx context.Context, filter entities.ProjectPageFilter) (entities.Page[entities.Project], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(entities.Page[entities.Project]), args.Error(1)
}

func (m *repoMock) CreateTask(ctx context.Context, in entities.TaskCreate) (*entities.Task, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) UpdateTask(ctx context.Context, id int64, patch entities.TaskPatch) (*entities.Task, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) DeleteTask(ctx context.Context, id, deletedBy int64) error {
	return m.Called(ctx, id, deletedBy).Error(0)
}

func (m *repoMock) ListTasks(ctx context.Context) ([]entities.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Task), args.Error(1)
}

func (m *repoMock) TasksByAssignee(ctx context.Context, employeeID int64) ([]entities.Task, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Task), args.Error(1)
}

func (m *repoMock) TasksByManager(ctx context.Context, managerID int64) ([]entities.Task, error) {
	args := m.Called(ctx, managerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Task), args.Error(1)
}

func (m *repoMock) PaginateTasks(ctx context.Context, filter entities.TaskPageFilter) (entities.Page[entities.Task], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(entities.Page[entities.Task]), args.Error(1)
}

func (m *repoMock) CreateLogTime(ctx context.Context, in entities.LogTimeCreate) (*entities.LogTime, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.LogTime), args.Error(1)
}

func (m *repoMock) UpdateLogTime(ctx context.Context, id int64, patch entities.LogTimePatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *repoMock) DeleteLogTime(ctx context.Context, id, deletedBy int64) error {
	return m.Called(ctx, id, deletedBy).Error(0)
}

func (m *repoMock) ListLogTimes(ctx context.Context) ([]entities.LogTime, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.LogTime), args.Error(1)
}

func (m *repoMock) LogTimesByTask(ctx context.Context, taskID int64) ([]entities.LogTime, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.LogTime), args.Error(1)
}

func (m *repoMock) PaginateLogTimes(ctx context.Context, filter entities.LogTimePageFilter) (entities.Page[entities.LogTime], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(entities.Page[entities.LogTime]), args.Error(1)
}

func (m *repoMock) CreateProjectEmployee(ctx context.Context, in entities.ProjectEmployeeCreate) error {
	return m.Called(ctx, in).Error(0)
}

func (m *repoMock) UpdateProjectEmployee(ctx context.Context, id int64, patch entities.ProjectEmployeePatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *repoMock) DeleteProjectEmployee(ctx context.Context, id, deletedBy int64) error {
	return m.Called(ctx, id, deletedBy).Error(0)
}

func (m *repoMock) ListProjectEmployees(ctx context.Context, status entities.StatusFilter) ([]entities.ProjectEmployee, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ProjectEmployee), args.Error(1)
}

func (m *repoMock) ProjectEmployeesByCompanyProject(ctx context.Context, filter entities.ProjectEmployeeFilter) ([]entities.ProjectEmployee, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ProjectEmployee), args.Error(1)
}

func (m *repoMock) CreateProjectRole(ctx context.Context, in entities.ProjectRoleCreate) error {
	return m.Called(ctx, in).Error(0)
}

func (m *repoMock) UpdateProjectRole(ctx context.Context, id int64, patch entities.ProjectRolePatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *repoMock) DeleteProjectRole(ctx context.Context, id, deletedBy int64) error {
	return m.Called(ctx, id, deletedBy).Error(0)
}

func (m *repoMock) ListProjectRoles(ctx context.Context) ([]entities.ProjectRole, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.ProjectRole), args.Error(1)
}

func newTestUsecase(t *testing.T, repo repository.Repository) *Usecase {
	t.Helper()

	tokens := token.NewService(config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour})
	return New(zap.NewNop().Sugar(), context.Background(), repo, tokens, time.Second)
}

func ptr[T any](v T) *T { return &v }

func TestCreateCompanyValidation(t *testing.T) {
	u := newTestUsecase(t, &repoMock{})

	_, err := u.CreateCompany(context.Background(), entities.CompanyCreate{Email: "x@y.z", ContactNo: "1"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = u.CreateCompany(context.Background(), entities.CompanyCreate{Name: "Acme", ContactNo: "1"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestCreateUserHashesPassword(t *testing.T) {
	repo := &repoMock{}
	var captured string
	repo.On("CreateUser", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { captured = args.String(2) }).
		Return(&entities.User{ID: 1, Email: "alice@acme.test"}, nil)

	u := newTestUsecase(t, repo)

	_, err := u.CreateUser(context.Background(), entities.UserCreate{
		Email:     "alice@acme.test",
		Password:  "s3cret",
		RoleID:    1,
		CompanyID: 1,
	})
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", captured)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(captured), []byte("s3cret")))
}

func TestUpdateUserEmptyPatch(t *testing.T) {
	u := newTestUsecase(t, &repoMock{})

	err := u.UpdateUser(context.Background(), 1, entities.UserPatch{UpdatedBy: 2}, "")
	require.ErrorIs(t, err, entities.ErrNoFieldsToUpdate)
}

func TestUpdateUserPasswordRehash(t *testing.T) {
	repo := &repoMock{}
	var captured entities.UserPatch
	repo.On("UpdateUser", mock.Anything, int64(1), mock.Anything).
		Run(func(args mock.Arguments) { captured = args.Get(2).(entities.UserPatch) }).
		Return(nil)

	u := newTestUsecase(t, repo)

	require.NoError(t, u.UpdateUser(context.Background(), 1, entities.UserPatch{UpdatedBy: 2}, "newpass"))
	require.NotNil(t, captured.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(*captured.PasswordHash), []byte("newpass")))
}

func TestLoginSuccess(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := &repoMock{}
	repo.On("GetUserByEmail", mock.Anything, "alice@acme.test").Return(&entities.User{
		ID:           7,
		Email:        "alice@acme.test",
		PasswordHash: string(hash),
		IsActive:     true,
		RoleID:       entities.RoleAdmin,
	}, nil)

	u := newTestUsecase(t, repo)

	tok, err := u.Login(context.Background(), entities.Credentials{Email: "alice@acme.test", Password: "s3cret"})
	require.NoError(t, err)
	require.Equal(t, "bearer", tok.TokenType)
	require.NotEmpty(t, tok.AccessToken)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := &repoMock{}
	repo.On("GetUserByEmail", mock.Anything, "alice@acme.test").Return(&entities.User{
		ID:           7,
		Email:        "alice@acme.test",
		PasswordHash: string(hash),
		IsActive:     true,
	}, nil)

	u := newTestUsecase(t, repo)

	_, err = u.Login(context.Background(), entities.Credentials{Email: "alice@acme.test", Password: "wrong"})
	require.ErrorIs(t, err, entities.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := &repoMock{}
	repo.On("GetUserByEmail", mock.Anything, "ghost@acme.test").Return(nil, entities.ErrUserNotFound)

	u := newTestUsecase(t, repo)

	_, err := u.Login(context.Background(), entities.Credentials{Email: "ghost@acme.test", Password: "whatever"})
	require.ErrorIs(t, err, entities.ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := &repoMock{}
	repo.On("GetUserByEmail", mock.Anything, "alice@acme.test").Return(&entities.User{
		ID:           7,
		Email:        "alice@acme.test",
		PasswordHash: string(hash),
		IsActive:     false,
	}, nil)

	u := newTestUsecase(t, repo)

	_, err = u.Login(context.Background(), entities.Credentials{Email: "alice@acme.test", Password: "s3cret"})
	require.ErrorIs(t, err, entities.ErrUserInactive)
}

func TestPaginateCompaniesNormalizes(t *testing.T) {
	repo := &repoMock{}
	repo.On("PaginateCompanies", mock.Anything, entities.PageRequest{Page: 1, Limit: 10}).
		Return(entities.Page[entities.Company]{Page: 1, Limit: 10}, nil)

	u := newTestUsecase(t, repo)

	_, err := u.PaginateCompanies(context.Background(), entities.PageRequest{Page: 0, Limit: 0})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateProjectDateOrder(t *testing.T) {
	u := newTestUsecase(t, &repoMock{})

	_, err := u.CreateProject(context.Background(), entities.ProjectCreate{
		Name:      "Apollo",
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestUpdateProjectDateOrder(t *testing.T) {
	stored := &entities.Project{
		ID:        4,
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC),
	}

	repo := &repoMock{}
	repo.On("GetProject", mock.Anything, int64(4)).Return(stored, nil)
	repo.On("UpdateProject", mock.Anything, int64(4), mock.Anything).Return(nil)

	u := newTestUsecase(t, repo)

	err := u.UpdateProject(context.Background(), 4, entities.ProjectPatch{
		EndDate:   ptr(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)),
		UpdatedBy: 2,
	})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	err = u.UpdateProject(context.Background(), 4, entities.ProjectPatch{
		StartDate: ptr(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)),
		UpdatedBy: 2,
	})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	err = u.UpdateProject(context.Background(), 4, entities.ProjectPatch{
		EndDate:   ptr(time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)),
		UpdatedBy: 2,
	})
	require.NoError(t, err)
}

func TestUpdateTaskEmptyPatch(t *testing.T) {
	u := newTestUsecase(t, &repoMock{})

	_, err := u.UpdateTask(context.Background(), 1, entities.TaskPatch{UpdatedBy: 2})
	require.ErrorIs(t, err, entities.ErrNoFieldsToUpdate)
}

func TestUpdateTaskDelegates(t *testing.T) {
	repo := &repoMock{}
	patch := entities.TaskPatch{Status: ptr("Done"), UpdatedBy: 2}
	repo.On("UpdateTask", mock.Anything, int64(9), patch).
		Return(&entities.Task{ID: 9, Status: ptr("Done")}, nil)

	u := newTestUsecase(t, repo)

	updated, err := u.UpdateTask(context.Background(), 9, patch)
	require.NoError(t, err)
	require.Equal(t, "Done", *updated.Status)
}

func TestCreateProjectEmployeeValidation(t *testing.T) {
	u := newTestUsecase(t, &repoMock{})

	err := u.CreateProjectEmployee(context.Background(), entities.ProjectEmployeeCreate{EmpID: 1, ProjectID: 2})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestPaginateEmployeesRequiresCompany(t *testing.T) {
	u := newTestUsecase(t, &repoMock{})

	_, err := u.PaginateEmployees(context.Background(), entities.EmployeePageFilter{
		PageRequest: entities.PageRequest{Page: 1, Limit: 10},
	})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestCreateLogTimeValidation(t *testing.T) {
	u := newTestUsecase(t, &repoMock{})

	_, err := u.CreateLogTime(context.Background(), entities.LogTimeCreate{EmpID: 1, TaskID: 2})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}
