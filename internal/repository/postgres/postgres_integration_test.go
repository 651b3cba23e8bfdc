package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/Harshanand45/WorkNest/config"
	"github.com/Harshanand45/WorkNest/internal/entities"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func ptr[T any](v T) *T { return &v }

func TestRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	company, err := repo.CreateCompany(ctx, entities.CompanyCreate{
		Name:      "Acme",
		ContactNo: "555-0100",
		Email:     "office@acme.test",
		CreatedBy: 1,
	})
	require.NoError(t, err)
	require.NotZero(t, company.ID)
	require.True(t, company.IsActive)

	_, err = repo.CreateCompany(ctx, entities.CompanyCreate{
		Name:      "Acme",
		ContactNo: "555-0199",
		Email:     "other@acme.test",
		CreatedBy: 1,
	})
	require.ErrorIs(t, err, entities.ErrCompanyExists)

	role, err := repo.CreateRole(ctx, entities.RoleCreate{Name: "Admin", CompanyID: company.ID, CreatedBy: 1})
	require.NoError(t, err)

	user, err := repo.CreateUser(ctx, entities.UserCreate{
		Email:     "alice@acme.test",
		RoleID:    role.ID,
		CompanyID: company.ID,
		CreatedBy: 1,
	}, "$2a$10$fakefakefakefakefakefa.fakefakefakefakefakefakefakefak")
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	_, err = repo.CreateUser(ctx, entities.UserCreate{
		Email:     "alice@acme.test",
		RoleID:    role.ID,
		CompanyID: company.ID,
		CreatedBy: 1,
	}, "hash")
	require.ErrorIs(t, err, entities.ErrEmailExists)

	byEmail, err := repo.GetUserByEmail(ctx, "alice@acme.test")
	require.NoError(t, err)
	require.Equal(t, user.ID, byEmail.ID)
	require.NotEmpty(t, byEmail.PasswordHash)

	employee, err := repo.CreateEmployee(ctx, entities.EmployeeCreate{
		Name:        "Bob",
		RoleID:      role.ID,
		Phone:       "555-0101",
		Address:     "Main St 1",
		Email:       "bob@acme.test",
		Description: "engineer",
		CompanyID:   company.ID,
		CreatedBy:   1,
	})
	require.NoError(t, err)

	_, err = repo.CreateEmployee(ctx, entities.EmployeeCreate{
		Name:        "Bobby",
		RoleID:      role.ID,
		Phone:       "555-0101",
		Address:     "Main St 2",
		Email:       "bobby@acme.test",
		Description: "engineer",
		CompanyID:   company.ID,
		CreatedBy:   1,
	})
	require.ErrorIs(t, err, entities.ErrEmployeeExists)

	project, err := repo.CreateProject(ctx, entities.ProjectCreate{
		Name:      "Apollo",
		StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		ManagerID: employee.ID,
		Priority:  "High",
		Status:    "Open",
		CompanyID: company.ID,
		CreatedBy: employee.ID,
	})
	require.NoError(t, err)

	_, err = repo.CreateProject(ctx, entities.ProjectCreate{
		Name:      "Apollo",
		StartDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC),
		ManagerID: employee.ID,
		Priority:  "Low",
		Status:    "Open",
		CompanyID: company.ID,
		CreatedBy: employee.ID,
	})
	require.ErrorIs(t, err, entities.ErrProjectExists)

	byManager, err := repo.ProjectsByManager(ctx, employee.ID)
	require.NoError(t, err)
	require.Len(t, byManager, 1)

	task, err := repo.CreateTask(ctx, entities.TaskCreate{
		Name:       "Design schema",
		ProjectID:  project.ID,
		AssignedTo: &employee.ID,
		Deadline:   ptr(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)),
		Priority:   ptr("High"),
		Status:     ptr("Open"),
		CompanyID:  company.ID,
		CreatedBy:  employee.ID,
	})
	require.NoError(t, err)

	assigned, err := repo.TasksByAssignee(ctx, employee.ID)
	require.NoError(t, err)
	require.Len(t, assigned, 1)

	managed, err := repo.TasksByManager(ctx, employee.ID)
	require.NoError(t, err)
	require.Len(t, managed, 1)

	updatedTask, err := repo.UpdateTask(ctx, task.ID, entities.TaskPatch{
		Status:    ptr("In Progress"),
		UpdatedBy: employee.ID,
	})
	require.NoError(t, err)
	require.Equal(t, "In Progress", *updatedTask.Status)
	require.NotNil(t, updatedTask.UpdatedOn)

	logEntry, err := repo.CreateLogTime(ctx, entities.LogTimeCreate{
		EmpID:        employee.ID,
		TaskID:       task.ID,
		Date:         time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
		CompanyID:    company.ID,
		MinutesSpent: ptr(90),
		CreatedBy:    employee.ID,
	})
	require.NoError(t, err)

	byTask, err := repo.LogTimesByTask(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, byTask, 1)
	require.Equal(t, logEntry.ID, byTask[0].ID)

	require.NoError(t, repo.CreateProjectRole(ctx, entities.ProjectRoleCreate{
		Name:      "Reviewer",
		CompanyID: company.ID,
		CreatedBy: employee.ID,
	}))
	projectRoles, err := repo.ListProjectRoles(ctx)
	require.NoError(t, err)
	require.Len(t, projectRoles, 1)

	require.NoError(t, repo.CreateProjectEmployee(ctx, entities.ProjectEmployeeCreate{
		EmpID:         employee.ID,
		ProjectID:     project.ID,
		CompanyID:     company.ID,
		ProjectRoleID: projectRoles[0].ID,
		CreatedBy:     employee.ID,
	}))
	assignments, err := repo.ProjectEmployeesByCompanyProject(ctx, entities.ProjectEmployeeFilter{
		CompanyID: company.ID,
		ProjectID: project.ID,
		Status:    entities.StatusActive,
	})
	require.NoError(t, err)
	require.Len(t, assignments, 1)

	_, err = repo.ProjectEmployeesByCompanyProject(ctx, entities.ProjectEmployeeFilter{
		CompanyID: 999999,
		ProjectID: project.ID,
		Status:    entities.StatusActive,
	})
	require.ErrorIs(t, err, entities.ErrCompanyNotFound)
	_, err = repo.ProjectEmployeesByCompanyProject(ctx, entities.ProjectEmployeeFilter{
		CompanyID: company.ID,
		ProjectID: 999999,
		Status:    entities.StatusActive,
	})
	require.ErrorIs(t, err, entities.ErrProjectNotFound)

	require.NoError(t, repo.UpdateCompany(ctx, company.ID, entities.CompanyPatch{
		Address:   ptr("New HQ"),
		UpdatedBy: user.ID,
	}))
	companies, err := repo.ListCompanies(ctx, entities.StatusActive)
	require.NoError(t, err)
	require.Len(t, companies, 2)
	acme := companies[1]
	require.Equal(t, company.ID, acme.ID)
	require.Equal(t, "New HQ", *acme.Address)
	require.NotNil(t, acme.UpdatedOn)
	require.Equal(t, user.ID, *acme.UpdatedBy)

	const ghostActor int64 = 999999

	_, err = repo.CreateCompany(ctx, entities.CompanyCreate{
		Name:      "Ghost Co",
		ContactNo: "555-0666",
		Email:     "ghost@acme.test",
		CreatedBy: ghostActor,
	})
	require.ErrorIs(t, err, entities.ErrUserNotFound)
	require.ErrorIs(t, repo.UpdateCompany(ctx, company.ID, entities.CompanyPatch{
		Address:   ptr("Nowhere"),
		UpdatedBy: ghostActor,
	}), entities.ErrUserNotFound)
	require.ErrorIs(t, repo.DeleteCompany(ctx, company.ID, ghostActor), entities.ErrUserNotFound)

	_, err = repo.CreateTask(ctx, entities.TaskCreate{
		Name:      "Orphan task",
		ProjectID: project.ID,
		CompanyID: company.ID,
		CreatedBy: ghostActor,
	})
	require.ErrorIs(t, err, entities.ErrEmployeeNotFound)
	require.ErrorIs(t, repo.DeleteTask(ctx, task.ID, ghostActor), entities.ErrEmployeeNotFound)

	// The refused delete must not have touched the rows.
	companies, err = repo.ListCompanies(ctx, entities.StatusActive)
	require.NoError(t, err)
	require.Len(t, companies, 2)
	require.Equal(t, "New HQ", *companies[1].Address)
	stillAssigned, err := repo.TasksByAssignee(ctx, employee.ID)
	require.NoError(t, err)
	require.Len(t, stillAssigned, 1)

	require.NoError(t, repo.DeleteLogTime(ctx, logEntry.ID, user.ID))
	require.ErrorIs(t, repo.DeleteLogTime(ctx, logEntry.ID, user.ID), entities.ErrLogTimeNotFound)

	require.NoError(t, repo.DeleteTask(ctx, task.ID, employee.ID))
	_, err = repo.UpdateTask(ctx, task.ID, entities.TaskPatch{Status: ptr("Closed"), UpdatedBy: employee.ID})
	require.ErrorIs(t, err, entities.ErrTaskNotFound)

	require.NoError(t, repo.DeleteCompany(ctx, company.ID, user.ID))
	inactive, err := repo.ListCompanies(ctx, entities.StatusInactive)
	require.NoError(t, err)
	require.Len(t, inactive, 1)
	require.NotNil(t, inactive[0].DeletedOn)
	require.Equal(t, user.ID, *inactive[0].DeletedBy)
}

func TestPaginationIntegration(t *testing.T) {
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })

	seeded, err := repo.PaginateCompanies(ctx, entities.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, int64(1), seeded.Total)
	require.Len(t, seeded.Data, 1)

	empty, err := repo.PaginateEmployees(ctx, entities.EmployeePageFilter{
		PageRequest: entities.PageRequest{Page: 1, Limit: 10},
		CompanyID:   999999,
	})
	require.NoError(t, err)
	require.Zero(t, empty.Total)
	require.Zero(t, empty.Page)
	require.Empty(t, empty.Data)

	for i := 0; i < 5; i++ {
		_, err := repo.CreateCompany(ctx, entities.CompanyCreate{
			Name:      "Company " + strconv.Itoa(i),
			ContactNo: "555-010" + strconv.Itoa(i),
			Email:     "c" + strconv.Itoa(i) + "@test.test",
			CreatedBy: 1,
		})
		require.NoError(t, err)
	}

	page1, err := repo.PaginateCompanies(ctx, entities.PageRequest{Page: 1, Limit: 2})
	require.NoError(t, err)
	require.Equal(t, int64(6), page1.Total)
	require.Equal(t, int64(3), page1.TotalPages)
	require.Len(t, page1.Data, 2)
	require.Equal(t, "Company 0", page1.Data[1].Name)

	page3, err := repo.PaginateCompanies(ctx, entities.PageRequest{Page: 3, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page3.Data, 2)
	require.Equal(t, "Company 4", page3.Data[1].Name)

	company := page1.Data[1]
	role, err := repo.CreateRole(ctx, entities.RoleCreate{Name: "Dev", CompanyID: company.ID, CreatedBy: 1})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := repo.CreateEmployee(ctx, entities.EmployeeCreate{
			Name:        "Emp " + strconv.Itoa(i),
			RoleID:      role.ID,
			Phone:       "555-020" + strconv.Itoa(i),
			Address:     "Street",
			Email:       "e" + strconv.Itoa(i) + "@test.test",
			Description: "staff",
			CompanyID:   company.ID,
			CreatedBy:   1,
		})
		require.NoError(t, err)
	}

	emps, err := repo.PaginateEmployees(ctx, entities.EmployeePageFilter{
		PageRequest: entities.PageRequest{Page: 1, Limit: 10},
		CompanyID:   company.ID,
	})
	require.NoError(t, err)
	require.Equal(t, int64(3), emps.Total)

	filtered, err := repo.PaginateEmployees(ctx, entities.EmployeePageFilter{
		PageRequest: entities.PageRequest{Page: 1, Limit: 10},
		CompanyID:   company.ID,
		Search:      "Emp 1",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), filtered.Total)
	require.Equal(t, "Emp 1", filtered.Data[0].Name)
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=worknest_db",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 8080, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "worknest_db",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", "host=localhost port="+hostPort+" user=postgres password=postgres dbname=worknest_db sslmode=disable")
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
