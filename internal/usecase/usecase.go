package usecase

import (
	"context"
	"time"

	"github.com/Harshanand45/WorkNest/internal/repository"
	"github.com/Harshanand45/WorkNest/internal/token"
	"github.com/Harshanand45/WorkNest/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	AuthUsecaseInterface
	CompanyUsecaseInterface
	UserUsecaseInterface
	RoleUsecaseInterface
	EmployeeUsecaseInterface
	ProjectUsecaseInterface
	TaskUsecaseInterface
	LogTimeUsecaseInterface
	ProjectEmployeeUsecaseInterface
	ProjectRoleUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, tokens *token.Service, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, tokens, timeout)
}
