package unitofwork

import (
	"context"

	"eveshield-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ReportRepository() contract.ReportRepository
	LawyerRepository() contract.LawyerRepository
	TherapistRepository() contract.TherapistRepository
	ArticleRepository() contract.ArticleRepository
	NotificationRepository() contract.NotificationRepository
}
