package usecase

import (
	"context"
	"time"

	"site-editor-api/internal/repository"
	"site-editor-api/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	AuthUsecaseInterface
	EditorUsecaseInterface
	PageUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	pages repository.PageInterface,
	verifier domain.IdentityVerifier,
	formatter domain.PageFormatter,
	clientID string,
	timeout time.Duration,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, pages, verifier, formatter, clientID, timeout)
}
