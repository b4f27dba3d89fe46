// Package domain contains application Usecases orchestrating the editor
// roster, the access gate and page publishing.
package domain

import (
	"context"
	"time"

	"site-editor-api/internal/repository"

	"go.uber.org/zap"
)

// IdentityVerifier resolves an identity token to the email it was issued to.
// Rejected tokens must match entities.ErrInvalidToken.
type IdentityVerifier interface {
	Check(ctx context.Context, token, clientID string) (string, error)
}

// PageFormatter renders raw editor text into the page's stored document.
type PageFormatter interface {
	Format(text, title, permalink string) (string, error)
}

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx       context.Context
	log       *zap.SugaredLogger
	repo      repository.Repository
	pages     repository.PageInterface
	verifier  IdentityVerifier
	formatter PageFormatter
	clientID  string
	timeout   time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	pages repository.PageInterface,
	verifier IdentityVerifier,
	formatter PageFormatter,
	clientID string,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:       ctx,
		log:       log,
		repo:      repo,
		pages:     pages,
		verifier:  verifier,
		formatter: formatter,
		clientID:  clientID,
		timeout:   timeout,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
