// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"site-editor-api/config"
	"site-editor-api/internal/repository/github"
	"site-editor-api/internal/repository/postgres"

	"go.uber.org/zap"
)

// Repository aggregates the roster persistence interfaces.
type Repository interface {
	LifecycleInterface
	EditorInterface
}

// New constructs repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	switch name {
	case "postgres":
		return postgres.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}

// NewPages constructs the page store backend by name.
func NewPages(name string, log *zap.SugaredLogger, cfg *config.Config) (PageInterface, error) {
	switch name {
	case "github":
		return github.New(log, cfg.GitHub), nil
	default:
		return nil, fmt.Errorf("unknown page backend: %s", name)
	}
}
