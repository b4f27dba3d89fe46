// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"site-editor-api/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// EditorInterface exposes the editor roster record store.
type EditorInterface interface {
	CreateEditor(ctx context.Context, editor entities.Editor) (*entities.Editor, error)
	FindEditorsByEmail(ctx context.Context, email string) ([]entities.Editor, error)
	ListEditors(ctx context.Context) ([]entities.Editor, error)
	GetEditor(ctx context.Context, id string) (*entities.Editor, error)
	UpdateEditor(ctx context.Context, editor entities.Editor) (*entities.Editor, error)
	DeleteEditor(ctx context.Context, id string) error
}

// PageInterface exposes page files kept in a version control host.
type PageInterface interface {
	GetPage(ctx context.Context, path, prBody string) (*entities.Page, error)
	PendingEdit(ctx context.Context, prBody string) (*entities.PendingEdit, error)
	SavePage(ctx context.Context, path, title, text string, existingRef *string, prBody string) (*entities.Page, error)
}
