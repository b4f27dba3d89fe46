package usecase

import (
	"context"

	"site-editor-api/internal/entities"
)

// AuthUsecaseInterface decides whether a request may use the editor.
type AuthUsecaseInterface interface {
	Authorize(ctx context.Context, authorization string) entities.AuthDecision
}

// EditorUsecaseInterface abstracts roster operations for delivery layer.
type EditorUsecaseInterface interface {
	ListEditors(ctx context.Context) ([]entities.Editor, error)
	CreateEditor(ctx context.Context, name, email string) (*entities.Editor, error)
	UpdateEditor(ctx context.Context, id string, patch entities.EditorPatch) (*entities.Editor, error)
	DeleteEditor(ctx context.Context, id string) error
}

// PageUsecaseInterface abstracts reading and publishing page edits.
type PageUsecaseInterface interface {
	ReadPage(ctx context.Context, page entities.PageSpec) (*entities.Page, error)
	PublishPageEdit(ctx context.Context, page entities.PageSpec, rawText string, ref *string) (*entities.Page, error)
}
