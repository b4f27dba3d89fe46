package domain

import (
	"context"

	"site-editor-api/internal/entities"
	"site-editor-api/internal/repository"

	"github.com/stretchr/testify/mock"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) CreateEditor(ctx context.Context, editor entities.Editor) (*entities.Editor, error) {
	args := m.Called(ctx, editor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Editor), args.Error(1)
}

func (m *repoMock) FindEditorsByEmail(ctx context.Context, email string) ([]entities.Editor, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Editor), args.Error(1)
}

func (m *repoMock) ListEditors(ctx context.Context) ([]entities.Editor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Editor), args.Error(1)
}

func (m *repoMock) GetEditor(ctx context.Context, id string) (*entities.Editor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Editor), args.Error(1)
}

func (m *repoMock) UpdateEditor(ctx context.Context, editor entities.Editor) (*entities.Editor, error) {
	args := m.Called(ctx, editor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Editor), args.Error(1)
}

func (m *repoMock) DeleteEditor(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type pagesMock struct{ mock.Mock }

var _ repository.PageInterface = (*pagesMock)(nil)

func (m *pagesMock) GetPage(ctx context.Context, path, prBody string) (*entities.Page, error) {
	args := m.Called(ctx, path, prBody)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Page), args.Error(1)
}

func (m *pagesMock) PendingEdit(ctx context.Context, prBody string) (*entities.PendingEdit, error) {
	args := m.Called(ctx, prBody)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PendingEdit), args.Error(1)
}

func (m *pagesMock) SavePage(ctx context.Context, path, title, text string, existingRef *string, prBody string) (*entities.Page, error) {
	args := m.Called(ctx, path, title, text, existingRef, prBody)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Page), args.Error(1)
}

type verifierMock struct{ mock.Mock }

func (m *verifierMock) Check(ctx context.Context, token, clientID string) (string, error) {
	args := m.Called(ctx, token, clientID)
	return args.String(0), args.Error(1)
}

type formatterMock struct{ mock.Mock }

func (m *formatterMock) Format(text, title, permalink string) (string, error) {
	args := m.Called(text, title, permalink)
	return args.String(0), args.Error(1)
}
