package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"site-editor-api/internal/entities"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var aboutPage = entities.PageSpec{
	Name:      "about",
	FilePath:  "about.md",
	Title:     "About",
	Permalink: "/about/",
	PRBody:    "Edits from the site editor.",
}

func newPageUsecase(pages *pagesMock, formatter *formatterMock) *Usecase {
	return New(zap.NewNop().Sugar(), context.Background(), &repoMock{}, pages, &verifierMock{}, formatter, "client-id", time.Second)
}

func pendingPage(contents, ref, url string) *entities.Page {
	return &entities.Page{Title: "About", Permalink: "/about/", Contents: contents, GitHubRef: &ref, PullRequestURL: &url}
}

func TestReadPageDelegates(t *testing.T) {
	pages := &pagesMock{}
	expected := &entities.Page{Title: "About", Permalink: "/about/", Contents: "# My Contents"}
	pages.On("GetPage", mock.Anything, "about.md", aboutPage.PRBody).Return(expected, nil)

	page, err := newPageUsecase(pages, &formatterMock{}).ReadPage(context.Background(), aboutPage)
	require.NoError(t, err)
	require.Equal(t, expected, page)
}

func TestPublishPageEditRejectsEmptyText(t *testing.T) {
	pages, formatter := &pagesMock{}, &formatterMock{}
	uc := newPageUsecase(pages, formatter)

	for _, text := range []string{"", "  \n\t"} {
		_, err := uc.PublishPageEdit(context.Background(), aboutPage, text, nil)
		require.ErrorIs(t, err, entities.ErrInvalidArgument)
		require.EqualError(t, err, "The about page cannot be edited to have no text.")
	}
	formatter.AssertNotCalled(t, "Format", mock.Anything, mock.Anything, mock.Anything)
	pages.AssertNotCalled(t, "PendingEdit", mock.Anything, mock.Anything)
	pages.AssertNotCalled(t, "SavePage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPublishPageEditStartsNewEdit(t *testing.T) {
	pages, formatter := &pagesMock{}, &formatterMock{}
	formatter.On("Format", "Hello", "About", "/about/").Return("doc", nil)
	pages.On("PendingEdit", mock.Anything, aboutPage.PRBody).Return(nil, nil)
	pages.On("SavePage", mock.Anything, "about.md", "About", "doc", (*string)(nil), aboutPage.PRBody).
		Return(pendingPage("Hello", "edit-about-1", "https://github.com/o/r/pull/1"), nil)

	page, err := newPageUsecase(pages, formatter).PublishPageEdit(context.Background(), aboutPage, "Hello", nil)
	require.NoError(t, err)
	require.Equal(t, "edit-about-1", *page.GitHubRef)
	pages.AssertExpectations(t)
}

func TestPublishPageEditReusesPendingEdit(t *testing.T) {
	pages, formatter := &pagesMock{}, &formatterMock{}
	formatter.On("Format", "Hello", "About", "/about/").Return("doc", nil)
	pages.On("PendingEdit", mock.Anything, aboutPage.PRBody).
		Return(&entities.PendingEdit{Ref: "edit-about-1", PullRequestURL: "https://github.com/o/r/pull/1"}, nil)
	pages.On("SavePage", mock.Anything, "about.md", "About", "doc", mock.MatchedBy(func(ref *string) bool {
		return ref != nil && *ref == "edit-about-1"
	}), aboutPage.PRBody).Return(pendingPage("Hello", "edit-about-1", "https://github.com/o/r/pull/1"), nil)

	_, err := newPageUsecase(pages, formatter).PublishPageEdit(context.Background(), aboutPage, "Hello", nil)
	require.NoError(t, err)
	pages.AssertExpectations(t)
}

func TestPublishPageEditUsesClientRef(t *testing.T) {
	pages, formatter := &pagesMock{}, &formatterMock{}
	ref := "edit-about-2"
	formatter.On("Format", "Hello", "About", "/about/").Return("doc", nil)
	pages.On("SavePage", mock.Anything, "about.md", "About", "doc", &ref, aboutPage.PRBody).
		Return(pendingPage("Hello", ref, "https://github.com/o/r/pull/2"), nil)

	_, err := newPageUsecase(pages, formatter).PublishPageEdit(context.Background(), aboutPage, "Hello", &ref)
	require.NoError(t, err)
	pages.AssertNotCalled(t, "PendingEdit", mock.Anything, mock.Anything)
}

func TestPublishPageEditPropagatesPublishError(t *testing.T) {
	pages, formatter := &pagesMock{}, &formatterMock{}
	formatter.On("Format", mock.Anything, mock.Anything, mock.Anything).Return("doc", nil)
	pages.On("PendingEdit", mock.Anything, mock.Anything).Return(nil, nil)
	pages.On("SavePage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, entities.Wrap(entities.ErrPublish, errors.New("Bad credentials")))

	_, err := newPageUsecase(pages, formatter).PublishPageEdit(context.Background(), aboutPage, "Hello", nil)
	require.ErrorIs(t, err, entities.ErrPublish)
	require.EqualError(t, err, "Bad credentials")
}
