// Package github stores site pages in a GitHub repository and proposes
// edits to them as pull requests.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"site-editor-api/config"
	"site-editor-api/internal/entities"
	"site-editor-api/internal/pageformat"

	gh "github.com/google/go-github/v66/github"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	branchPrefix    = "edit-"
	rollbackTimeout = 10 * time.Second
	listPageSize    = 100
)

type gitService interface {
	GetRef(ctx context.Context, owner, repo, ref string) (*gh.Reference, *gh.Response, error)
	CreateRef(ctx context.Context, owner, repo string, ref *gh.Reference) (*gh.Reference, *gh.Response, error)
	DeleteRef(ctx context.Context, owner, repo, ref string) (*gh.Response, error)
}

type contentService interface {
	GetContents(ctx context.Context, owner, repo, path string, opts *gh.RepositoryContentGetOptions) (*gh.RepositoryContent, []*gh.RepositoryContent, *gh.Response, error)
	CreateFile(ctx context.Context, owner, repo, path string, opts *gh.RepositoryContentFileOptions) (*gh.RepositoryContentResponse, *gh.Response, error)
	UpdateFile(ctx context.Context, owner, repo, path string, opts *gh.RepositoryContentFileOptions) (*gh.RepositoryContentResponse, *gh.Response, error)
}

type pullService interface {
	List(ctx context.Context, owner, repo string, opts *gh.PullRequestListOptions) ([]*gh.PullRequest, *gh.Response, error)
	Create(ctx context.Context, owner, repo string, pull *gh.NewPullRequest) (*gh.PullRequest, *gh.Response, error)
}

// PageStore reads page files from the base branch or from the branch of a
// pending edit, and publishes edits as branch + commit + pull request.
type PageStore struct {
	log      *zap.SugaredLogger
	git      gitService
	contents contentService
	pulls    pullService
	owner    string
	repo     string
	base     string
}

// New creates a PageStore authenticated with the configured token.
func New(log *zap.SugaredLogger, cfg config.GitHubConfig) *PageStore {
	client := gh.NewClient(&http.Client{Timeout: cfg.Timeout}).WithAuthToken(cfg.Token)
	return newPageStore(log, client.Git, client.Repositories, client.PullRequests, cfg)
}

func newPageStore(log *zap.SugaredLogger, git gitService, contents contentService, pulls pullService, cfg config.GitHubConfig) *PageStore {
	base := cfg.BaseBranch
	if base == "" {
		base = "master"
	}
	return &PageStore{
		log:      log.Named("repo.github"),
		git:      git,
		contents: contents,
		pulls:    pulls,
		owner:    cfg.Owner,
		repo:     cfg.Repo,
		base:     base,
	}
}

// GetPage reads the page at path, preferring the content of a pending edit.
func (s *PageStore) GetPage(ctx context.Context, path, prBody string) (*entities.Page, error) {
	pending, err := s.PendingEdit(ctx, prBody)
	if err != nil {
		return nil, err
	}

	ref := s.base
	if pending != nil {
		ref = pending.Ref
	}

	raw, _, err := s.readFile(ctx, path, ref)
	if err != nil {
		return nil, entities.Wrap(entities.ErrRemoteStore, err)
	}
	if raw == nil {
		return nil, entities.Errorf(entities.ErrRemoteStore, "%s does not exist on %s", path, ref)
	}

	page, err := pageFrom(*raw)
	if err != nil {
		return nil, entities.Wrap(entities.ErrRemoteStore, err)
	}
	if pending != nil {
		page.GitHubRef = &pending.Ref
		page.PullRequestURL = &pending.PullRequestURL
	}
	return page, nil
}

// PendingEdit returns the open pull request whose body matches prBody, or nil.
func (s *PageStore) PendingEdit(ctx context.Context, prBody string) (*entities.PendingEdit, error) {
	want := strings.TrimSpace(prBody)
	opts := &gh.PullRequestListOptions{
		State:       "open",
		Base:        s.base,
		ListOptions: gh.ListOptions{PerPage: listPageSize},
	}
	for {
		pulls, resp, err := s.pulls.List(ctx, s.owner, s.repo, opts)
		if err != nil {
			s.log.Errorw("failed to list pull requests", "error", err)
			return nil, entities.Wrap(entities.ErrRemoteStore, err)
		}
		for _, pr := range pulls {
			if strings.TrimSpace(pr.GetBody()) == want {
				return &entities.PendingEdit{Ref: pr.GetHead().GetRef(), PullRequestURL: pr.GetHTMLURL()}, nil
			}
		}
		if resp == nil || resp.NextPage == 0 {
			return nil, nil
		}
		opts.Page = resp.NextPage
	}
}

// SavePage commits text to path. Without a pending ref it opens a new branch
// and pull request; with one it commits onto that branch.
func (s *PageStore) SavePage(ctx context.Context, path, title, text string, existingRef *string, prBody string) (*entities.Page, error) {
	if existingRef != nil && *existingRef != "" {
		url, err := s.openPullURL(ctx, *existingRef, prBody)
		if err != nil {
			return nil, entities.Wrap(entities.ErrPublish, err)
		}
		if url != "" {
			if err := s.commit(ctx, path, title, text, *existingRef); err != nil {
				return nil, entities.Wrap(entities.ErrPublish, err)
			}
			s.log.Infow("page edit appended", "path", path, "ref", *existingRef)
			return pageWithEdit(text, *existingRef, url)
		}
		s.log.Infow("ref is not a pending edit of this page, starting a new edit", "ref", *existingRef)
	}

	branch, err := s.createBranch(ctx, title)
	if err != nil {
		return nil, entities.Wrap(entities.ErrPublish, err)
	}

	if err := s.commit(ctx, path, title, text, branch); err != nil {
		s.rollback(ctx, branch)
		return nil, entities.Wrap(entities.ErrPublish, err)
	}

	pr, _, err := s.pulls.Create(ctx, s.owner, s.repo, &gh.NewPullRequest{
		Title: gh.String(changeTitle(title)),
		Head:  gh.String(branch),
		Base:  gh.String(s.base),
		Body:  gh.String(prBody),
	})
	if err != nil {
		s.log.Errorw("failed to open pull request", "error", err, "branch", branch)
		s.rollback(ctx, branch)
		return nil, entities.Wrap(entities.ErrPublish, err)
	}

	s.log.Infow("page edit proposed", "path", path, "ref", branch, "pull_request", pr.GetHTMLURL())
	return pageWithEdit(text, branch, pr.GetHTMLURL())
}

// openPullURL returns the URL of the open pull request from branch into the
// base branch whose body is prBody. Pull requests of other edits do not count.
func (s *PageStore) openPullURL(ctx context.Context, branch, prBody string) (string, error) {
	pulls, _, err := s.pulls.List(ctx, s.owner, s.repo, &gh.PullRequestListOptions{
		State: "open",
		Head:  s.owner + ":" + branch,
		Base:  s.base,
	})
	if err != nil {
		return "", err
	}
	want := strings.TrimSpace(prBody)
	for _, pr := range pulls {
		if pr.GetHead().GetRef() != branch || pr.GetBase().GetRef() != s.base {
			continue
		}
		if strings.TrimSpace(pr.GetBody()) == want {
			return pr.GetHTMLURL(), nil
		}
	}
	return "", nil
}

func (s *PageStore) createBranch(ctx context.Context, title string) (string, error) {
	baseRef, _, err := s.git.GetRef(ctx, s.owner, s.repo, "heads/"+s.base)
	if err != nil {
		s.log.Errorw("failed to read base branch", "error", err, "base", s.base)
		return "", err
	}

	branch := branchName(title)
	_, _, err = s.git.CreateRef(ctx, s.owner, s.repo, &gh.Reference{
		Ref:    gh.String("refs/heads/" + branch),
		Object: &gh.GitObject{SHA: baseRef.GetObject().SHA},
	})
	if err != nil {
		s.log.Errorw("failed to create branch", "error", err, "branch", branch)
		return "", err
	}
	return branch, nil
}

func (s *PageStore) commit(ctx context.Context, path, title, text, branch string) error {
	_, sha, err := s.readFile(ctx, path, branch)
	if err != nil {
		return err
	}

	opts := &gh.RepositoryContentFileOptions{
		Message: gh.String(changeTitle(title)),
		Content: []byte(text),
		Branch:  gh.String(branch),
	}
	if sha != "" {
		opts.SHA = gh.String(sha)
		_, _, err = s.contents.UpdateFile(ctx, s.owner, s.repo, path, opts)
	} else {
		_, _, err = s.contents.CreateFile(ctx, s.owner, s.repo, path, opts)
	}
	if err != nil {
		s.log.Errorw("failed to commit page", "error", err, "path", path, "branch", branch)
		return err
	}
	return nil
}

// readFile returns the file content and blob sha at ref; nil content means the file does not exist.
func (s *PageStore) readFile(ctx context.Context, path, ref string) (*string, string, error) {
	file, _, _, err := s.contents.GetContents(ctx, s.owner, s.repo, path, &gh.RepositoryContentGetOptions{Ref: ref})
	if err != nil {
		if isNotFound(err) {
			return nil, "", nil
		}
		s.log.Errorw("failed to read page", "error", err, "path", path, "ref", ref)
		return nil, "", err
	}
	if file == nil {
		return nil, "", fmt.Errorf("%s is a directory", path)
	}
	content, err := file.GetContent()
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", path, err)
	}
	return &content, file.GetSHA(), nil
}

// rollback deletes a branch whose edit could not be completed.
func (s *PageStore) rollback(ctx context.Context, branch string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rollbackTimeout)
	defer cancel()

	if _, err := s.git.DeleteRef(ctx, s.owner, s.repo, "heads/"+branch); err != nil {
		s.log.Errorw("failed to delete branch of aborted edit", "error", err, "branch", branch)
		return
	}
	s.log.Infow("aborted edit branch deleted", "branch", branch)
}

func pageFrom(raw string) (*entities.Page, error) {
	doc, err := pageformat.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &entities.Page{Title: doc.Title, Permalink: doc.Permalink, Contents: doc.Contents}, nil
}

func pageWithEdit(text, ref, url string) (*entities.Page, error) {
	page, err := pageFrom(text)
	if err != nil {
		return nil, entities.Wrap(entities.ErrPublish, err)
	}
	page.GitHubRef = &ref
	page.PullRequestURL = &url
	return page, nil
}

func changeTitle(title string) string {
	return fmt.Sprintf("Update the %s page", title)
}

func branchName(title string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return branchPrefix + slug(title) + "-" + id[:8]
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	out := strings.TrimRight(b.String(), "-")
	if out == "" {
		return "page"
	}
	return out
}

func isNotFound(err error) bool {
	var ghErr *gh.ErrorResponse
	return errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound
}
