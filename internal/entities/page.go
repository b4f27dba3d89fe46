// Package entities contains core business entities.
package entities

// Page is the projection of a site page stored in the version control host.
// GitHubRef and PullRequestURL are both set while an edit is pending and both nil otherwise.
type Page struct {
	Title          string
	Permalink      string
	Contents       string
	GitHubRef      *string
	PullRequestURL *string
}

// Pending reports whether the page has an unmerged edit.
func (p Page) Pending() bool {
	return p.GitHubRef != nil && p.PullRequestURL != nil
}

// PageSpec describes where an editable page lives and how edits to it are proposed.
type PageSpec struct {
	Name      string
	FilePath  string
	Title     string
	Permalink string
	PRBody    string
}

// PendingEdit is an open pull request carrying unmerged page changes.
type PendingEdit struct {
	Ref            string
	PullRequestURL string
}
