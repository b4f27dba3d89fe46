// Package oapi holds the HTTP API models and the route table of the site editor.
package oapi

// Page is the editable page as returned to the editor.
type Page struct {
	Title          string  `json:"title"`
	Permalink      string  `json:"permalink"`
	Contents       string  `json:"contents"`
	GithubRef      *string `json:"github_ref"`
	PullRequestUrl *string `json:"pull_request_url"`
}

// EditorFields mirrors the roster's record fields.
type EditorFields struct {
	Name  string `json:"Name"`
	Email string `json:"Email"`
}

// EditorRecord is a roster entry.
type EditorRecord struct {
	Id     string       `json:"id"`
	Fields EditorFields `json:"fields"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error        string `json:"error"`
	IsAuthorized *bool  `json:"isAuthorized,omitempty"`
}

// SuccessResponse acknowledges an operation without a payload.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// PutAboutRequestBody defines body for PutAbout.
type PutAboutRequestBody struct {
	Text      string  `json:"text" form:"text"`
	GithubRef *string `json:"github_ref,omitempty" form:"github_ref"`
}

// PostEditorsRequestBody defines body for PostEditors.
type PostEditorsRequestBody struct {
	Name  string `json:"name" form:"name"`
	Email string `json:"email" form:"email"`
}

// PutEditorsRequestBody defines body for PutEditors.
type PutEditorsRequestBody struct {
	Id    string  `json:"id" form:"id"`
	Name  *string `json:"name,omitempty" form:"name"`
	Email *string `json:"email,omitempty" form:"email"`
}

// DeleteEditorsParams defines parameters for DeleteEditors.
type DeleteEditorsParams struct {
	Id string `query:"id"`
}
