// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"site-editor-api/internal/entities"
	oapi "site-editor-api/internal/oapi"
)

// ToOAPIEditor maps entities.Editor to the roster record shape.
func ToOAPIEditor(e entities.Editor) oapi.EditorRecord {
	return oapi.EditorRecord{
		Id:     e.ID,
		Fields: oapi.EditorFields{Name: e.Name, Email: e.Email},
	}
}

// ToOAPIEditorList maps a slice of editors preserving order.
func ToOAPIEditorList(list []entities.Editor) []oapi.EditorRecord {
	res := make([]oapi.EditorRecord, 0, len(list))
	for _, e := range list {
		res = append(res, ToOAPIEditor(e))
	}
	return res
}

// FromOAPIEditorPatch builds a partial update from the PUT body.
func FromOAPIEditorPatch(src oapi.PutEditorsRequestBody) entities.EditorPatch {
	return entities.EditorPatch{Name: src.Name, Email: src.Email}
}

// ToOAPIPage maps entities.Page to transport model.
func ToOAPIPage(p entities.Page) oapi.Page {
	return oapi.Page{
		Title:          p.Title,
		Permalink:      p.Permalink,
		Contents:       p.Contents,
		GithubRef:      p.GitHubRef,
		PullRequestUrl: p.PullRequestURL,
	}
}
