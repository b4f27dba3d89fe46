// Package entities contains core business entities.
package entities

// Editor is a person allowed to use the editing API.
type Editor struct {
	ID    string
	Name  string
	Email string
}

// EditorPatch carries the fields of a partial editor update. Nil fields keep their value.
type EditorPatch struct {
	Name  *string
	Email *string
}

// Apply returns e with the patched fields replaced.
func (p EditorPatch) Apply(e Editor) Editor {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
	return e
}
