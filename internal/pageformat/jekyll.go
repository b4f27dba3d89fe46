// Package pageformat converts editor text to and from Jekyll page documents.
package pageformat

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	delimiter     = "---"
	defaultLayout = "page"
)

var errUnterminated = errors.New("front matter is not terminated")

type frontMatter struct {
	Layout    string `yaml:"layout,omitempty"`
	Title     string `yaml:"title"`
	Permalink string `yaml:"permalink"`
}

// Jekyll renders page documents with a YAML front matter header.
type Jekyll struct {
	layout string
}

// New returns a formatter that stamps documents with layout, "page" when empty.
func New(layout string) *Jekyll {
	if layout == "" {
		layout = defaultLayout
	}
	return &Jekyll{layout: layout}
}

// Format wraps text in a front matter header carrying title and permalink.
func (j *Jekyll) Format(text, title, permalink string) (string, error) {
	header, err := yaml.Marshal(frontMatter{Layout: j.layout, Title: title, Permalink: permalink})
	if err != nil {
		return "", fmt.Errorf("encode front matter: %w", err)
	}

	var b strings.Builder
	b.WriteString(delimiter + "\n")
	b.Write(header)
	b.WriteString(delimiter + "\n\n")
	b.WriteString(strings.TrimRight(text, "\r\n"))
	b.WriteString("\n")
	return b.String(), nil
}

// Document is a parsed page file.
type Document struct {
	Title     string
	Permalink string
	Contents  string
}

// Parse splits a page file into its front matter fields and body.
// Files without front matter are returned whole as contents.
func Parse(raw string) (Document, error) {
	normalized := strings.ReplaceAll(raw, "\r\n", "\n")
	if !strings.HasPrefix(normalized, delimiter+"\n") {
		return Document{Contents: strings.TrimRight(normalized, "\n")}, nil
	}

	rest := normalized[len(delimiter)+1:]
	end := closingDelimiter(rest)
	if end < 0 {
		return Document{}, errUnterminated
	}

	var fm frontMatter
	if err := yaml.Unmarshal([]byte(rest[:end]), &fm); err != nil {
		return Document{}, fmt.Errorf("decode front matter: %w", err)
	}

	body := rest[end+len(delimiter):]
	body = strings.TrimPrefix(body, "\n")
	body = strings.TrimPrefix(body, "\n")

	return Document{
		Title:     fm.Title,
		Permalink: fm.Permalink,
		Contents:  strings.TrimRight(body, "\n"),
	}, nil
}

// closingDelimiter returns the offset of the "---" line ending the header.
func closingDelimiter(s string) int {
	if strings.HasPrefix(s, delimiter+"\n") || s == delimiter {
		return 0
	}
	idx := strings.Index(s, "\n"+delimiter+"\n")
	if idx >= 0 {
		return idx + 1
	}
	if strings.HasSuffix(s, "\n"+delimiter) {
		return len(s) - len(delimiter)
	}
	return -1
}
