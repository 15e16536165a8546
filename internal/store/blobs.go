package store

import "github.com/alexanderramin/syllabus/internal/domain"

// Wire shapes of the single-document collections on the remote backend.
// Local storage keeps the bare arrays; the remote wraps them in a named
// field so a blob document is never an empty JSON array at the top level.

// NotesBlob wraps the personal to-do list.
type NotesBlob struct {
	Items domain.NoteList `json:"items"`
}

// ReadNotifBlob wraps the set of acknowledged task IDs.
type ReadNotifBlob struct {
	TaskIDs []string `json:"taskIds"`
}

// CatalogBlob wraps the course catalog.
type CatalogBlob struct {
	Courses domain.Catalog `json:"courses"`
}
