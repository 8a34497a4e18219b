package models

import "path"

// Document is the handle of a document held by a store.
type Document struct {
	Path string `json:"path" yaml:"path"`
	Name string `json:"name" yaml:"name"`
}

// NewDocument builds a handle for the document at p.
func NewDocument(p string) Document {
	return Document{Path: p, Name: BaseName(p)}
}

// BaseName returns the last path element without its extension.
func BaseName(p string) string {
	base := path.Base(p)
	return base[:len(base)-len(path.Ext(base))]
}

// EntryKind tells what lives at a store path.
type EntryKind int

const (
	KindNone EntryKind = iota
	KindDocument
	KindContainer
)

func (k EntryKind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindContainer:
		return "container"
	default:
		return "none"
	}
}
