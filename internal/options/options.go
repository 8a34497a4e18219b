// Package options builds the account and tag dictionaries an entry form offers,
// and maps a selected label back to its canonical identifier.
package options

import (
	"context"
	"errors"
	"sort"

	"fjacquet/budget-form/internal/entryerror"
	"fjacquet/budget-form/internal/logging"
	"fjacquet/budget-form/internal/models"
	"fjacquet/budget-form/internal/store"
)

// Resolve returns the id of the first option whose label equals selection.
// A selection that matches no label is returned unchanged.
func Resolve(dict models.OptionDictionary, selection string) string {
	if selection == "" {
		return selection
	}
	for _, o := range dict {
		if o.Label == selection {
			return o.ID
		}
	}
	return selection
}

// ID returns the canonical identifier of the document at p, a wiki link.
func ID(p string) string {
	return "[[" + p + "]]"
}

// FromPaths builds a dictionary from document paths, sorted by id.
func FromPaths(paths []string) models.OptionDictionary {
	dict := make(models.OptionDictionary, 0, len(paths))
	for _, p := range paths {
		dict = append(dict, models.Option{ID: ID(p), Label: models.BaseName(p)})
	}
	sort.SliceStable(dict, func(i, j int) bool { return dict[i].ID < dict[j].ID })
	return dict
}

// Duplicates returns every label carried by more than one option, in dictionary order.
func Duplicates(dict models.OptionDictionary) []string {
	seen := make(map[string]int, len(dict))
	var dups []string
	for _, o := range dict {
		seen[o.Label]++
		if seen[o.Label] == 2 {
			dups = append(dups, o.Label)
		}
	}
	return dups
}

// Load lists the documents directly inside container and turns them into a dictionary.
// source names the dictionary ("accounts", "tags") in errors and logs.
func Load(ctx context.Context, s store.Store, source, container string, log logging.Logger) (models.OptionDictionary, error) {
	if log == nil {
		log = logging.Discard()
	}

	paths, err := s.List(ctx, container)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &entryerror.OptionSourceError{Source: source, Path: container}
		}
		return nil, &entryerror.OptionSourceError{Source: source, Path: container, Err: err}
	}

	dict := FromPaths(paths)
	for _, label := range Duplicates(dict) {
		log.Warn("Duplicate option label, first match wins",
			logging.F(logging.FieldSource, source),
			logging.F(logging.FieldLabel, label),
			logging.F(logging.FieldContainer, container))
	}

	log.Debug("Loaded options",
		logging.F(logging.FieldSource, source),
		logging.F(logging.FieldCount, len(dict)))
	return dict, nil
}
