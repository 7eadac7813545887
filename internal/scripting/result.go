package scripting

import (
	"fmt"

	"github.com/gatesim/gatebind/internal/config/record"
)

// Declaration is one instance request produced by a script: which
// registered type to construct, under what name, with what configuration.
type Declaration struct {
	Type   string
	Name   string
	Config record.Record
}

// parseDeclarations interprets a script result value as a list of
// declarations. Scripts return a list of mappings, each with "type" and
// "name" strings and an optional "config" mapping.
func parseDeclarations(v any) ([]Declaration, error) {
	if v == nil {
		return nil, nil
	}

	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: want a list of declarations, got %T", ErrInvalidResult, v)
	}

	decls := make([]Declaration, 0, len(list))
	for i, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: declaration %d is %T, want a mapping", ErrInvalidResult, i, item)
		}

		decl, err := declarationFromMap(record.Record(m))
		if err != nil {
			return nil, fmt.Errorf("%w: declaration %d: %w", ErrInvalidResult, i, err)
		}
		decls = append(decls, decl)
	}

	return decls, nil
}

func declarationFromMap(rec record.Record) (Declaration, error) {
	var decl Declaration

	typeName, err := rec.GetString("type")
	if err != nil {
		return decl, err
	}
	decl.Type = typeName

	name, err := rec.GetString("name")
	if err != nil {
		return decl, err
	}
	decl.Name = name

	if rec.Has("config") {
		cfg, ok := rec["config"].(map[string]any)
		if !ok {
			return decl, record.NewWrongTypeError("config", "mapping", rec["config"])
		}
		decl.Config = record.Record(cfg)
	} else {
		decl.Config = record.Record{}
	}

	return decl, nil
}
