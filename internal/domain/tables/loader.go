package tables

import (
	"context"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds Tables by layering an optional YAML file over the defaults.
// A table present in the file replaces the default table wholesale; tables
// absent from the file keep their defaults. An empty path returns Defaults.
func Load(_ context.Context, path string) (*Tables, error) {
	t := Defaults()
	if path == "" {
		return t, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadTables, err)
	}
	if err := k.UnmarshalWithConf("", t, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadTables, err)
	}
	t.normalize()
	return t, nil
}
