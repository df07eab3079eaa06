package pipeline

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/viper"
)

// LoadFile reads a query spec from a YAML, JSON or TOML file; the format
// follows the file extension.
func LoadFile(path string) (Spec, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Spec{}, fmt.Errorf("read query %s: %w", path, err)
	}
	var spec Spec
	if err := v.Unmarshal(&spec); err != nil {
		return Spec{}, fmt.Errorf("decode query %s: %w", path, err)
	}
	return spec, nil
}

// DecodeJSON reads a query spec from a JSON document. Unknown top-level or
// step fields are rejected.
func DecodeJSON(r io.Reader) (Spec, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var spec Spec
	if err := dec.Decode(&spec); err != nil {
		return Spec{}, fmt.Errorf("decode query: %w", err)
	}
	return spec, nil
}
