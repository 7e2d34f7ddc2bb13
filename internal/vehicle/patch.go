package vehicle

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/stance/internal/catalog"
)

// Default returns the configuration from the catalog's defaults section.
func Default(cat *catalog.Catalog) (Config, error) {
	if cat.Defaults.Kind == 0 {
		return Config{}, fmt.Errorf("%w: catalog has no defaults", ErrInvalidConfig)
	}
	data, err := yaml.Marshal(&cat.Defaults)
	if err != nil {
		return Config{}, fmt.Errorf("encoding catalog defaults: %w", err)
	}
	cfg, err := Config{}.merge(data)
	if err != nil {
		return Config{}, fmt.Errorf("catalog defaults: %w", err)
	}
	return cfg, nil
}

// Patch returns a copy of c with every field present in the YAML document
// read from r overwritten. Absent fields keep their value. Keys that are not
// configuration fields are rejected with ErrUnknownField.
func (c Config) Patch(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return c, fmt.Errorf("reading patch: %w", err)
	}
	return c.merge(data)
}

// PatchFields is Patch for already-decoded key/value pairs, e.g. query
// parameters.
func (c Config) PatchFields(fields map[string]any) (Config, error) {
	data, err := yaml.Marshal(fields)
	if err != nil {
		return c, fmt.Errorf("encoding patch: %w", err)
	}
	return c.merge(data)
}

func (c Config) merge(data []byte) (Config, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return c, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	known := fieldNames()
	var unknown []string
	for k := range raw {
		if !known[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return c, fmt.Errorf("%w: %s", ErrUnknownField, strings.Join(unknown, ", "))
	}

	out := c
	if err := yaml.Unmarshal(data, &out); err != nil {
		return c, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return out, nil
}

// Fields returns the configuration keys in declaration order.
func Fields() []string {
	t := reflect.TypeOf(Config{})
	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if name := yamlName(t.Field(i)); name != "" {
			names = append(names, name)
		}
	}
	return names
}

var fieldNames = sync.OnceValue(func() map[string]bool {
	known := make(map[string]bool)
	for _, name := range Fields() {
		known[name] = true
	}
	return known
})

func yamlName(f reflect.StructField) string {
	tag := f.Tag.Get("yaml")
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	return name
}
