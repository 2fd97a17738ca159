package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON string

const schemaURL = "config.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	errSchema      error
)

// configSchema compiles the embedded schema on first use.
func configSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
			errSchema = fmt.Errorf("load config schema: %w", err)
			return
		}
		compiledSchema, errSchema = compiler.Compile(schemaURL)
		if errSchema != nil {
			errSchema = fmt.Errorf("compile config schema: %w", errSchema)
		}
	})
	return compiledSchema, errSchema
}

// Load returns the configuration for configDir, reading config.toml if present.
// A missing file yields the defaults.
func Load(configDir string) (*Config, error) {
	cfg := New(configDir)

	data, err := os.ReadFile(cfg.Path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read %s: %w", cfg.Path(), err)
	}

	if err := cfg.decode(data); err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Path(), err)
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	var doc map[string]interface{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if err := Validate(doc); err != nil {
		return err
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if c.Prompt == "" {
		c.Prompt = DefaultPrompt
	}
	return nil
}

// Validate checks a decoded config document against the config schema.
func Validate(doc map[string]interface{}) error {
	schema, err := configSchema()
	if err != nil {
		return err
	}

	// Round-trip through JSON so TOML values take their JSON shapes.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal config for validation: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("unmarshal config for validation: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		var ve *jsonschema.ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		var msgs []string
		collectSchemaErrors(ve, &msgs)
		return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
	}
	return nil
}

func collectSchemaErrors(err *jsonschema.ValidationError, msgs *[]string) {
	if len(err.Causes) == 0 {
		path := pointerToPath(err.InstanceLocation)
		if path == "" {
			*msgs = append(*msgs, err.Message)
		} else {
			*msgs = append(*msgs, path+": "+err.Message)
		}
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(cause, msgs)
	}
}

// pointerToPath turns a JSON pointer like "/tui/hide_completed" into
// "tui.hide_completed".
func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	return strings.ReplaceAll(ptr, "/", ".")
}
