package config

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed layout.yaml
var defaultLayout []byte

// matches $(VAR_NAME)
var envPattern = regexp.MustCompile(`\$\(([A-Za-z0-9_]+)\)`)

// LookupFunc reads one environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// replaces $(VAR) with the looked-up value, unset variables become empty
func expandEnvVars(s string, lookup LookupFunc) string {
	return envPattern.ReplaceAllStringFunc(s, func(m string) string {
		v, _ := lookup(envPattern.FindStringSubmatch(m)[1])
		return v
	})
}

// Resolve builds the save directory layout from the embedded defaults and the environment.
func Resolve(lookup LookupFunc) (*Layout, error) {
	return parse(defaultLayout, lookup)
}

func parse(data []byte, lookup LookupFunc) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("unmarshalling layout: %w", err)
	}

	// expanded after decoding so paths never have to be valid YAML scalars
	l.AppDataRoot = strings.TrimSpace(expandEnvVars(l.AppDataRoot, lookup))
	if l.AppDataRoot == "" {
		return nil, ErrAppDataUnset
	}
	if l.SaveSubdir == "" {
		return nil, fmt.Errorf("layout: saveSubdir is empty")
	}

	parent := filepath.Dir(filepath.Clean(l.AppDataRoot))
	l.Dir = filepath.Join(parent, filepath.FromSlash(l.SaveSubdir))
	return &l, nil
}
