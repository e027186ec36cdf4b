package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Reader looks up a single override by name. Absence is reported through
// the boolean, never as an error.
type Reader interface {
	Lookup(name string) (string, bool)
}

// Snapshot is an immutable, prefix-aware copy of a set of environment
// variables. It implements Reader.
type Snapshot struct {
	prefix string
	vars   map[string]string
}

// FromOS snapshots the process environment, layered over the given dotenv
// files. Missing dotenv files are skipped; unreadable or malformed ones are
// an error.
func FromOS(prefix string, dotenvFiles ...string) (*Snapshot, error) {
	vars, err := readDotenv(dotenvFiles)
	if err != nil {
		return nil, err
	}

	for k, v := range env.ToMap(os.Environ()) {
		vars[k] = v
	}

	return &Snapshot{prefix: prefix, vars: vars}, nil
}

// FromMap builds a snapshot from an explicit set of variables. The map is
// copied.
func FromMap(prefix string, vars map[string]string) *Snapshot {
	cp := make(map[string]string, len(vars))
	for k, v := range vars {
		cp[k] = v
	}
	return &Snapshot{prefix: prefix, vars: cp}
}

func readDotenv(files []string) (map[string]string, error) {
	vars := make(map[string]string)
	for _, file := range files {
		if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
			continue
		}

		m, err := godotenv.Read(file)
		if err != nil {
			return nil, fmt.Errorf("read dotenv %s: %w", file, err)
		}
		for k, v := range m {
			vars[k] = v
		}
	}
	return vars, nil
}

// Prefix returns the name prefix applied by Lookup.
func (s *Snapshot) Prefix() string {
	return s.prefix
}

// Lookup returns the value of prefix+name.
func (s *Snapshot) Lookup(name string) (string, bool) {
	return s.Raw(s.prefix + name)
}

// Raw returns the value of name without applying the prefix.
func (s *Snapshot) Raw(name string) (string, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// Get returns the value of prefix+name, or def when the variable is unset
// or empty.
func (s *Snapshot) Get(name, def string) string {
	return Or(s, name, def)
}

// Or returns r's value for name, or def when it is unset or empty.
func Or(r Reader, name, def string) string {
	if v, ok := r.Lookup(name); ok && v != "" {
		return v
	}
	return def
}

// Decode fills the struct pointed to by v from the snapshot using
// caarlos0/env `env` tags. The snapshot prefix is prepended to every tag.
func (s *Snapshot) Decode(v any) error {
	err := env.ParseWithOptions(v, env.Options{
		Environment: s.vars,
		Prefix:      s.prefix,
	})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
