package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// File is a settings file. Comments present when it was loaded are kept when
// it is saved again.
type File struct {
	Path     string
	Settings Settings
	// Exists reports whether Path was present when loaded.
	Exists bool

	comments yaml.CommentMap
}

// Load reads and validates the settings file at path. A missing file is not an
// error, it yields the defaults.
func Load(path string) (*File, error) {
	f := &File{Path: path, Settings: Defaults()}
	in, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return f, nil // no config file, that's ok
		}
		return nil, err
	}
	defer in.Close() // nolint:errcheck
	f.Exists = true
	cm := yaml.CommentMap{}
	d := yaml.NewDecoder(in, yaml.CommentToMap(cm), yaml.DisallowUnknownField())
	var raw fileSettings
	if err := d.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error loading config %q: %w", path, err)
	}
	decoded := raw.merge(Defaults())
	if err := decoded.Validate(); err != nil {
		return nil, fmt.Errorf("error loading config %q: %w", path, err)
	}
	f.Settings = decoded
	f.comments = cm
	return f, nil
}

// Save validates and atomically writes the settings back to f.Path.
func (f *File) Save() error {
	if err := f.Settings.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o755); err != nil {
		return fmt.Errorf("error creating config dir: %w", err)
	}
	fn := f.Path + ".tmp"
	out, err := os.Create(fn)
	if err != nil {
		return fmt.Errorf("error creating config temp file %q: %w", fn, err)
	}
	defer out.Close() // nolint:errcheck

	// try to preserve loaded comments
	e := yaml.NewEncoder(out, yaml.WithComment(f.comments))
	if err := e.Encode(f.Settings); err != nil {
		_ = os.Remove(fn)
		return fmt.Errorf("error writing config file %q: %w", fn, err)
	} else if err := out.Sync(); err != nil {
		_ = os.Remove(fn)
		return fmt.Errorf("error syncing config file %q: %w", fn, err)
	} else if err := out.Close(); err != nil {
		_ = os.Remove(fn)
		return fmt.Errorf("error closing config file %q: %w", fn, err)
	} else if err := os.Rename(fn, f.Path); err != nil {
		_ = os.Remove(fn)
		return fmt.Errorf("error renaming config file %q: %w", fn, err)
	}
	f.Exists = true
	return nil
}

// fileSettings tells keys absent from the file apart from empty ones.
type fileSettings struct {
	Enter  *string   `yaml:"enter"`
	Exit   *string   `yaml:"exit"`
	Ignore *string   `yaml:"ignore"`
	Match  *[]string `yaml:"match"`
}

func (fs fileSettings) merge(s Settings) Settings {
	if fs.Enter != nil {
		s.Enter = *fs.Enter
	}
	if fs.Exit != nil {
		s.Exit = *fs.Exit
	}
	if fs.Ignore != nil {
		s.Ignore = *fs.Ignore
	}
	if fs.Match != nil {
		s.Match = *fs.Match
	}
	return s
}

// Marshal renders settings as YAML.
func Marshal(s Settings) ([]byte, error) {
	return yaml.Marshal(s)
}
