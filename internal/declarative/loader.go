package declarative

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"sliceql/internal/domain"
)

// LoadDirectory reads every .yaml/.yml file in dir and returns the declared
// registries in filename order. Duplicate slicer names across files are
// rejected.
func LoadDirectory(dir string) ([]*domain.Registry, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("schema directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("schema directory: %s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("schema directory: %w", err)
	}

	var registries []*domain.Registry
	seen := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		loaded, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		for _, reg := range loaded {
			if prev, dup := seen[reg.Name()]; dup {
				return nil, fmt.Errorf("%s: slicer %q already defined in %s", path, reg.Name(), prev)
			}
			seen[reg.Name()] = path
			registries = append(registries, reg)
		}
	}
	return registries, nil
}

// LoadFile reads one YAML file, which may hold multiple slicer documents.
func LoadFile(path string) ([]*domain.Registry, error) {
	f, err := os.Open(path) //nolint:gosec // intentional: reading user-specified config files
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)

	var registries []*domain.Registry
	for {
		var doc SlicerDoc
		if err := decoder.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if err := validateDocument(path, doc.APIVersion, doc.Kind); err != nil {
			return nil, err
		}
		reg, err := buildRegistry(doc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		registries = append(registries, reg)
	}
	if len(registries) == 0 {
		return nil, fmt.Errorf("%s: no slicer documents found", path)
	}
	return registries, nil
}

// validateDocument checks the apiVersion and kind fields.
func validateDocument(path, apiVersion, kind string) error {
	if apiVersion != SupportedAPIVersion {
		return fmt.Errorf("%s: unsupported apiVersion %q (expected %q)", path, apiVersion, SupportedAPIVersion)
	}
	if kind != KindSlicer {
		return fmt.Errorf("%s: unexpected kind %q (expected %q)", path, kind, KindSlicer)
	}
	return nil
}
