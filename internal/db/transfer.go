// ABOUTME: YAML import/export of command records and default seeding
// ABOUTME: Duplicates are skipped on import; other failures are aggregated
package db

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Bundle is the portable YAML form of a set of commands.
type Bundle struct {
	Commands []BundleEntry `yaml:"commands"`
}

// BundleEntry is one command inside a Bundle. Ids are not carried across stores.
type BundleEntry struct {
	Intent      string `yaml:"intent"`
	Command     string `yaml:"command"`
	Description string `yaml:"description,omitempty"`
}

// ImportResult counts what happened to each bundle entry.
type ImportResult struct {
	Added   int
	Skipped int
}

// Import inserts every entry of a YAML bundle. Entries whose command already exists
// are skipped; any other failure is collected and returned after all entries are tried.
func (s *Store) Import(r io.Reader) (ImportResult, error) {
	var bundle Bundle
	if err := yaml.NewDecoder(r).Decode(&bundle); err != nil && !errors.Is(err, io.EOF) {
		return ImportResult{}, fmt.Errorf("decode bundle: %w", err)
	}

	var result ImportResult
	var errs *multierror.Error
	for i, entry := range bundle.Commands {
		_, err := s.Insert(entry.Intent, entry.Command, entry.Description)
		switch {
		case err == nil:
			result.Added++
		case errors.Is(err, ErrDuplicateCommand):
			result.Skipped++
		default:
			errs = multierror.Append(errs, fmt.Errorf("entry %d: %w", i+1, err))
		}
	}

	return result, errs.ErrorOrNil()
}

// Export writes every stored record as a YAML bundle.
func (s *Store) Export(w io.Writer) error {
	records, err := s.ListAll()
	if err != nil {
		return err
	}

	bundle := Bundle{
		Commands: lo.Map(records, func(r Record, _ int) BundleEntry {
			return BundleEntry{Intent: r.Intent, Command: r.Command, Description: r.Description}
		}),
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(bundle); err != nil {
		return fmt.Errorf("encode bundle: %w", err)
	}
	return enc.Close()
}

// SeedDefaults inserts the built-in starter commands when the table is empty.
// It returns the number of records added.
func (s *Store) SeedDefaults() (int, error) {
	n, err := s.Count()
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	result, err := s.Import(bytes.NewReader(defaultsYAML))
	if err != nil {
		return result.Added, fmt.Errorf("seed defaults: %w", err)
	}
	return result.Added, nil
}
