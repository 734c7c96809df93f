package backup

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/otpkit/pkg/keyuri"
)

// Entry is one credential in an archive. It carries either a full otpauth
// URI or a legacy settings list with its secret; when both are present the
// URI wins.
type Entry struct {
	URI      string   `yaml:"uri,omitempty"`
	Secret   string   `yaml:"secret,omitempty"`
	Settings []string `yaml:"settings,omitempty,flow"`
}

// archive is the document shape on disk.
type archive struct {
	Entries []Entry `yaml:"entries"`
}

// Import reads a YAML archive and returns the credentials it holds. Every
// entry goes through the same validation as keyuri.Parse; the first bad
// entry aborts the import with its position attached, so callers never end
// up with a partially usable archive.
func Import(r io.Reader) ([]keyuri.Key, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc archive
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyArchive
		}
		return nil, errors.Join(ErrMalformedArchive, err)
	}
	if len(doc.Entries) == 0 {
		return nil, ErrEmptyArchive
	}

	keys := make([]keyuri.Key, 0, len(doc.Entries))
	for i, entry := range doc.Entries {
		key, err := entry.key()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (e Entry) key() (keyuri.Key, error) {
	switch {
	case e.URI != "":
		return keyuri.Parse(e.URI)
	case len(e.Settings) > 0 || e.Secret != "":
		return keyuri.Migrate(e.Settings, e.Secret)
	default:
		return keyuri.Key{}, ErrEmptyEntry
	}
}

// Export writes keys as a YAML archive that Import reads back. Credentials
// are always written in URI form, so legacy entries come back out migrated.
func Export(w io.Writer, keys []keyuri.Key) error {
	if len(keys) == 0 {
		return ErrEmptyArchive
	}

	doc := archive{Entries: make([]Entry, 0, len(keys))}
	for _, key := range keys {
		doc.Entries = append(doc.Entries, Entry{URI: key.String()})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		_ = enc.Close()
		return errors.Join(ErrExportFailed, err)
	}
	if err := enc.Close(); err != nil {
		return errors.Join(ErrExportFailed, err)
	}
	return nil
}
