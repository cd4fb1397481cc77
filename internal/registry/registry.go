// Package registry reads the process registry snapshot maintained by the
// pyker process manager. The snapshot file is owned and written by pyker;
// this package only ever reads it, once per completion request.
package registry

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/samber/lo"
)

// NameSource provides the set of process names known to pyker.
// Implementations must fail closed: any read or parse problem yields an
// empty set, never an error, because completion can never be allowed to
// break the interactive shell.
type NameSource interface {
	ProcessNames() []string
}

// Snapshot is a point-in-time read of the registry file. The metadata
// values are opaque to completion and are kept raw so nothing here ever
// depends on pyker's metadata schema.
type Snapshot map[string]json.RawMessage

// FileSource reads process names from a registry file. The file is
// re-read on every call; snapshots are never cached because pyker may
// rewrite the file between tab presses.
type FileSource struct {
	Path string
}

// NewFileSource creates a FileSource for the given registry file path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// ProcessNames returns the sorted top-level keys of the registry file.
// A missing, unreadable or malformed file is treated as an empty registry.
func (s *FileSource) ProcessNames() []string {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return []string{}
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return []string{}
	}

	names := lo.Keys(snapshot)
	sort.Strings(names)
	return names
}
