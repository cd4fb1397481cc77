package completion

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// osReadDir is a variable that can be overridden for testing.
var osReadDir = os.ReadDir

// GetFileCompletions returns files and directories matching the given
// prefix. Directories carry a trailing slash. The prefix keeps whatever
// form the user typed (relative, "./", "../", "~/" or absolute); only the
// base name is completed. Enumeration failures yield an empty list.
func GetFileCompletions(prefix string, currentDir string) []string {
	return completePaths(prefix, currentDir, pathFilter{})
}

// GetScriptCompletions behaves like GetFileCompletions but keeps only
// directories and files ending in one of the given extensions.
func GetScriptCompletions(prefix string, currentDir string, extensions []string) []string {
	return completePaths(prefix, currentDir, pathFilter{extensions: extensions})
}

// GetDirectoryCompletions behaves like GetFileCompletions but keeps only
// directories.
func GetDirectoryCompletions(prefix string, currentDir string) []string {
	return completePaths(prefix, currentDir, pathFilter{directoriesOnly: true})
}

type pathFilter struct {
	directoriesOnly bool
	extensions      []string
}

// keep reports whether an entry survives the filter. Directories always
// survive so the user can keep descending toward a matching file.
func (f pathFilter) keep(name string, isDir bool) bool {
	if isDir {
		return true
	}
	if f.directoriesOnly {
		return false
	}
	if len(f.extensions) == 0 {
		return true
	}
	for _, ext := range f.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func completePaths(prefix string, currentDir string, filter pathFilter) []string {
	// Split the typed prefix into the directory part, kept verbatim in
	// every candidate, and the base name being completed.
	var typedDir, basePrefix string
	if slash := strings.LastIndex(prefix, "/"); slash >= 0 {
		typedDir = prefix[:slash+1]
		basePrefix = prefix[slash+1:]
	} else {
		basePrefix = prefix
	}

	searchDir, ok := resolveDir(typedDir, currentDir)
	if !ok {
		return []string{}
	}

	entries, err := osReadDir(searchDir)
	if err != nil {
		return []string{}
	}

	completions := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, basePrefix) {
			continue
		}

		isDir := entry.IsDir()
		if !filter.keep(name, isDir) {
			continue
		}
		if isDir {
			name += "/"
		}
		completions = append(completions, typedDir+name)
	}

	sort.Strings(completions)
	return completions
}

// resolveDir turns the directory part the user typed into the directory to
// enumerate. The typed form is preserved in the candidates; resolution only
// decides where to look.
func resolveDir(typedDir string, currentDir string) (string, bool) {
	switch {
	case typedDir == "":
		return currentDir, true
	case strings.HasPrefix(typedDir, "~/"):
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		return filepath.Join(homeDir, strings.TrimPrefix(typedDir, "~/")), true
	case filepath.IsAbs(typedDir):
		return typedDir, true
	default:
		return filepath.Join(currentDir, typedDir), true
	}
}
