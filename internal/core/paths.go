package core

import (
	"os"
	"path/filepath"
)

type Paths struct {
	HomeDir    string
	DataDir    string
	StateFile  string
	ConfigFile string
	LogFile    string
	ScriptDir  string
}

var defaultPaths *Paths

func ensureDefaultPaths() {
	if defaultPaths == nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// No resolvable home directory. Empty paths make every
			// downstream read fail closed to an empty result.
			homeDir = ""
		}

		dataDir := filepath.Join(homeDir, ".pyker")
		defaultPaths = &Paths{
			HomeDir:    homeDir,
			DataDir:    dataDir,
			StateFile:  filepath.Join(dataDir, "processes.json"),
			ConfigFile: filepath.Join(dataDir, "completion.yaml"),
			LogFile:    filepath.Join(dataDir, "completion.log"),
			ScriptDir:  filepath.Join(dataDir, "completion"),
		}
	}
}

func HomeDir() string {
	ensureDefaultPaths()
	return defaultPaths.HomeDir
}

// DataDir is pyker's data directory. pyker's installer creates it; this
// helper never does so while completing.
func DataDir() string {
	ensureDefaultPaths()
	return defaultPaths.DataDir
}

// StateFile is the registry of tracked processes, owned and written by
// pyker itself.
func StateFile() string {
	ensureDefaultPaths()
	return defaultPaths.StateFile
}

func ConfigFile() string {
	ensureDefaultPaths()
	return defaultPaths.ConfigFile
}

func LogFile() string {
	ensureDefaultPaths()
	return defaultPaths.LogFile
}

func ScriptDir() string {
	ensureDefaultPaths()
	return defaultPaths.ScriptDir
}

// EnsureDataDir creates the data directory. Only explicit management
// commands may call this; a completion request must not write anything.
func EnsureDataDir() error {
	ensureDefaultPaths()
	return os.MkdirAll(defaultPaths.DataDir, 0755)
}

// ResetPaths clears the cached paths, forcing them to be reinitialized.
// This is primarily used for testing purposes.
func ResetPaths() {
	defaultPaths = nil
}
