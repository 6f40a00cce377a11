package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	journalFileName = "journal"
	configFileName  = "config.yaml"
)

// Locator centralizes where the journal and config files live on disk. The
// journal is a single plain-text file; jam never writes to it.
type Locator struct {
	basePath    string
	journalPath string
}

// NewLocator constructs a Locator. An explicit journalPath wins; otherwise
// the JAM_JOURNAL environment variable is consulted, and finally the journal
// file under the base directory (see ResolveBasePath).
func NewLocator(journalPath string) (*Locator, error) {
	basePath, err := ResolveBasePath()
	if err != nil {
		return nil, err
	}

	if journalPath == "" {
		if override, ok := os.LookupEnv("JAM_JOURNAL"); ok && strings.TrimSpace(override) != "" {
			journalPath = strings.TrimSpace(override)
		} else {
			journalPath = filepath.Join(basePath, journalFileName)
		}
	}

	journalPath, err = normalizePath(journalPath)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(journalPath)
	if err != nil {
		return nil, err
	}

	return &Locator{basePath: basePath, journalPath: abs}, nil
}

// JournalPath returns the resolved absolute path of the journal file.
func (l *Locator) JournalPath() string {
	return l.journalPath
}

// ConfigPath returns where the optional YAML defaults file is expected.
func (l *Locator) ConfigPath() string {
	return filepath.Join(l.basePath, configFileName)
}

// OpenJournal opens the journal file for reading.
func (l *Locator) OpenJournal() (*os.File, error) {
	file, err := os.Open(l.journalPath)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	return file, nil
}
