package files

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLocatorPrefersExplicitPath(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("JAM_HOME", filepath.Join(tmp, "home"))
	t.Setenv("JAM_JOURNAL", filepath.Join(tmp, "env-journal"))

	explicit := filepath.Join(tmp, "my-journal")
	loc, err := NewLocator(explicit)
	if err != nil {
		t.Fatalf("NewLocator: %v", err)
	}
	if loc.JournalPath() != explicit {
		t.Fatalf("JournalPath() = %q, want %q", loc.JournalPath(), explicit)
	}
}

func TestLocatorFallsBackToEnvThenBaseDir(t *testing.T) {
	tmp := t.TempDir()
	base := filepath.Join(tmp, "home")
	t.Setenv("JAM_HOME", base)

	envJournal := filepath.Join(tmp, "env-journal")
	t.Setenv("JAM_JOURNAL", envJournal)
	loc, err := NewLocator("")
	if err != nil {
		t.Fatalf("NewLocator: %v", err)
	}
	if loc.JournalPath() != envJournal {
		t.Fatalf("JournalPath() = %q, want env override %q", loc.JournalPath(), envJournal)
	}

	t.Setenv("JAM_JOURNAL", "")
	loc, err = NewLocator("")
	if err != nil {
		t.Fatalf("NewLocator: %v", err)
	}
	want := filepath.Join(base, "journal")
	if loc.JournalPath() != want {
		t.Fatalf("JournalPath() = %q, want %q", loc.JournalPath(), want)
	}
	if loc.ConfigPath() != filepath.Join(base, "config.yaml") {
		t.Fatalf("ConfigPath() = %q, want under base dir", loc.ConfigPath())
	}
}

func TestLocatorOpenJournal(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("JAM_HOME", tmp)

	path := filepath.Join(tmp, "journal")
	if err := os.WriteFile(path, []byte("2024-01-05\nstart 09:00\nend 10:00\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	loc, err := NewLocator(path)
	if err != nil {
		t.Fatalf("NewLocator: %v", err)
	}
	file, err := loc.OpenJournal()
	if err != nil {
		t.Fatalf("OpenJournal: %v", err)
	}
	file.Close()

	missing, err := NewLocator(filepath.Join(tmp, "does-not-exist"))
	if err != nil {
		t.Fatalf("NewLocator: %v", err)
	}
	if _, err := missing.OpenJournal(); err == nil {
		t.Fatalf("OpenJournal on missing file succeeded, want error")
	}
}
