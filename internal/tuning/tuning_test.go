package tuning

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	doc := `
schematics_dir: /srv/schems
index_db: /srv/index.db
audit_log: false
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.SchematicsDir != "/srv/schems" {
		t.Fatalf("schematics_dir = %q", got.SchematicsDir)
	}
	if got.IndexDB != "/srv/index.db" {
		t.Fatalf("index_db = %q", got.IndexDB)
	}
	if got.AuditLog {
		t.Fatalf("audit_log not overridden")
	}
	// Untouched keys keep defaults.
	if got.DataDir != Default().DataDir {
		t.Fatalf("data_dir = %q", got.DataDir)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("missing file accepted")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte(":\n\t-"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("bad yaml accepted")
	}
}
