package tuning

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTuning(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write tuning: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTuning(t, `
inventory_size: 20
stations:
  slot_count: 4
  strict_match: true
  restrict_to_known: true
events_dir: ./data/events
`)
	tun, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tun.InventorySize != 20 {
		t.Fatalf("expected inventory_size=20, got %d", tun.InventorySize)
	}
	if tun.Stations.SlotCount != 4 || !tun.Stations.StrictMatch || !tun.Stations.RestrictToKnown {
		t.Fatalf("unexpected station rules: %+v", tun.Stations)
	}
	if tun.EventsDir != "./data/events" {
		t.Fatalf("unexpected events_dir: %q", tun.EventsDir)
	}
}

func TestLoadRejectsBadSizes(t *testing.T) {
	if _, err := Load(writeTuning(t, "inventory_size: 0\nstations:\n  slot_count: 4\n")); err == nil {
		t.Fatalf("expected error for inventory_size=0")
	}
	if _, err := Load(writeTuning(t, "inventory_size: 8\nstations:\n  slot_count: 0\n")); err == nil {
		t.Fatalf("expected error for slot_count=0")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
