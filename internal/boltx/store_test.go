package boltx

import (
	"bytes"
	"path/filepath"
	"testing"
)

func open(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"), "warmindoAppData")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadEmpty(t *testing.T) {
	s := open(t)
	raw, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if raw != nil {
		t.Fatalf("want nil for missing document, got %q", raw)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := open(t)
	doc := []byte(`{"menu":[]}`)
	if err := s.Save(doc); err != nil {
		t.Fatal(err)
	}
	raw, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(raw, doc) {
		t.Fatalf("want %q, got %q", doc, raw)
	}

	// overwrite wins
	doc2 := []byte(`{"menu":[{"id":"menu-1"}]}`)
	if err := s.Save(doc2); err != nil {
		t.Fatal(err)
	}
	raw, _ = s.Load()
	if !bytes.Equal(raw, doc2) {
		t.Fatalf("want latest document, got %q", raw)
	}
}

func TestBackup(t *testing.T) {
	s := open(t)
	if err := s.Backup("2026-09-01"); err != nil {
		t.Fatalf("backup with no document must be a no-op: %v", err)
	}
	if err := s.Save([]byte(`{"expenses":[]}`)); err != nil {
		t.Fatal(err)
	}
	if err := s.Backup("2026-09-01"); err != nil {
		t.Fatal(err)
	}
}
