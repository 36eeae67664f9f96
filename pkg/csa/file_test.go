package csa_test

import (
	"os"
	"path/filepath"
	"testing"

	csa "github.com/Arborescent/shogi-kifu/pkg/csa"
)

func TestCollectCSA(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	for _, name := range []string{
		filepath.Join(dir, "b.csa"),
		filepath.Join(dir, "a.CSA"),
		filepath.Join(dir, "ignored.kif"),
		filepath.Join(sub, "c.csa"),
	} {
		if err := os.WriteFile(name, []byte("V2\nPI\n+\n"), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	files, err := csa.CollectCSA(dir)
	if err != nil {
		t.Fatalf("failed to collect: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.CSA"),
		filepath.Join(dir, "b.csa"),
		filepath.Join(sub, "c.csa"),
	}
	if len(files) != len(want) {
		t.Fatalf("collected %d files, want %d: %v", len(files), len(want), files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Fatalf("file %d: got %s want %s", i, files[i], want[i])
		}
	}
}
