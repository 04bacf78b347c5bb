package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFSSetGet(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFS(dir, time.Hour)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ctx := context.Background()

	if _, ok, err := f.Get(ctx, "lineups:7"); ok || err != nil {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}
	if err := f.Set(ctx, "lineups:7", []byte(`{"x":1}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := f.Get(ctx, "lineups:7")
	if err != nil || !ok || string(got) != `{"x":1}` {
		t.Fatalf("unexpected get: %s %v %v", got, ok, err)
	}

	path := f.Path("lineups:7")
	if filepath.Base(filepath.Dir(path)) != "lineups" {
		t.Fatalf("expected resource subdirectory, got %s", path)
	}
	entries, _ := os.ReadDir(filepath.Dir(path))
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Fatalf("temp file left behind: %s", e.Name())
		}
	}
}

func TestFSExpiry(t *testing.T) {
	f, err := NewFS(t.TempDir(), time.Minute)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	ctx := context.Background()
	_ = f.Set(ctx, "competitions", []byte("[]"))
	f.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	if _, ok, err := f.Get(ctx, "competitions"); ok || err != nil {
		t.Fatalf("expected expired miss, got ok=%v err=%v", ok, err)
	}
	if _, err := os.Stat(f.Path("competitions")); !os.IsNotExist(err) {
		t.Fatalf("expected expired file removed, got %v", err)
	}
}

func TestFSOverwrite(t *testing.T) {
	f, _ := NewFS(t.TempDir(), 0)
	ctx := context.Background()
	_ = f.Set(ctx, "k", []byte("one"))
	_ = f.Set(ctx, "k", []byte("two"))
	got, _, _ := f.Get(ctx, "k")
	if string(got) != "two" {
		t.Fatalf("expected overwrite, got %s", got)
	}
}

func TestNewFSRequiresDir(t *testing.T) {
	if _, err := NewFS("", time.Minute); err == nil {
		t.Fatal("expected error for empty dir")
	}
}
