package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestFile_DebouncesBurst(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "pack.txt")
	if err := os.WriteFile(p, []byte("a\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	fired := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- File{Path: p, Debounce: 100 * time.Millisecond}.Run(ctx, func(context.Context) {
			calls.Add(1)
			fired <- struct{}{}
		})
	}()

	// give the watcher time to register
	time.Sleep(200 * time.Millisecond)

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(p, []byte("a\nb\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}
	// unrelated file in the same directory
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatalf("no reload after writes")
	}
	time.Sleep(300 * time.Millisecond)
	if n := calls.Load(); n != 1 {
		t.Fatalf("onChange called %d times, want 1", n)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not stop")
	}
}

func TestFile_MissingDir(t *testing.T) {
	err := File{Path: filepath.Join(t.TempDir(), "nope", "pack.txt")}.Run(context.Background(), func(context.Context) {})
	if err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
