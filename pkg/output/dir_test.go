package output

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/evalcharts/pkg/errors"
	"github.com/matzehuels/evalcharts/pkg/observability"
)

func TestNewDefault(t *testing.T) {
	if got := New("").Path(); got != DefaultDir {
		t.Errorf("New(\"\").Path() = %q, want %q", got, DefaultDir)
	}
}

func TestWrite(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "plots")
	d := New(root)
	ctx := context.Background()

	path, err := d.Write(ctx, "summary", "png", []byte("first"))
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("Write() path %q is not absolute", path)
	}
	if filepath.Base(path) != "summary.png" {
		t.Errorf("Write() file = %q, want summary.png", filepath.Base(path))
	}

	// A second write to the same stem overwrites.
	if _, err := d.Write(ctx, "summary", "png", []byte("second")); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte("second")) {
		t.Errorf("file content = %q, want %q", got, "second")
	}
}

func TestWriteInvalidStem(t *testing.T) {
	d := New(t.TempDir())
	for _, stem := range []string{"", "../escape", "a/b", ".hidden"} {
		t.Run(stem, func(t *testing.T) {
			_, err := d.Write(context.Background(), stem, "png", []byte("x"))
			if !errors.Is(err, errors.ErrCodeInvalidPath) {
				t.Errorf("Write(%q) = %v, want INVALID_PATH", stem, err)
			}
		})
	}
}

func TestEnsureFailure(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	d := New(filepath.Join(blocker, "plots"))
	if _, err := d.Write(context.Background(), "a", "png", nil); !errors.Is(err, errors.ErrCodeWriteFailed) {
		t.Errorf("Write() under a regular file = %v, want WRITE_FAILED", err)
	}
}

func TestResolve(t *testing.T) {
	tmp := t.TempDir()
	got, err := New(tmp).Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if got != tmp {
		t.Errorf("Resolve() = %q, want %q", got, tmp)
	}
}

func TestWriteEmitsHook(t *testing.T) {
	observability.Reset()
	defer observability.Reset()

	h := &recordingHooks{}
	observability.SetOutputHooks(h)

	tmp := t.TempDir()
	d := New(tmp)
	path, err := d.Write(context.Background(), "a", "svg", []byte("abc"))
	if err != nil {
		t.Fatal(err)
	}

	// A directory in the way makes the second write fail.
	blocked := filepath.Join(tmp, "b.svg")
	if err := os.Mkdir(blocked, 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Write(context.Background(), "b", "svg", []byte("de")); !errors.Is(err, errors.ErrCodeWriteFailed) {
		t.Fatalf("Write(blocked) = %v, want WRITE_FAILED", err)
	}

	want := []writeEvent{{path: path, size: 3}, {path: blocked, size: 2, failed: true}}
	if len(h.events) != len(want) {
		t.Fatalf("OnWrite events = %+v, want %+v", h.events, want)
	}
	for i := range want {
		if h.events[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, h.events[i], want[i])
		}
	}
}

type writeEvent struct {
	path   string
	size   int
	failed bool
}

type recordingHooks struct {
	events []writeEvent
}

func (h *recordingHooks) OnWrite(_ context.Context, path string, size int, err error) {
	h.events = append(h.events, writeEvent{path: path, size: size, failed: err != nil})
}
