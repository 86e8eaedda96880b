package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIDFor(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		same bool
	}{
		{"trailing slash", "https://boards.example.com/", "https://boards.example.com", true},
		{"whitespace", " https://boards.example.com ", "https://boards.example.com", true},
		{"different host", "https://a.example.com", "https://b.example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IDFor(tt.a) == IDFor(tt.b); got != tt.same {
				t.Errorf("IDFor(%q) == IDFor(%q) = %v, want %v", tt.a, tt.b, got, tt.same)
			}
		})
	}
}

func TestFileStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	st, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	sess := New("http://localhost:8080/", "secret", time.Hour)
	if sess.Server != "http://localhost:8080" {
		t.Errorf("Server = %q, want normalized URL", sess.Server)
	}
	if err := st.Set(ctx, sess); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	info, err := os.Stat(filepath.Join(st.Path(), sess.ID+".json"))
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("session file mode = %o, want 600", perm)
	}

	got, err := st.Get(ctx, IDFor("http://localhost:8080"))
	if err != nil || got == nil || got.Token != "secret" {
		t.Fatalf("Get() = %+v, %v", got, err)
	}

	list, err := st.List(ctx)
	if err != nil || len(list) != 1 {
		t.Errorf("List() = %v, %v", list, err)
	}

	if err := st.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if got, _ := st.Get(ctx, sess.ID); got != nil {
		t.Errorf("Get() after Delete = %+v, want nil", got)
	}
	if err := st.Delete(ctx, sess.ID); err != nil {
		t.Errorf("Delete() of missing session error = %v", err)
	}
}

func TestFileStoreExpiry(t *testing.T) {
	ctx := context.Background()
	st, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	live := New("http://live", "a", time.Hour)
	dead := New("http://dead", "b", -time.Minute)
	for _, s := range []*Session{live, dead} {
		if err := st.Set(ctx, s); err != nil {
			t.Fatal(err)
		}
	}

	list, _ := st.List(ctx)
	if len(list) != 1 || list[0].Server != "http://live" {
		t.Errorf("List() = %v, want only the live session", list)
	}

	if err := st.Cleanup(ctx); err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(st.Path(), dead.ID+".json")); !os.IsNotExist(err) {
		t.Errorf("expired session file still present: %v", err)
	}
	if got, _ := st.Get(ctx, live.ID); got == nil {
		t.Error("Get(live) = nil after Cleanup")
	}
}

func TestNewFileStoreDefaultDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	st, err := NewFileStore("")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "whiteboard", "sessions"); st.Path() != want {
		t.Errorf("Path() = %q, want %q", st.Path(), want)
	}
}
