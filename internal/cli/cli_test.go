package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/whiteboard/internal/server"
	pkgio "github.com/matzehuels/whiteboard/pkg/io"
	"github.com/matzehuels/whiteboard/pkg/store"
)

const sampleBoard = `{"elements":[
	{"id":"a","type":"rectangle","x":0,"y":0,"width":100,"height":50,"rotation":0,"isSelected":true},
	{"id":"b","type":"sticky","x":200,"y":0,"width":150,"height":150,"rotation":0,"text":"Ship it"}
]}`

type harness struct {
	dir      string
	boards   string
	cacheDir string
	config   string
}

func newHarness(t *testing.T, cacheBackend string) *harness {
	t.Helper()
	t.Setenv("WHITEBOARD_TOKEN", "")
	os.Unsetenv("WHITEBOARD_TOKEN")

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	h := &harness{
		dir:      dir,
		boards:   filepath.Join(dir, "boards"),
		cacheDir: filepath.Join(dir, "cache"),
		config:   filepath.Join(dir, "config.toml"),
	}
	cfg := "[store]\nbackend = \"file\"\ndir = " + quote(h.boards) +
		"\n\n[cache]\nbackend = " + quote(cacheBackend) + "\ndir = " + quote(h.cacheDir) + "\n"
	if err := os.WriteFile(h.config, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	return h
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// run executes the CLI with args and returns stdout.
func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--config", h.config}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func (h *harness) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := h.run(t, args...)
	if err != nil {
		t.Fatalf("%v error = %v", args, err)
	}
	return out
}

func (h *harness) store(t *testing.T) store.Store {
	t.Helper()
	st, err := store.NewFileStore(h.boards)
	if err != nil {
		t.Fatal(err)
	}
	return st
}

func (h *harness) writeBoard(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(h.dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBoardsLifecycle(t *testing.T) {
	h := newHarness(t, "none")
	ctx := context.Background()

	out := h.mustRun(t, "boards", "create", "Plan")
	if !strings.Contains(out, "Created Plan") {
		t.Errorf("create output = %q", out)
	}

	metas, err := h.store(t).List(ctx)
	if err != nil || len(metas) != 1 {
		t.Fatalf("List() = %v, %v", metas, err)
	}
	id := metas[0].ID

	out = h.mustRun(t, "boards", "list", "--json")
	var listed struct {
		Boards []store.Meta `json:"boards"`
	}
	if err := json.Unmarshal([]byte(out), &listed); err != nil || len(listed.Boards) != 1 || listed.Boards[0].ID != id {
		t.Errorf("boards list --json = %q, %v", out, err)
	}

	h.mustRun(t, "boards", "rename", id, "Roadmap")
	if rec, _ := h.store(t).Get(ctx, id); rec.Name != "Roadmap" {
		t.Errorf("Name after rename = %q, want %q", rec.Name, "Roadmap")
	}

	out = h.mustRun(t, "boards", "show", id)
	for _, want := range []string{"Roadmap", id, "0 elements"} {
		if !strings.Contains(out, want) {
			t.Errorf("boards show output missing %q:\n%s", want, out)
		}
	}

	h.mustRun(t, "boards", "delete", id)
	if _, err := h.store(t).Get(ctx, id); !store.IsNotFound(err) {
		t.Errorf("Get() after delete error = %v, want not found", err)
	}
	if _, err := h.run(t, "boards", "delete", id); !store.IsNotFound(err) {
		t.Errorf("delete missing board error = %v, want not found", err)
	}
}

func TestImportExport(t *testing.T) {
	h := newHarness(t, "none")
	path := h.writeBoard(t, "in.json", sampleBoard)

	out := h.mustRun(t, "import", path, "--name", "Imported")
	if !strings.Contains(out, "Imported 2 elements") {
		t.Errorf("import output = %q", out)
	}
	metas, _ := h.store(t).List(context.Background())
	if len(metas) != 1 || metas[0].Name != "Imported" {
		t.Fatalf("List() = %v", metas)
	}

	dest := filepath.Join(h.dir, "out.json")
	h.mustRun(t, "export", metas[0].ID, "-o", dest)
	doc, err := pkgio.ImportJSON(dest)
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	if len(doc.Elements) != 2 || doc.Elements[1].ID != "b" {
		t.Errorf("exported elements = %+v", doc.Elements)
	}

	bad := h.writeBoard(t, "bad.json", `{"elements":[{"id":"x","type":"blob"}]}`)
	if _, err := h.run(t, "import", bad); err == nil {
		t.Error("import of unknown element type succeeded")
	}
}

func TestRenderFile(t *testing.T) {
	h := newHarness(t, "memory")
	path := h.writeBoard(t, "plan.json", sampleBoard)

	out := h.mustRun(t, "render", path, "-f", "svg,png,pdf")
	for _, ext := range []string{"svg", "png", "pdf"} {
		want := filepath.Join(h.dir, "plan."+ext)
		data, err := os.ReadFile(want)
		if err != nil {
			t.Fatalf("render did not write %s: %v", want, err)
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", want)
		}
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %s", want)
		}
	}
	svg, _ := os.ReadFile(filepath.Join(h.dir, "plan.svg"))
	if !strings.Contains(string(svg), "Ship it") {
		t.Error("svg does not contain sticky text")
	}

	if _, err := h.run(t, "render", path, "-f", "gif"); err == nil {
		t.Error("render -f gif succeeded")
	}
}

func TestRenderStoredBoard(t *testing.T) {
	h := newHarness(t, "file")
	rec, err := h.store(t).Create(context.Background(), "Stored")
	if err != nil {
		t.Fatal(err)
	}
	dest := filepath.Join(h.dir, "stored.svg")
	h.mustRun(t, "render", rec.ID, "-o", dest)
	data, err := os.ReadFile(dest)
	if err != nil || !strings.HasPrefix(string(data), "<svg") {
		t.Errorf("rendered file = %.20q, %v", data, err)
	}
}

func TestLayers(t *testing.T) {
	h := newHarness(t, "none")
	path := h.writeBoard(t, "layers.json", sampleBoard)

	out := h.mustRun(t, "layers", path)
	if !strings.Contains(out, "Ship it") || !strings.Contains(out, "Rectangle") {
		t.Errorf("layers output = %q", out)
	}
	if strings.Index(out, "Ship it") > strings.Index(out, "Rectangle") {
		t.Error("layers are not listed front to back")
	}

	h.mustRun(t, "layers", path, "--front", "a")
	doc, err := pkgio.ImportJSON(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := doc.Elements[len(doc.Elements)-1].ID; got != "a" {
		t.Errorf("front element = %q, want %q", got, "a")
	}

	if _, err := h.run(t, "layers", path, "--back", "missing"); err == nil {
		t.Error("layers --back missing succeeded")
	}
}

func TestClipCopyPaste(t *testing.T) {
	origWrite, origRead := clipboardWrite, clipboardRead
	t.Cleanup(func() { clipboardWrite, clipboardRead = origWrite, origRead })

	var clip string
	clipboardWrite = func(s string) error { clip = s; return nil }
	clipboardRead = func() (string, error) { return clip, nil }

	h := newHarness(t, "none")
	src := h.writeBoard(t, "src.json", sampleBoard)
	dst := h.writeBoard(t, "dst.json", `{"elements":[]}`)

	out := h.mustRun(t, "clip", "copy", src)
	if !strings.Contains(out, "Copied 1 elements") {
		t.Errorf("copy output = %q", out)
	}

	h.mustRun(t, "clip", "copy", src, "--id", "a,b")
	h.mustRun(t, "clip", "paste", dst, "--at", "500,300")

	doc, err := pkgio.ImportJSON(dst)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Elements) != 2 {
		t.Fatalf("pasted %d elements, want 2", len(doc.Elements))
	}
	first := doc.Elements[0]
	if first.ID == "a" || first.X != 500 || first.Y != 300 || !first.IsSelected {
		t.Errorf("pasted element = %+v", first)
	}
	if second := doc.Elements[1]; second.X != 700 || second.Y != 300 {
		t.Errorf("second element at (%v, %v), want (700, 300)", second.X, second.Y)
	}

	clip = "not elements"
	if _, err := h.run(t, "clip", "paste", dst); err == nil {
		t.Error("paste of foreign clipboard succeeded")
	}
}

func TestIcons(t *testing.T) {
	h := newHarness(t, "file")

	out := h.mustRun(t, "icons", "list")
	if !strings.Contains(out, "arrow-right") || !strings.Contains(out, "Arrow Right") {
		t.Errorf("icons list output = %q", out)
	}

	dest := filepath.Join(h.dir, "star.png")
	h.mustRun(t, "icons", "png", "star", "-o", dest)
	data, err := os.ReadFile(dest)
	if err != nil || !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Errorf("icon file = %.8q, %v", data, err)
	}

	if _, err := h.run(t, "icons", "png", "nope"); err == nil {
		t.Error("icons png nope succeeded")
	}
}

func TestCacheCommands(t *testing.T) {
	h := newHarness(t, "file")

	if out := h.mustRun(t, "cache", "path"); strings.TrimSpace(out) != h.cacheDir {
		t.Errorf("cache path = %q, want %q", out, h.cacheDir)
	}

	h.mustRun(t, "icons", "png", "heart", "-o", filepath.Join(h.dir, "heart.png"))
	out := h.mustRun(t, "cache", "clear")
	if !strings.Contains(out, "Cleared 1 cached entries") {
		t.Errorf("cache clear output = %q", out)
	}
}

func TestRemoteServer(t *testing.T) {
	srv := server.New(store.NewMemoryStore(),
		server.WithAuthenticator(server.TokenAuth{Token: "secret"}),
		server.WithLogger(log.New(io.Discard)))
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	h := newHarness(t, "none")
	remote := []string{"--server", ts.URL, "--token", "secret"}

	h.mustRun(t, append(remote, "boards", "create", "Remote")...)
	out := h.mustRun(t, append(remote, "boards", "list", "--json")...)
	var listed struct {
		Boards []store.Meta `json:"boards"`
	}
	if err := json.Unmarshal([]byte(out), &listed); err != nil || len(listed.Boards) != 1 {
		t.Fatalf("remote list = %q, %v", out, err)
	}

	dest := filepath.Join(h.dir, "remote.svg")
	h.mustRun(t, append(remote, "render", listed.Boards[0].ID, "-o", dest)...)
	if data, err := os.ReadFile(dest); err != nil || !strings.HasPrefix(string(data), "<svg") {
		t.Errorf("remote render = %.20q, %v", data, err)
	}

	if _, err := h.run(t, "--server", ts.URL, "--token", "wrong", "boards", "list"); err == nil {
		t.Error("remote list with wrong token succeeded")
	}
}

func TestLoginLogout(t *testing.T) {
	srv := server.New(store.NewMemoryStore(),
		server.WithAuthenticator(server.TokenAuth{Token: "secret"}),
		server.WithLogger(log.New(io.Discard)))
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	h := newHarness(t, "none")

	if _, err := h.run(t, "login", ts.URL, "--token", "wrong"); err == nil {
		t.Fatal("login with wrong token succeeded")
	}
	out := h.mustRun(t, "login", ts.URL+"/", "--token", "secret")
	if !strings.Contains(out, "Logged in to "+ts.URL) {
		t.Errorf("login output = %q", out)
	}

	if out := h.mustRun(t, "sessions"); !strings.Contains(out, ts.URL) {
		t.Errorf("sessions output = %q", out)
	}

	// The saved token is used when --token is omitted.
	h.mustRun(t, "--server", ts.URL, "boards", "create", "Saved")

	h.mustRun(t, "logout", ts.URL)
	if _, err := h.run(t, "--server", ts.URL, "boards", "list"); err == nil {
		t.Error("boards list after logout succeeded")
	}
	if out := h.mustRun(t, "sessions"); !strings.Contains(out, "Not logged in") {
		t.Errorf("sessions after logout = %q", out)
	}
}

func TestUnknownConfigKey(t *testing.T) {
	h := newHarness(t, "none")
	if err := os.WriteFile(h.config, []byte("[store]\nbogus = 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := h.run(t, "boards", "list"); err == nil {
		t.Error("unknown config key accepted")
	}
}

func TestCompletion(t *testing.T) {
	h := newHarness(t, "none")
	for _, sh := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(sh, func(t *testing.T) {
			out := h.mustRun(t, "completion", sh)
			if !strings.Contains(out, "whiteboard") {
				t.Errorf("completion %s output does not mention the program", sh)
			}
		})
	}
	if _, err := h.run(t, "completion", "tcsh"); err == nil {
		t.Error("completion tcsh error = nil, want error")
	}
}

func TestCompletionHelp(t *testing.T) {
	help := completionHelp("wb")
	for _, want := range []string{"scripts for wb.", "$ wb completion zsh > \"${fpath[1]}/_wb\"", "PS> wb completion powershell"} {
		if !strings.Contains(help, want) {
			t.Errorf("completionHelp() missing %q", want)
		}
	}
}
