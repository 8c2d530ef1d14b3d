package lint

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMergesInputsInOrder(t *testing.T) {
	dir := t.TempDir()

	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")
	if err := os.WriteFile(first, []byte(`{"path":"src/a.py","code":"A","severity":"error","name":"one"}`+"\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if err := os.WriteFile(second, []byte(`[{"path":"/abs/b.py","code":"B","severity":"warning","name":"two"},{"path":"src/./a.py","code":"A","severity":"advice","name":"three"}]`), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	got, err := Load(context.Background(), []string{first, second}, LoadOptions{BaseDir: "/work"})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	a := got[filepath.Clean("/work/src/a.py")]
	if len(a) != 2 {
		t.Fatalf("expected 2 messages for a.py, got %d (%v)", len(a), got)
	}
	if a[0].Name != "one" || a[1].Name != "three" {
		t.Fatalf("expected input order one,three; got %s,%s", a[0].Name, a[1].Name)
	}
	if a[0].Path != filepath.Clean("/work/src/a.py") {
		t.Fatalf("expected message path to be normalized, got %q", a[0].Path)
	}
	if len(got[filepath.Clean("/abs/b.py")]) != 1 {
		t.Fatalf("expected 1 message for b.py, got %v", got)
	}
}

func TestLoadReadsStdinOnce(t *testing.T) {
	in := strings.NewReader(`{"path":"/x","code":"C","severity":"error","name":"n"}`)
	got, err := Load(context.Background(), []string{StdinPath}, LoadOptions{BaseDir: "/", Stdin: in})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got.Len() != 1 {
		t.Fatalf("expected 1 message, got %d", got.Len())
	}

	_, err = Load(context.Background(), []string{StdinPath, StdinPath}, LoadOptions{BaseDir: "/", Stdin: in})
	if err == nil {
		t.Fatal("expected error when stdin is given twice")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), []string{filepath.Join(t.TempDir(), "nope.json")}, LoadOptions{BaseDir: "/"})
	if err == nil {
		t.Fatal("expected error for missing input")
	}
}

func TestNormalizePathComposesUnicode(t *testing.T) {
	decomposed := "/src/cafe\u0301.py"
	composed := "/src/caf\u00e9.py"
	if NormalizePath(decomposed, "/") != NormalizePath(composed, "/") {
		t.Fatal("expected NFD and NFC spellings to normalize to the same key")
	}
}

func TestLoadKeepsOnDiskSpelling(t *testing.T) {
	decomposed := "/src/cafe\u0301.py"
	composed := "/src/caf\u00e9.py"
	in := strings.NewReader(
		`{"path":"` + decomposed + `","line":1,"code":"A","severity":"warning","name":"nfd"}` + "\n" +
			`{"path":"` + composed + `","line":2,"code":"B","severity":"warning","name":"nfc"}` + "\n")

	got, err := Load(context.Background(), []string{StdinPath}, LoadOptions{BaseDir: "/", Stdin: in})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	msgs := got[composed]
	if len(got) != 1 || len(msgs) != 2 {
		t.Fatalf("expected both spellings under the NFC key, got %v", got)
	}
	if msgs[0].Path != decomposed {
		t.Fatalf("Path = %q, want the decomposed spelling %q", msgs[0].Path, decomposed)
	}
	if msgs[1].Path != composed {
		t.Fatalf("Path = %q, want %q", msgs[1].Path, composed)
	}
}
