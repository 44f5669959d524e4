package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const catLinkage = `{
  "words": [
    {"token": "the", "has_token": true},
    {"token": "cat", "has_token": true},
    {"token": "ran", "has_token": true}
  ],
  "links": [
    {"left": 0, "right": 1, "label": "Ds"},
    {"left": 1, "right": 2, "label": "Ss"}
  ]
}`

func writeLinkageFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "linkage.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func TestRenderCommandASCII(t *testing.T) {
	in := writeLinkageFixture(t, catLinkage)
	out := filepath.Join(t.TempDir(), "diagram.txt")

	if err := execute(t, "render", in, "-o", out, "--no-cache"); err != nil {
		t.Fatalf("render error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want := "\n +-Ds+-Ss+\n |   |   |\nthe cat ran \n\n"
	if string(data) != want {
		t.Errorf("rendered diagram = %q, want %q", data, want)
	}
}

func TestRenderCommandMultipleFormats(t *testing.T) {
	in := writeLinkageFixture(t, catLinkage)
	base := filepath.Join(t.TempDir(), "out")

	if err := execute(t, "render", in, "-f", "ascii,ps-body", "-o", base, "--no-cache"); err != nil {
		t.Fatalf("render error = %v", err)
	}

	if _, err := os.Stat(base + ".txt"); err != nil {
		t.Errorf("missing ascii artifact: %v", err)
	}
	ps, err := os.ReadFile(base + ".ps")
	if err != nil {
		t.Fatalf("missing ps artifact: %v", err)
	}
	if !strings.Contains(string(ps), "[(the)(cat)(ran)]") {
		t.Errorf("ps body = %q", ps)
	}
}

func TestRenderCommandTooTallEmitsDiagnostic(t *testing.T) {
	nested := `{
  "words": [
    {"token": "a", "has_token": true},
    {"token": "b", "has_token": true},
    {"token": "c", "has_token": true},
    {"token": "d", "has_token": true},
    {"token": "e", "has_token": true},
    {"token": "f", "has_token": true}
  ],
  "links": [
    {"left": 0, "right": 5, "label": "X"},
    {"left": 1, "right": 4, "label": "Y"},
    {"left": 2, "right": 3, "label": "Z"}
  ]
}`
	in := writeLinkageFixture(t, nested)
	out := filepath.Join(t.TempDir(), "diagram.txt")

	// Overflow is reported in-band: the diagnostic takes the diagram's
	// place and the command still succeeds.
	if err := execute(t, "render", in, "-o", out, "--no-cache", "--max-height", "5"); err != nil {
		t.Fatalf("render error = %v, want nil with in-band diagnostic", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "too high") {
		t.Errorf("artifact = %q, want the overflow diagnostic", data)
	}
}

func TestRenderCommandUnknownFormat(t *testing.T) {
	in := writeLinkageFixture(t, catLinkage)

	if err := execute(t, "render", in, "-f", "docx", "--no-cache"); err == nil {
		t.Error("render with unknown format should fail")
	}
}

func TestRenderCommandIndexOutOfRange(t *testing.T) {
	in := writeLinkageFixture(t, catLinkage)

	if err := execute(t, "render", in, "--index", "3", "--no-cache"); err == nil {
		t.Error("render with out-of-range index should fail")
	}
}

func TestRenderCommandLinkageArray(t *testing.T) {
	in := writeLinkageFixture(t, "["+catLinkage+","+catLinkage+"]")
	out := filepath.Join(t.TempDir(), "diagram.txt")

	if err := execute(t, "render", in, "--index", "1", "-o", out, "--no-cache"); err != nil {
		t.Fatalf("render error = %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("missing artifact: %v", err)
	}
}
