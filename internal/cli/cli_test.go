package cli

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/solversa/link-grammar/pkg/render"
)

func TestLoggerContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext() without an attached logger should return the default")
	}

	c := New(io.Discard, LogInfo)
	ctx := withLogger(context.Background(), c.Logger)
	if loggerFromContext(ctx) != c.Logger {
		t.Error("loggerFromContext() did not return the attached logger")
	}
}

func TestLoadMarkers(t *testing.T) {
	m, err := loadMarkers("en")
	if err != nil {
		t.Fatalf("loadMarkers(en) error = %v", err)
	}
	if m.LeftWallDisplay != "LEFT-WALL" {
		t.Errorf("LeftWallDisplay = %q", m.LeftWallDisplay)
	}

	ru, err := loadMarkers("ru")
	if err != nil {
		t.Fatalf("loadMarkers(ru) error = %v", err)
	}
	if len(ru.SuffixExempt) != 0 {
		t.Errorf("russian SuffixExempt = %v, want empty", ru.SuffixExempt)
	}

	if _, err := loadMarkers("klingon"); err == nil {
		t.Error("loadMarkers(klingon) should fail")
	}
}

func TestDictCommand(t *testing.T) {
	if err := execute(t, "dict", "show", "en"); err != nil {
		t.Errorf("dict show en error = %v", err)
	}
	if err := execute(t, "dict", "show", "klingon"); err == nil {
		t.Error("dict show klingon should fail")
	}
	if err := execute(t, "dict", "list"); err != nil {
		t.Errorf("dict list error = %v", err)
	}
}

func TestParseFormats(t *testing.T) {
	if got := parseFormats(""); len(got) != 1 || got[0] != "ascii" {
		t.Errorf("parseFormats(\"\") = %v", got)
	}
	if got := parseFormats("ascii,ps"); len(got) != 2 || got[1] != "ps" {
		t.Errorf("parseFormats(ascii,ps) = %v", got)
	}
}

func TestOutputPath(t *testing.T) {
	if got := outputPath("", render.FormatASCII, 1); got != "" {
		t.Errorf("outputPath with no base = %q, want stdout marker", got)
	}
	if got := outputPath("out.txt", render.FormatASCII, 1); got != "out.txt" {
		t.Errorf("single-format outputPath = %q", got)
	}
	if got := outputPath("out", render.FormatPS, 2); got != "out.ps" {
		t.Errorf("multi-format outputPath = %q", got)
	}
}
