package logging

import (
	"io"
	"os"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	fn()
	w.Close()
	os.Stdout = old
	b, _ := io.ReadAll(r)
	return string(b)
}

func TestSuccess_ColorizedToStdout(t *testing.T) {
	out := captureStdout(t, func() { Success("done") })
	if !strings.Contains(out, "done") {
		t.Fatalf("message missing, got %q", out)
	}
	if !strings.Contains(out, "\x1b[32m") {
		t.Fatalf("want green escape, got %q", out)
	}
}

func TestDebug_VerboseToggle(t *testing.T) {
	SetVerbose(false)
	if out := captureStdout(t, func() { Debug("hidden") }); strings.Contains(out, "hidden") {
		t.Fatalf("debug printed while verbose off: %q", out)
	}
	SetVerbose(true)
	defer SetVerbose(false)
	if out := captureStdout(t, func() { Debug("shown") }); !strings.Contains(out, "shown") {
		t.Fatalf("debug not printed while verbose on")
	}
}

func TestClose_WithoutInit(t *testing.T) {
	Close()
}
