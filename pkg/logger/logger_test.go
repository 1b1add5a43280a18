package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"", LevelInfo, false},
		{"INFO", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHelpersSilentWithoutInit(t *testing.T) {
	Close()
	// Must not panic.
	Info("nothing")
	LogLinkComplete("elf", false, 3)
}

func TestTextOutputRespectsLevel(t *testing.T) {
	defer Close()
	var buf bytes.Buffer
	if err := Init(Config{Level: LevelInfo, Format: "text", Output: &buf}); err != nil {
		t.Fatal(err)
	}

	LogLinkStart("elf", 2)
	LogLibrary("static", "lldELF")

	out := buf.String()
	if strings.Contains(out, "Invoking lld") {
		t.Errorf("debug message leaked at info level:\n%s", out)
	}
	if !strings.Contains(out, "name=lldELF") {
		t.Errorf("expected library attribute in:\n%s", out)
	}
}

func TestJSONOutput(t *testing.T) {
	defer Close()
	var buf bytes.Buffer
	if err := Init(Config{Level: LevelDebug, Format: "json", Output: &buf}); err != nil {
		t.Fatal(err)
	}

	LogToolFound("/usr/bin/llvm-config", "path")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if rec["path"] != "/usr/bin/llvm-config" || rec["via"] != "path" {
		t.Errorf("unexpected record: %v", rec)
	}
}

func TestInitRejectsUnknownFormat(t *testing.T) {
	defer Close()
	if err := Init(Config{Format: "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestLogFileClosed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linka.log")
	if err := Init(Config{Level: LevelDebug, Format: "json", LogFile: path}); err != nil {
		t.Fatal(err)
	}
	if logFile == nil {
		t.Fatal("log file handle not kept")
	}
	f := logFile

	LogLinkComplete("wasm", false, 4)
	if err := Close(); err != nil {
		t.Fatal(err)
	}
	if logFile != nil {
		t.Error("handle kept after Close")
	}
	if _, err := f.Write([]byte("x")); err == nil {
		t.Error("file still open after Close")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"msg":"lld reported failure"`) {
		t.Errorf("log file content = %q", data)
	}

	// Helpers are silent again.
	LogLinkComplete("wasm", false, 4)
	if again, _ := os.ReadFile(path); len(again) != len(data) {
		t.Error("logged after Close")
	}
}

func TestInitClosesPreviousFile(t *testing.T) {
	defer Close()
	dir := t.TempDir()
	if err := Init(Config{LogFile: filepath.Join(dir, "a.log")}); err != nil {
		t.Fatal(err)
	}
	first := logFile
	if err := Init(Config{LogFile: filepath.Join(dir, "b.log")}); err != nil {
		t.Fatal(err)
	}
	if _, err := first.Write([]byte("x")); err == nil {
		t.Error("first log file left open")
	}
}
