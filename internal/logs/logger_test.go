package logs

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewSpan(t *testing.T) {
	buf := new(bytes.Buffer)
	logger, closer, err := New(Options{Level: slog.LevelDebug, Writer: buf})
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()

	ctx := context.Background()
	ctx1, span1 := NewSpan(ctx, logger, "")
	ctx2, span2 := NewSpan(ctx1, logger, "", "file", "a.hon")
	logger.With("stage", "parse").InfoContext(ctx2, "done")

	if _, err := uuid.Parse(string(span1)); err != nil {
		t.Fatalf("expected a uuid span, got %q", span1)
	}
	if SpanFrom(ctx2) != span2 || SpanFrom(ctx1) != span1 || SpanFrom(ctx) != "" {
		t.Fatalf("unexpected spans in context")
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", lines)
	}
	if !strings.Contains(lines[0], "span="+string(span1)) || strings.Contains(lines[0], "parent=") {
		t.Fatalf("got %v", lines[0])
	}
	if !strings.Contains(lines[1], "span="+string(span2)) || !strings.Contains(lines[1], "parent="+string(span1)) {
		t.Fatalf("got %v", lines[1])
	}
	if !strings.Contains(lines[1], "file=a.hon") {
		t.Fatalf("got %v", lines[1])
	}
	if !strings.Contains(lines[2], "stage=parse") || !strings.Contains(lines[2], "span="+string(span2)) {
		t.Fatalf("got %v", lines[2])
	}
}

func TestLevelFilters(t *testing.T) {
	buf := new(bytes.Buffer)
	logger, _, err := New(Options{Level: slog.LevelWarn, Writer: buf})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hidden")
	logger.Warn("shown")

	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestFileFanout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hon.log")
	buf := new(bytes.Buffer)
	logger, closer, err := New(Options{Level: slog.LevelInfo, Writer: buf, File: path})
	if err != nil {
		t.Fatal(err)
	}

	ctx, span := NewSpan(context.Background(), Discard(), "")
	logger.ErrorContext(ctx, "syntax error", "file", "b.hon")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "syntax error") {
		t.Fatalf("expected text output, got %q", buf.String())
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		t.Fatalf("expected one JSON record")
	}
	var record map[string]any
	if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
		t.Fatal(err)
	}
	if record["msg"] != "syntax error" || record["file"] != "b.hon" || record["span"] != string(span) {
		t.Fatalf("unexpected record %v", record)
	}
}
