package transcript

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/five82/facet/internal/protocol"
	"github.com/five82/facet/internal/style"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "agent.txt")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}
	if err := os.WriteFile(path, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create transcript: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{name: "read all (0)", maxLines: 0, expected: expectedAll},
		{name: "read all (negative)", maxLines: -1, expected: expectedAll},
		{name: "read partial (5)", maxLines: 5, expected: expectedAll[5:]},
		{name: "read exactly all (10)", maxLines: 10, expected: expectedAll},
		{name: "read more than exists (20)", maxLines: 20, expected: expectedAll},
		{name: "read one", maxLines: 1, expected: []string{"Line 10"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(path, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Fatalf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	lines, err := Read(filepath.Join(t.TempDir(), "missing.txt"), 10)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if lines != nil {
		t.Fatalf("Read() = %v, want nil", lines)
	}
}

func TestReadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	lines, err := Read(path, 5)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("Read() = %v, want empty", lines)
	}
}

func TestLoadSplitsTranscript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agent.txt")
	text := "Going dark. [action: {\"SetThemeTone\": \"dark\"})]\nListing. [action: {\"Shell\": \"ls\"})] [result:shell] {\"output\": \"a\"}\n"
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}

	snap, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []protocol.Action{
		protocol.SetThemeTone{Tone: style.ToneDark},
		protocol.Shell{Command: "ls"},
	}
	if got := snap.Actions(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Actions() = %#v, want %#v", got, want)
	}
	// A tool result runs to the end of the text, trailing newline included.
	if got, want := snap.Prose(), "Going dark. \nListing.  "; got != want {
		t.Fatalf("Prose() = %q, want %q", got, want)
	}
	last, ok := snap.Parts[len(snap.Parts)-1].(protocol.ToolResultPart)
	if !ok || last.Tool != "shell" || string(last.Value) != `{"output": "a"}` {
		t.Fatalf("last part = %#v, want shell tool result", snap.Parts[len(snap.Parts)-1])
	}
	if snap.Text != text {
		t.Fatalf("Text = %q, want %q", snap.Text, text)
	}
}

func TestLoadMissingFile(t *testing.T) {
	snap, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if snap.Text != "" || len(snap.Parts) != 0 {
		t.Fatalf("Load() = %#v, want empty snapshot", snap)
	}
}
