package transcript

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/five82/facet/internal/protocol"
)

// Read returns at most maxLines from the end of the file at path, or every
// line when maxLines is not positive. A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read transcript: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Snapshot is one parse of the whole transcript.
type Snapshot struct {
	Text  string
	Parts []protocol.ContentPart
}

// Actions lists the actions in document order.
func (s Snapshot) Actions() []protocol.Action {
	var out []protocol.Action
	for _, p := range s.Parts {
		if ap, ok := p.(protocol.ActionPart); ok {
			out = append(out, ap.Action)
		}
	}
	return out
}

// Prose joins the text parts with actions and tool results removed.
func (s Snapshot) Prose() string {
	var b strings.Builder
	for _, p := range s.Parts {
		if tp, ok := p.(protocol.TextPart); ok {
			b.WriteString(tp.Text)
		}
	}
	return b.String()
}

// Load reads and parses the transcript at path. A missing file is an empty
// snapshot.
func Load(path string) (Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Snapshot{}, nil
		}
		return Snapshot{}, fmt.Errorf("read transcript: %w", err)
	}
	text := string(raw)
	return Snapshot{Text: text, Parts: protocol.SplitTextAndActions(text)}, nil
}
