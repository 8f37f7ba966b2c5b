package protocol

import (
	"encoding/json"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	actionMarker = "[action: "
	resultMarker = "[result:"
)

// ContentPart is one piece of agent text: prose, an action or a tool result.
type ContentPart interface {
	isPart()
}

type TextPart struct{ Text string }

type ActionPart struct{ Action Action }

// ToolResultPart is a "[result:<tool>] <json>" segment.
type ToolResultPart struct {
	Tool  string
	Value json.RawMessage
}

func (TextPart) isPart()       {}
func (ActionPart) isPart()     {}
func (ToolResultPart) isPart() {}

// span locates one action marker in a text.
type span struct {
	start        int // offset of the marker
	payloadStart int
	payloadEnd   int
	end          int // offset just past the terminator
}

// nextAction finds the first action at or after from. found is false when no
// marker remains; closed is false when the marker has no terminator before
// the next marker or the end of the text.
func nextAction(text string, from int) (sp span, found, closed bool) {
	rel := strings.Index(text[from:], actionMarker)
	if rel < 0 {
		return span{}, false, false
	}
	sp.start = from + rel
	sp.payloadStart = sp.start + len(actionMarker)

	limit := len(text)
	if next := strings.Index(text[sp.payloadStart:], actionMarker); next >= 0 {
		limit = sp.payloadStart + next
	}
	window := text[sp.payloadStart:limit]
	if i := strings.Index(window, ")]"); i >= 0 {
		sp.payloadEnd = sp.payloadStart + i
		sp.end = sp.payloadEnd + 2
		return sp, true, true
	}
	if i := strings.IndexByte(window, ']'); i >= 0 {
		sp.payloadEnd = sp.payloadStart + i
		sp.end = sp.payloadEnd + 1
		return sp, true, true
	}
	return sp, true, false
}

func (sp span) payload(text string) string {
	return strings.TrimSpace(text[sp.payloadStart:sp.payloadEnd])
}

// ParseText returns the actions embedded in text in order. Payloads that do
// not decode become Unknown. An unterminated marker is prose.
func ParseText(text string) []Action {
	var actions []Action
	pos := 0
	for {
		sp, found, closed := nextAction(text, pos)
		switch {
		case !found:
			return actions
		case !closed:
			pos = sp.payloadStart
		default:
			actions = append(actions, decodeOrUnknown(sp.payload(text)))
			pos = sp.end
		}
	}
}

// StripActions removes every action span and trims the result. Whitespace on
// both sides of a removed span collapses to the whitespace before it.
func StripActions(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	pos := 0
	joined := false
	for {
		sp, found, closed := nextAction(text, pos)
		if !found {
			break
		}
		if !closed {
			writeSegment(&b, text[pos:sp.payloadStart], joined)
			pos = sp.payloadStart
			joined = false
			continue
		}
		writeSegment(&b, text[pos:sp.start], joined)
		pos = sp.end
		joined = true
	}
	writeSegment(&b, text[pos:], joined)
	return strings.TrimSpace(b.String())
}

func writeSegment(b *strings.Builder, seg string, afterAction bool) {
	if afterAction && endsInSpace(b.String()) {
		seg = strings.TrimLeft(seg, " \t")
	}
	b.WriteString(seg)
}

func endsInSpace(s string) bool {
	r, size := utf8.DecodeLastRuneInString(s)
	return size > 0 && unicode.IsSpace(r)
}

// SplitTextAndActions splits text into ordered parts for progressive
// rendering. Adjacent prose is merged into one TextPart; a text without
// markers yields exactly one TextPart equal to the input.
func SplitTextAndActions(text string) []ContentPart {
	var parts []ContentPart
	pos := 0
	for pos < len(text) {
		start, isAction := nextMarker(text, pos)
		if start < 0 {
			break
		}
		parts = appendText(parts, text[pos:start])

		if isAction {
			sp, _, closed := nextAction(text, start)
			if !closed {
				parts = appendText(parts, text[start:sp.payloadStart])
				pos = sp.payloadStart
				continue
			}
			parts = append(parts, ActionPart{Action: decodeOrUnknown(sp.payload(text))})
			pos = sp.end
			continue
		}

		part, end, ok := toolResult(text, start)
		if !ok {
			parts = appendText(parts, text[start:end])
		} else {
			parts = append(parts, part)
		}
		pos = end
	}
	if pos < len(text) {
		parts = appendText(parts, text[pos:])
	}
	if len(parts) == 0 {
		return []ContentPart{TextPart{Text: text}}
	}
	return parts
}

// nextMarker returns the offset of the earliest action or result marker at
// or after from, or -1.
func nextMarker(text string, from int) (int, bool) {
	a := strings.Index(text[from:], actionMarker)
	r := strings.Index(text[from:], resultMarker)
	switch {
	case a < 0 && r < 0:
		return -1, false
	case r < 0 || (a >= 0 && a < r):
		return from + a, true
	default:
		return from + r, false
	}
}

// toolResult reads a result segment starting at start. The JSON value runs
// to the next marker or the end of the text. ok is false when the segment is
// not a well formed result; end is then the offset up to which the segment
// should be kept as prose.
func toolResult(text string, start int) (part ToolResultPart, end int, ok bool) {
	nameStart := start + len(resultMarker)
	end = len(text)
	if next, _ := nextMarker(text, nameStart); next >= 0 {
		end = next
	}
	bracket := strings.IndexByte(text[nameStart:end], ']')
	if bracket < 0 {
		return part, end, false
	}

	value := strings.TrimSpace(text[nameStart+bracket+1 : end])
	if value == "" || !json.Valid([]byte(value)) {
		return part, end, false
	}
	return ToolResultPart{
		Tool:  strings.TrimSpace(text[nameStart : nameStart+bracket]),
		Value: json.RawMessage(value),
	}, end, true
}

func appendText(parts []ContentPart, s string) []ContentPart {
	if s == "" {
		return parts
	}
	if n := len(parts); n > 0 {
		if prev, ok := parts[n-1].(TextPart); ok {
			parts[n-1] = TextPart{Text: prev.Text + s}
			return parts
		}
	}
	return append(parts, TextPart{Text: s})
}
