// Package transcript reads agent transcripts from disk.
//
// A transcript is a plain text file that an agent appends to as it streams
// its reply. Read tails it line by line for display. Load parses the whole
// file into prose, actions and tool results. Watch keeps that parse current
// with fsnotify and reports only the actions that appeared since the last
// update, so a caller can dispatch each action exactly once while the agent
// is still writing.
package transcript
