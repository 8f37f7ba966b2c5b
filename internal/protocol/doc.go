// Package protocol decodes the commands an agent embeds in its text.
//
// An action is written inline as
//
//	[action: {"Navigate": "Introduction"})]
//
// The closing ")]" is preferred; a lone "]" is accepted when ")]" does not
// appear before the next marker. A marker with no terminator is left in the
// text as prose. Payloads use the externally tagged form {"Tag": value};
// tags, aliases and enum values match case-insensitively. Anything that does
// not decode is kept as Unknown so one bad utterance never breaks a
// conversation.
//
// Every function here is pure and safe for concurrent use.
package protocol
