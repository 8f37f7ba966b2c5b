package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/facet/internal/protocol"
)

func newParseCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "parse [text...]",
		Short: "Split agent text into prose, actions and tool results",
		Long: `Parse agent text the way the dispatcher does and print every part.
Text is read from the arguments, or from stdin when there are none.`,
		Example: `  facet parse 'Switching [action: {"SetThemeTone": "light"})]'
  cat transcript.log | facet parse --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			if asJSON {
				return printActionsJSON(cmd.OutOrStdout(), protocol.ParseText(text))
			}
			return printParts(cmd.OutOrStdout(), protocol.SplitTextAndActions(text))
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print only the actions as a JSON array")
	return cmd
}

func readText(r io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func printParts(w io.Writer, parts []protocol.ContentPart) error {
	for _, p := range parts {
		var err error
		switch p := p.(type) {
		case protocol.TextPart:
			if strings.TrimSpace(p.Text) == "" {
				continue
			}
			_, err = fmt.Fprintf(w, "text    %q\n", p.Text)
		case protocol.ActionPart:
			err = printAction(w, p.Action)
		case protocol.ToolResultPart:
			_, err = fmt.Fprintf(w, "result  %s %s\n", p.Tool, p.Value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func printAction(w io.Writer, a protocol.Action) error {
	data, err := protocol.Marshal(a)
	if err != nil {
		return err
	}
	if reason := protocol.ProtectionReason(a); reason != "" {
		_, err = fmt.Fprintf(w, "action  %s (protected: %s)\n", data, reason)
		return err
	}
	_, err = fmt.Fprintf(w, "action  %s\n", data)
	return err
}

func printActionsJSON(w io.Writer, actions []protocol.Action) error {
	out := make([]json.RawMessage, 0, len(actions))
	for _, a := range actions {
		data, err := protocol.Marshal(a)
		if err != nil {
			return err
		}
		out = append(out, data)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
