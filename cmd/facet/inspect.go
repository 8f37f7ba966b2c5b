package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/five82/facet/internal/exposure"
	"github.com/five82/facet/internal/protocol"
)

func newInspectCmd(g *globalOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Talk to a running facet exposure API",
	}
	cmd.PersistentFlags().StringVar(&addr, "addr", "", "exposure API address (default from config)")

	client := func() (*exposure.Client, error) {
		bind := addr
		if bind == "" {
			cfg, err := g.loadConfig()
			if err != nil {
				return nil, err
			}
			bind = cfg.ExposureBind
		}
		return exposure.NewClient(bind)
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "schema",
			Short: "Show the protocol version and action variants",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				c, err := client()
				if err != nil {
					return err
				}
				s, err := c.Schema(cmd.Context())
				if err != nil {
					return err
				}
				return printSchema(cmd.OutOrStdout(), s)
			},
		},
		&cobra.Command{
			Use:   "instructions",
			Short: "Print the agent-facing protocol instructions",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				c, err := client()
				if err != nil {
					return err
				}
				text, err := c.Instructions(cmd.Context())
				if err != nil {
					return err
				}
				_, err = io.WriteString(cmd.OutOrStdout(), text)
				return err
			},
		},
		&cobra.Command{
			Use:   "view",
			Short: "Print the semantic tree currently on screen",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				c, err := client()
				if err != nil {
					return err
				}
				node, err := c.View(cmd.Context())
				if err != nil {
					return err
				}
				data, err := node.MarshalIndent()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			},
		},
		&cobra.Command{
			Use:     "send <action-json>...",
			Short:   "Dispatch actions, e.g. '{\"Navigate\": \"Colors\"}'",
			Example: `  facet inspect send '{"SetThemeTone": "light"}' '{"Navigate": "Colors"}'`,
			Args:    cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				actions := make([]protocol.Action, 0, len(args))
				for _, arg := range args {
					a, err := protocol.Decode(arg)
					if err != nil {
						return fmt.Errorf("decode %s: %w", arg, err)
					}
					actions = append(actions, a)
				}
				c, err := client()
				if err != nil {
					return err
				}
				results, err := c.SendActions(cmd.Context(), actions...)
				if err != nil {
					return err
				}
				return printResults(cmd.OutOrStdout(), results)
			},
		},
		&cobra.Command{
			Use:   "text [agent text]",
			Short: "Dispatch every action embedded in agent text (stdin when no args)",
			RunE: func(cmd *cobra.Command, args []string) error {
				text, err := readText(cmd.InOrStdin(), args)
				if err != nil {
					return err
				}
				c, err := client()
				if err != nil {
					return err
				}
				results, err := c.SendText(cmd.Context(), text)
				if err != nil {
					return err
				}
				return printResults(cmd.OutOrStdout(), results)
			},
		},
	)
	return cmd
}

func printSchema(w io.Writer, s exposure.Schema) error {
	fmt.Fprintf(w, "protocol %s\n\n", s.Version)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TAG\tEXAMPLE\tAPPROVAL")
	for _, v := range s.Actions {
		approval := v.Protected
		if approval == "" {
			approval = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", v.Tag, v.Example, approval)
	}
	return tw.Flush()
}

func printResults(w io.Writer, results []exposure.ActionResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ACTION\tOUTCOME\tDETAIL")
	for _, r := range results {
		detail := r.Error
		if detail == "" {
			detail = r.Segment
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", compactJSON(r.Action), r.Outcome, detail)
	}
	return tw.Flush()
}

func compactJSON(raw json.RawMessage) string {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return string(raw)
	}
	return string(data)
}
