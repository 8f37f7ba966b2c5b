package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/facet/internal/memory"
	"github.com/five82/facet/internal/semantic"
)

func newMemoryCmd(g *globalOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "memory",
		Short: "Manage records saved by Memorize actions",
	}
	cmd.PersistentFlags().BoolVar(&asJSON, "json", false, "print records as JSON")

	withStore := func(fn func(*memory.Store) error) error {
		cfg, err := g.loadConfig()
		if err != nil {
			return err
		}
		store, err := memory.Open(cfg.MemoryPath, nil)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		return fn(store)
	}
	show := func(w io.Writer, recs []semantic.Record) error {
		if asJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(recs)
		}
		return printRecords(w, recs)
	}

	var collection string
	save := &cobra.Command{
		Use:   "save <content>",
		Short: "Save a record",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(s *memory.Store) error {
				rec, err := s.Save(cmd.Context(), semantic.Record{
					Collection: collection,
					Content:    strings.Join(args, " "),
				})
				if err != nil {
					return err
				}
				return show(cmd.OutOrStdout(), []semantic.Record{rec})
			})
		},
	}
	save.Flags().StringVar(&collection, "collection", semantic.DefaultCollection, "collection name")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list [collection]",
			Short: "List records, optionally from one collection",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var coll string
				if len(args) == 1 {
					coll = args[0]
				}
				return withStore(func(s *memory.Store) error {
					recs, err := s.List(cmd.Context(), coll)
					if err != nil {
						return err
					}
					return show(cmd.OutOrStdout(), recs)
				})
			},
		},
		&cobra.Command{
			Use:   "find <query>",
			Short: "Find records whose content or collection contains query",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(func(s *memory.Store) error {
					recs, err := s.Find(cmd.Context(), strings.Join(args, " "))
					if err != nil {
						return err
					}
					return show(cmd.OutOrStdout(), recs)
				})
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a record",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(func(s *memory.Store) error {
					if err := s.Delete(cmd.Context(), args[0]); err != nil {
						return err
					}
					_, err := fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
					return err
				})
			},
		},
		save,
	)
	return cmd
}

func printRecords(w io.Writer, recs []semantic.Record) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCOLLECTION\tSAVED\tCONTENT")
	for _, r := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ID, r.Collection, r.Timestamp.Format(time.DateTime), r.Content)
	}
	return tw.Flush()
}
