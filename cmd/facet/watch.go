package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/facet/internal/transcript"
)

func newWatchCmd() *cobra.Command {
	var (
		debounce time.Duration
		tail     int
	)
	cmd := &cobra.Command{
		Use:   "watch <transcript>",
		Short: "Print new actions as an agent transcript grows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if tail > 0 {
				lines, err := transcript.Read(args[0], tail)
				if err != nil {
					return err
				}
				for _, line := range lines {
					if _, err := fmt.Fprintf(w, "| %s\n", line); err != nil {
						return err
					}
				}
			}
			var werr error
			err := transcript.Watch(cmd.Context(), args[0], func(u transcript.Update) {
				for _, a := range u.New {
					if werr == nil {
						werr = printAction(w, a)
					}
				}
			}, transcript.WatchOptions{Debounce: debounce})
			if err != nil {
				return fmt.Errorf("watch %s: %w", args[0], err)
			}
			return werr
		},
	}
	cmd.Flags().IntVar(&tail, "tail", 0, "print the last N transcript lines before watching")
	cmd.Flags().DurationVar(&debounce, "debounce", 100*time.Millisecond, "quiet period before re-parsing")
	return cmd
}
