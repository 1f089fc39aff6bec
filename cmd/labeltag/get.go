package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nbd-wtf/labelled"
	"github.com/spf13/cobra"
)

func newGetCommand() *cobra.Command {
	var withID bool

	cmd := &cobra.Command{
		Use:   "get [file...]",
		Short: "Print labelled tag values of events read as JSON lines",
		Long: `Reads one event per line, either as a raw event object or as an
["EVENT", ...] relay message, from the given files or from stdin.

Examples:
  labeltag get --label reply events.jsonl
  nak req -k 1 wss://relay.example.com | labeltag get -l root --with-id
  labeltag get -l fork -t a repos.jsonl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			label, tagType := lookupFlags(cmd)
			if len(args) == 0 {
				return runGet(cmd.OutOrStdout(), cmd.InOrStdin(), label, tagType, withID)
			}

			for _, name := range args {
				f, err := os.Open(name)
				if err != nil {
					return err
				}
				err = runGet(cmd.OutOrStdout(), f, label, tagType, withID)
				f.Close()
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withID, "with-id", false, "prefix each value with the event id and a tab")
	return cmd
}

func runGet(w io.Writer, r io.Reader, label string, tagType string, withID bool) error {
	var failed int
	for evt, err := range labelled.ReadEvents(r) {
		if err != nil {
			labelled.InfoLogger.Print(err)
			failed++
			continue
		}

		value, ok := labelled.GetLabelledTag(evt, label, tagType)
		if !ok {
			labelled.InfoLogger.Printf("no tag labelled %q in %s", label, evt.ID)
			continue
		}

		if withID {
			fmt.Fprintf(w, "%s\t%s\n", evt.ID, value)
		} else {
			fmt.Fprintln(w, value)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d lines couldn't be decoded", failed)
	}
	return nil
}
