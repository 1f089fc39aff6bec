package main

import (
	"fmt"

	"github.com/nbd-wtf/labelled"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newFetchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch <note|nevent|id>...",
		Short: "Fetch events from relays and print their labelled tag values",
		Long: `Fetches each event from the relay hints in its code and from the
configured relays, then prints the value of its labelled tag.

Examples:
  labeltag fetch -l reply nevent1...
  LABELTAG_RELAYS="wss://nos.lol wss://relay.damus.io" labeltag fetch -l root <hex id>`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label, tagType := lookupFlags(cmd)

			return runFetch(cmd, newFetcherFromConfig(), args, label, tagType)
		},
	}

	cmd.Flags().StringSlice("relay", nil, "relay to query, can be repeated")
	viper.BindPFlag("relays", cmd.Flags().Lookup("relay"))
	return cmd
}

// newFetcherFromConfig builds a Fetcher from the "relays" and "timeout" keys.
func newFetcherFromConfig() *labelled.Fetcher {
	fetcher := labelled.NewFetcher(viper.GetStringSlice("relays")...)
	if timeout := viper.GetDuration("timeout"); timeout > 0 {
		fetcher.Timeout = timeout
	}
	return fetcher
}

func runFetch(cmd *cobra.Command, fetcher *labelled.Fetcher, codes []string, label string, tagType string) error {
	for _, code := range codes {
		evt, err := fetcher.Fetch(cmd.Context(), code)
		if err != nil {
			return err
		}

		value, ok := labelled.GetLabelledTag(evt, label, tagType)
		if !ok {
			return fmt.Errorf("event %s has no %q tag labelled %q", evt.ID, orDefault(tagType), label)
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
	}
	return nil
}

func orDefault(tagType string) string {
	if tagType == "" {
		return labelled.DefaultType
	}
	return tagType
}
