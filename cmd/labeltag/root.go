package main

import (
	"fmt"
	"os"
	"time"

	"github.com/nbd-wtf/go-nostr"
	"github.com/nbd-wtf/labelled"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "labeltag",
	Short: "Read labelled tags from nostr events",
	Long: `labeltag prints the value of the last tag of a given type whose final
item is a given label, for events read from files, stdin or relays.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			labelled.InfoLogger.SetOutput(os.Stderr)
			nostr.InfoLogger.SetOutput(os.Stderr)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.labeltag.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
	rootCmd.PersistentFlags().StringP("label", "l", "", "label expected as the last item of the tag")
	rootCmd.PersistentFlags().StringP("type", "t", labelled.DefaultType, "tag type to search")
	rootCmd.MarkPersistentFlagRequired("label")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("type", rootCmd.PersistentFlags().Lookup("type"))
	viper.SetDefault("timeout", 7*time.Second)

	rootCmd.AddCommand(newGetCommand())
	rootCmd.AddCommand(newFetchCommand())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".labeltag")
	}

	viper.SetEnvPrefix("LABELTAG")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && viper.GetBool("verbose") {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// lookupFlags reads --label and the configured tag type.
func lookupFlags(cmd *cobra.Command) (label string, tagType string) {
	label, _ = cmd.Flags().GetString("label")
	return label, viper.GetString("type")
}
