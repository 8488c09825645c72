package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	logLevel  string
	storeKind string
)

var rootCmd = &cobra.Command{
	Use:   "cookiejar",
	Short: "cookiejar reads and writes named values in an ambient cookie store",
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "configuration file (default is none, settings come from COOKIEJAR_ env vars)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "set logging level - debug, trace, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&storeKind, "store", "", "ambient cookie store - 'memory', 'file', 'nats' or 'document'")
}
