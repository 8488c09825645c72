package cmd

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/metal-toolbox/cookiejar/internal/version"
	"github.com/spf13/cobra"
)

var cmdVersion = &cobra.Command{
	Use:   "version",
	Short: "Print cookiejar version along with dependency information",
	Run: func(cmd *cobra.Command, args []string) {
		b, err := json.MarshalIndent(version.Current(), "", "  ")
		if err != nil {
			log.Fatal(err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(b))
	},
}

func init() {
	rootCmd.AddCommand(cmdVersion)
}
