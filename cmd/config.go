package cmd

import (
	"fmt"
	"log"
	"sort"

	"github.com/jeremywohl/flatten"
	"github.com/metal-toolbox/cookiejar/app"
	"github.com/metal-toolbox/cookiejar/pkg/types"
	"github.com/spf13/cobra"
)

var cmdConfig = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		theApp, err := app.New(
			types.AppKindCookieJar,
			types.StoreKind(storeKind),
			cfgFile,
			logLevel,
		)
		if err != nil {
			log.Fatal(err)
		}

		flat, err := flatten.Flatten(theApp.Settings(), "", flatten.DotStyle)
		if err != nil {
			log.Fatal(err)
		}

		keys := make([]string, 0, len(flat))
		for k := range flat {
			keys = append(keys, k)
		}

		sort.Strings(keys)

		for _, k := range keys {
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%v\n", k, flat[k])
		}
	},
}

func init() {
	rootCmd.AddCommand(cmdConfig)
}
