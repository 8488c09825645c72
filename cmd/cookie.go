package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/equinix-labs/otel-init-go/otelinit"
	"github.com/metal-toolbox/cookiejar/app"
	"github.com/metal-toolbox/cookiejar/internal/cookie"
	"github.com/metal-toolbox/cookiejar/internal/store"
	"github.com/metal-toolbox/cookiejar/pkg/types"
	"github.com/spf13/cobra"
)

var getDefault string

var cmdSet = &cobra.Command{
	Use:   "set NAME VALUE",
	Short: "Set a cookie",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		err := withAccessor(cmd.Context(), func(_ store.Store, a *cookie.Accessor) error {
			a.Set(args[0], args[1])
			return nil
		})
		if err != nil {
			log.Fatal(err)
		}
	},
}

var cmdGet = &cobra.Command{
	Use:   "get NAME",
	Short: "Print a cookie value, nothing when it is not set",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var def *string
		if cmd.Flags().Changed("default") {
			def = cookie.String(getDefault)
		}

		err := withAccessor(cmd.Context(), func(_ store.Store, a *cookie.Accessor) error {
			if value := a.Get(args[0], def); value != nil {
				fmt.Fprintln(cmd.OutOrStdout(), *value)
			}

			return nil
		})
		if err != nil {
			log.Fatal(err)
		}
	},
}

var cmdRemove = &cobra.Command{
	Use:   "remove NAME",
	Short: "Remove a cookie",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := withAccessor(cmd.Context(), func(_ store.Store, a *cookie.Accessor) error {
			a.Remove(args[0])
			return nil
		})
		if err != nil {
			log.Fatal(err)
		}
	},
}

var cmdDump = &cobra.Command{
	Use:   "dump",
	Short: "Print the raw cookie store contents",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := withAccessor(cmd.Context(), func(s store.Store, _ *cookie.Accessor) error {
			cookies, err := s.Read()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cookies)

			return nil
		})
		if err != nil {
			log.Fatal(err)
		}
	},
}

// withAccessor sets up the app, its store and an accessor over it, then
// runs fn. Errors are returned once the store and tracer are shut down.
func withAccessor(ctx context.Context, fn func(store.Store, *cookie.Accessor) error) error {
	theApp, err := app.New(
		types.AppKindCookieJar,
		types.StoreKind(storeKind),
		cfgFile,
		logLevel,
	)
	if err != nil {
		return err
	}

	ctx, otelShutdown := otelinit.InitOpenTelemetry(ctx, string(types.AppKindCookieJar))
	defer otelShutdown(ctx)

	s, closeStore, err := store.New(theApp.Config)
	if err != nil {
		return err
	}
	defer closeStore()

	theApp.Logger.WithField("store", theApp.Config.StoreKind).Debug("cookie store ready")

	return fn(s, cookie.New(s, theApp.Logger))
}

func init() {
	cmdGet.Flags().StringVar(&getDefault, "default", "", "value printed when the cookie store cannot be read")

	rootCmd.AddCommand(cmdSet, cmdGet, cmdRemove, cmdDump)
}
