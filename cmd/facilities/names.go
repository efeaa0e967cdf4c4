package main

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/gyeh/facilities/internal/taxonomy"
)

var namesV0 bool

var namesCmd = &cobra.Command{
	Use:   "names",
	Short: "Service name aggregation",
}

var namesReloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Reload every naming authority and print the aggregated mapping",
	Run:   runNamesReload,
}

var namesCatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the built-in service taxonomy",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, e := range taxonomy.Entries() {
			fmt.Printf("%s\t%s\t%s\n", e.Type, e.ID, e.Name)
		}
	},
}

func init() {
	namesReloadCmd.Flags().BoolVar(&namesV0, "v0", false, "Use the v0 aggregator (COVID-19 name from CMS only)")
	namesCmd.AddCommand(namesReloadCmd, namesCatalogCmd)
	rootCmd.AddCommand(namesCmd)
}

func runNamesReload(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	a := openApp(ctx)
	defer a.close()

	mapping := a.names(ctx, namesV0).Mapping()
	for _, id := range slices.Sorted(maps.Keys(mapping)) {
		fmt.Printf("%s\t%s\n", id, mapping[id])
	}
}
