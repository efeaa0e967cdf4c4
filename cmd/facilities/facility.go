package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gyeh/facilities/internal/apperr"
	"github.com/gyeh/facilities/internal/model"
	v0 "github.com/gyeh/facilities/internal/transform/v0"
	v1 "github.com/gyeh/facilities/internal/transform/v1"
)

var readVersion string

var facilityCmd = &cobra.Command{
	Use:   "facility",
	Short: "Inspect stored facilities",
}

var facilityGetCmd = &cobra.Command{
	Use:   "get <facility-id>",
	Short: "Print a facility in the v0 or v1 shape",
	Args:  cobra.ExactArgs(1),
	Run:   runFacilityGet,
}

var serviceCmd = &cobra.Command{
	Use:   "service",
	Short: "Inspect a facility's detailed services",
}

var serviceGetCmd = &cobra.Command{
	Use:   "get <facility-id> <service-id>",
	Short: "Print one detailed service from a facility's overlay",
	Args:  cobra.ExactArgs(2),
	Run:   runServiceGet,
}

func init() {
	facilityCmd.PersistentFlags().StringVar(&readVersion, "version", versionV1, "API version: v0 or v1")
	serviceCmd.PersistentFlags().StringVar(&readVersion, "version", versionV1, "API version: v0 or v1")

	facilityCmd.AddCommand(facilityGetCmd)
	serviceCmd.AddCommand(serviceGetCmd)
	rootCmd.AddCommand(facilityCmd, serviceCmd)
}

func runFacilityGet(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	a := openApp(ctx)
	defer a.close()

	if err := checkVersion(readVersion); err != nil {
		a.fail(err, "bad version")
	}
	id := args[0]
	if err := model.ValidateFacilityID(id); err != nil {
		a.fail(err, "bad facility id")
	}
	f, ok, err := a.store.GetFacility(ctx, id)
	if err != nil {
		a.fail(err, "facility lookup failed")
	}
	if !ok {
		a.fail(apperr.NotFound("facility %s", id), "facility lookup failed")
	}

	var out any
	if readVersion == versionV0 {
		out = v0.New().ToV0(f)
	} else {
		out = v1.New(cfg.LinkerURL, a.names(ctx, false)).ToV1(f)
	}
	if err := printJSON(map[string]any{"data": out}); err != nil {
		a.fail(err, "print failed")
	}
}

func runServiceGet(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	a := openApp(ctx)
	defer a.close()

	if err := checkVersion(readVersion); err != nil {
		a.fail(err, "bad version")
	}
	d, err := a.overlays(a.store, nil).GetDetailedService(ctx, args[0], args[1])
	if err != nil {
		a.fail(err, "service lookup failed")
	}

	var out any
	if readVersion == versionV0 {
		out = v0.New().DetailedServiceToV0(d)
	} else {
		out = v1.New(cfg.LinkerURL, nil).DetailedServiceToV1(d)
	}
	if err := printJSON(map[string]any{"data": out}); err != nil {
		a.fail(err, "print failed")
	}
}
