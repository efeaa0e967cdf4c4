package main

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/gyeh/facilities/internal/apperr"
	"github.com/gyeh/facilities/internal/model"
	"github.com/gyeh/facilities/internal/overlay"
	v0 "github.com/gyeh/facilities/internal/transform/v0"
	v1 "github.com/gyeh/facilities/internal/transform/v1"
)

var (
	overlayVersion string
	overlayFile    string
)

var overlayCmd = &cobra.Command{
	Use:   "overlay",
	Short: "Submit and inspect CMS overlays",
}

var overlayApplyCmd = &cobra.Command{
	Use:   "apply <facility-id>",
	Short: "Merge a CMS overlay submission into a facility",
	Args:  cobra.ExactArgs(1),
	Run:   runOverlayApply,
}

var overlayGetCmd = &cobra.Command{
	Use:   "get <facility-id>",
	Short: "Print the persisted overlay of a facility",
	Args:  cobra.ExactArgs(1),
	Run:   runOverlayGet,
}

func init() {
	overlayCmd.PersistentFlags().StringVar(&overlayVersion, "version", versionV1, "API version of the overlay document: v0 or v1")

	f := overlayApplyCmd.Flags()
	f.StringVar(&overlayFile, "file", "-", "Overlay JSON document, or - for stdin")
	f.BoolVar(&cfg.DryRun, "dry-run", false, "Merge and print the result without saving it")

	overlayCmd.AddCommand(overlayApplyCmd, overlayGetCmd)
	rootCmd.AddCommand(overlayCmd)
}

type applyOutput struct {
	Status       overlay.Status `json:"status"`
	SubmissionID string         `json:"submissionId"`
	Kept         int            `json:"kept"`
	Added        int            `json:"added"`
	Dropped      int            `json:"dropped"`
	Overlay      any            `json:"overlay"`
}

func runOverlayApply(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	a := openApp(ctx)
	defer a.close()

	if err := checkVersion(overlayVersion); err != nil {
		a.fail(err, "bad version")
	}
	data, err := readInput(overlayFile)
	if err != nil {
		a.fail(err, "overlay read failed")
	}
	incoming, err := decodeOverlay(overlayVersion, data)
	if err != nil {
		a.fail(err, "overlay decode failed")
	}

	st := overlay.Store(a.store)
	if cfg.DryRun {
		st = dryRunStore{a.store}
	}
	names := a.namesFor(ctx, overlayVersion)
	out, err := a.overlays(st, names).Apply(ctx, args[0], incoming)
	if err != nil {
		a.fail(err, "overlay apply failed")
	}

	res := applyOutput{
		Status:       out.Status,
		SubmissionID: out.SubmissionID.String(),
		Kept:         out.Stats.Kept,
		Added:        out.Stats.Added,
		Dropped:      out.Stats.Dropped,
		Overlay:      encodeOverlay(overlayVersion, names, out.Overlay),
	}
	if err := printJSON(res); err != nil {
		a.fail(err, "print failed")
	}
}

func runOverlayGet(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	a := openApp(ctx)
	defer a.close()

	if err := checkVersion(overlayVersion); err != nil {
		a.fail(err, "bad version")
	}
	o, err := a.overlays(a.store, nil).GetOverlay(ctx, args[0])
	if err != nil {
		a.fail(err, "overlay lookup failed")
	}
	if err := printJSON(encodeOverlay(overlayVersion, a.namesFor(ctx, overlayVersion), o)); err != nil {
		a.fail(err, "print failed")
	}
}

// decodeOverlay parses a submission in the given API version. Malformed JSON
// and unknown serviceType literals are invalid parameters.
func decodeOverlay(version string, data []byte) (model.CmsOverlay, error) {
	var (
		o   model.CmsOverlay
		err error
	)
	if version == versionV0 {
		var wire v0.CmsOverlay
		if err := json.Unmarshal(data, &wire); err != nil {
			return model.CmsOverlay{}, apperr.InvalidParameter("v0 overlay: %v", err)
		}
		o, err = v0.New().OverlayToCanonical(wire)
	} else {
		var wire v1.CmsOverlay
		if err := json.Unmarshal(data, &wire); err != nil {
			return model.CmsOverlay{}, apperr.InvalidParameter("v1 overlay: %v", err)
		}
		o, err = v1.New(cfg.LinkerURL, nil).OverlayToCanonical(wire)
	}
	if err != nil {
		return model.CmsOverlay{}, apperr.InvalidParameter("overlay: %w", err)
	}
	return o, nil
}

func encodeOverlay(version string, names v1.NameResolver, o model.CmsOverlay) any {
	if version == versionV0 {
		return v0.New().OverlayToV0(o)
	}
	return v1.New(cfg.LinkerURL, names).OverlayToV1(o)
}
