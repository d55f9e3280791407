package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// gridCmd groups the grid reference commands
var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Work with grid references",
}

// gridLocateCmd represents the grid locate command
var gridLocateCmd = &cobra.Command{
	Use:   "locate <lat> <lon>",
	Short: "Resolve a coordinate to its grid reference",
	Args:  cobra.ExactArgs(2),
	RunE:  runGridLocate,
}

// gridBreakdownCmd represents the grid breakdown command
var gridBreakdownCmd = &cobra.Command{
	Use:   "breakdown <cell>",
	Short: "List the sub-quadrants of a top-level grid cell",
	Long: `List the sub-quadrants of a top-level grid cell such as "16S",
with the bounding box each one covers.`,
	Args: cobra.ExactArgs(1),
	RunE: runGridBreakdown,
}

func init() {
	gridCmd.AddCommand(gridLocateCmd)
	gridCmd.AddCommand(gridBreakdownCmd)
}

func runGridLocate(cmd *cobra.Command, args []string) error {
	lat, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid latitude %q: %w", args[0], err)
	}
	lon, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid longitude %q: %w", args[1], err)
	}

	ctx := context.Background()
	loc, err := client.LocateGridReference(ctx, lat, lon)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%g, %g)\n", loc.GridReference, loc.Latitude, loc.Longitude)
	return nil
}

func runGridBreakdown(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	areas, err := client.GridBreakdown(ctx, args[0])
	if err != nil {
		return err
	}

	if len(areas) == 0 {
		fmt.Println("No sub-quadrants found.")
		return nil
	}

	fmt.Printf("Found %d sub-quadrants:\n", len(areas))
	for _, area := range areas {
		fmt.Printf("• %s  lat %g..%g  lon %g..%g\n",
			area.GridReference,
			area.BottomLatitude, area.TopLatitude,
			area.LeftLongitude, area.RightLongitude)
	}

	return nil
}
