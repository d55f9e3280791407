package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/planetarian/qonqr/qonqr"
)

// zonesCmd groups the zone-listing commands
var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List zones by area",
}

// zonesBboxCmd represents the zones bbox command
var zonesBboxCmd = &cobra.Command{
	Use:   "bbox <top> <left> <bottom> <right>",
	Short: "List zones inside a bounding box",
	Long: `List up to 500 zones inside the given bounding box, most recently
updated first. Coordinates are decimal degrees.`,
	Args: cobra.ExactArgs(4),
	RunE: runZonesBbox,
}

// zonesSinceCmd represents the zones since command
var zonesSinceCmd = &cobra.Command{
	Use:   "since <gridRef> <time>",
	Short: "List zones in a grid cell updated since a point in time",
	Long: `List zones inside the given grid cell whose status changed since
the given RFC 3339 time, e.g. "2024-06-01T00:00:00Z".`,
	Args: cobra.ExactArgs(2),
	RunE: runZonesSince,
}

func init() {
	zonesCmd.AddCommand(zonesBboxCmd)
	zonesCmd.AddCommand(zonesSinceCmd)
}

func runZonesBbox(cmd *cobra.Command, args []string) error {
	coords := make([]float64, 4)
	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid coordinate %q: %w", arg, err)
		}
		coords[i] = f
	}

	ctx := context.Background()
	list, err := client.ZonesByBoundingBox(ctx, coords[0], coords[1], coords[2], coords[3])
	if err != nil {
		return err
	}

	printZoneList(list)
	return nil
}

func runZonesSince(cmd *cobra.Command, args []string) error {
	gridRef := args[0]
	if !qonqr.ValidGridReference(gridRef) {
		return fmt.Errorf("invalid grid reference %q", gridRef)
	}

	since, err := time.Parse(time.RFC3339, args[1])
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", args[1], err)
	}

	ctx := context.Background()
	list, err := client.ZonesByGridReference(ctx, gridRef, since)
	if err != nil {
		return err
	}

	printZoneList(list)
	return nil
}

func printZoneList(list *qonqr.ZoneList) {
	if list.Len() == 0 {
		fmt.Println("No zones found.")
		return
	}

	fmt.Printf("Found %d zones:\n", list.Len())
	for it := list.Iter(); it.Next(); {
		zone := it.Zone()
		printZone(&zone)
	}
}
