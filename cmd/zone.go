package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/planetarian/qonqr/qonqr"
)

// maxConcurrentFetches limits parallel zone lookups
const maxConcurrentFetches = 10

// zoneCmd represents the zone command
var zoneCmd = &cobra.Command{
	Use:   "zone <id>...",
	Short: "Show the status of one or more zones",
	Long: `Fetch the current status of the given zone ids. Multiple ids are
fetched concurrently.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runZone,
}

func runZone(cmd *cobra.Command, args []string) error {
	ids := make([]uint32, len(args))
	for i, arg := range args {
		id, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid zone id %q: %w", arg, err)
		}
		ids[i] = uint32(id)
	}

	ctx := context.Background()
	zones := make([]*qonqr.Zone, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			zone, err := client.ZoneStatus(ctx, id)
			if err != nil {
				return err
			}
			zones[i] = zone
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, zone := range zones {
		printZone(zone)
	}

	return nil
}

func printZone(z *qonqr.Zone) {
	fmt.Printf("• %s (#%d) — %s, %s\n", z.Name, z.ID, z.RegionName, z.CountryName)
	fmt.Printf("  Control: %s", z.ControlState)
	if !z.DateCaptured.IsZero() {
		fmt.Printf(" (captured %s)", z.DateCaptured.Format("2006-01-02"))
	}
	fmt.Println()
	fmt.Printf("  Bots: Legion %d / Swarm %d / Faceless %d\n",
		z.LegionCount, z.SwarmCount, z.FacelessCount)
	if !z.LastUpdate.IsZero() {
		fmt.Printf("  Updated: %s\n", z.LastUpdate.Format("2006-01-02 15:04"))
	}
}
