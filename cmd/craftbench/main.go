package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"craftbench/internal/persistence/log"
	"craftbench/internal/sim/catalogs"
	"craftbench/internal/sim/inventory"
	"craftbench/internal/sim/station"
	"craftbench/internal/sim/transfer"
	"craftbench/internal/sim/tuning"
)

func main() {
	var (
		configDir = flag.String("configs", "./configs", "config directory")
		stationID = flag.String("station", "WORKBENCH", "station to run the demo against")
		eventsDir = flag.String("events", "", "event log directory (overrides tuning)")
	)
	flag.Parse()

	tun, err := tuning.Load(filepath.Join(*configDir, "tuning.yaml"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "load tuning:", err)
		os.Exit(1)
	}
	cats, err := catalogs.Load(*configDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load catalogs:", err)
		os.Exit(1)
	}

	dir := tun.EventsDir
	if *eventsDir != "" {
		dir = *eventsDir
	}
	logger := log.NewEconomyLogger(dir)
	defer logger.Close()

	recipes, ok := cats.RecipesFor(*stationID)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown station %q\n", *stationID)
		os.Exit(2)
	}

	inv := inventory.New(&cats.Items, tun.InventorySize)
	st := station.New(*stationID, recipes, station.Config{
		Slots:           tun.Stations.SlotCount,
		StrictMatch:     tun.Stations.StrictMatch,
		RestrictToKnown: tun.Stations.RestrictToKnown,
		Sink:            inv,
		Events:          logger,
	})
	st.Subscribe(func() {
		fmt.Printf("station %s: status=%s max_crafts=%d\n", st.ID(), st.Status(), st.MaxCraftsAvailable())
	})

	// Gather some raw materials.
	inv.Add("WOOD", 15)
	inv.Add("STONE", 8)
	fmt.Println("inventory:", formatTotals(inv.Totals()))

	// Stage ingredients through transfer sessions, the way the drag layer
	// does: the source is only decremented by what the slot accepted.
	stage(st, inv, 0, "WOOD", 6, logger)
	stage(st, inv, 1, "STONE", 3, logger)

	if r, ok := st.CurrentRecipe(); ok {
		fmt.Printf("matched %s -> %dx %s, can craft %d\n", r.RecipeID, st.OutputPerCraft(), st.OutputItem(), st.MaxCraftsAvailable())
	}

	crafted := st.TryCraftAll()
	fmt.Printf("crafted %d batches\n", crafted)

	returned := st.ReturnInputsToInventory()
	fmt.Printf("returned %d leftover units\n", returned)
	fmt.Println("inventory:", formatTotals(inv.Totals()))

	fmt.Printf("catalog digests: items=%s recipes=%s stations=%s\n",
		cats.Items.Digest[:12], cats.Recipes.Digest[:12], cats.Stations.Digest[:12])
}

func stage(st *station.Station, inv *inventory.Inventory, slot int, item string, amount int, logger *log.EconomyLogger) {
	have := inv.Count(item)
	if have < amount {
		amount = have
	}
	sess, ok := transfer.Begin(item, amount, func(used int) {
		inv.Remove(item, used)
	}, transfer.WithEvents(logger))
	if !ok {
		return
	}
	added := st.AddToSlot(slot, item, sess.Amount())
	if added > 0 {
		sess.Consume(added)
	} else {
		sess.Cancel()
	}
}

func formatTotals(totals map[string]int) string {
	items := make([]string, 0, len(totals))
	for item := range totals {
		items = append(items, item)
	}
	sort.Strings(items)
	out := ""
	for i, item := range items {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%s=%d", item, totals[item])
	}
	return out
}
