package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"craftbench/internal/sim/catalogs"
)

func main() {
	configDir := flag.String("configs", "./configs", "config directory")
	flag.Parse()

	if *configDir == "" {
		fmt.Fprintln(os.Stderr, "missing -configs")
		os.Exit(2)
	}

	cats, err := catalogs.Load(*configDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "catalogs:", err)
		os.Exit(1)
	}

	fmt.Printf("items   %d  digest=%s\n", len(cats.Items.Defs), cats.Items.Digest)
	fmt.Printf("recipes %d  digest=%s\n", len(cats.Recipes.ByID), cats.Recipes.Digest)
	fmt.Printf("stations %d digest=%s\n", len(cats.Stations.ByID), cats.Stations.Digest)

	ids := make([]string, 0, len(cats.Stations.ByID))
	for id := range cats.Stations.ByID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		st := cats.Stations.ByID[id]
		fmt.Printf("  %s: %d recipes\n", id, len(st.Recipes))
	}
}
