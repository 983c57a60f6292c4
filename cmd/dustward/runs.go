package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"dustward/internal/platform/tui"
	"dustward/internal/registry"
	"dustward/internal/storage"
)

var flagRunsInteractive bool

var runsCmd = &cobra.Command{
	Use:   "runs [variant]",
	Short: "Show expedition history",
	Long: `Display recent expeditions for a variant (default: dustward).

With -i, opens an interactive browser instead.

Examples:
  dustward runs
  dustward runs dustward_clearskies
  dustward runs -i`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().BoolVarP(&flagRunsInteractive, "interactive", "i", false, "Browse runs interactively")
}

func runRuns(cmd *cobra.Command, args []string) {
	gameID := "dustward"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'dustward list' to see available variants.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRunsInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunBrowser(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running browser: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.RecentRuns(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Expeditions - %s\n", gameID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No expeditions recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'dustward play %s' to head out!\n", gameID)
		return
	}

	fmt.Printf("  %-16s  %-7s  %-6s  %-5s  %-8s  %-5s  %s\n",
		"Date", "Tokens", "Found", "Sold", "Repairs", "Logs", "Time")
	fmt.Printf("  %-16s  %-7s  %-6s  %-5s  %-8s  %-5s  %s\n",
		"----", "------", "-----", "----", "-------", "----", "----")

	for _, e := range runs {
		fmt.Printf("  %-16s  %-7d  %-6d  %-5d  %-8d  %-5d  %dm%02ds\n",
			e.CreatedAt.Format("2006-01-02 15:04"),
			e.Tokens, e.Scavenged, e.Sold, e.Repairs, e.Logs,
			e.DurationSecs/60, e.DurationSecs%60)
	}

	fmt.Println()
	best, err := store.BestTokens(gameID)
	if err == nil {
		fmt.Printf("Best: %d tokens\n", best)
	}
}
