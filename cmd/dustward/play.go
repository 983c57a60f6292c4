package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"dustward/internal/config"
	"dustward/internal/core"
	"dustward/internal/game"
	"dustward/internal/platform/tui"
	"dustward/internal/registry"
	"dustward/internal/storage"
)

var (
	flagConfig string
	flagPreset string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Head out into the dunes",
	Long: `Start an expedition. With no argument the standard variant runs;
pass a variant ID to pick another (see 'dustward list').

Controls:
  WASD/Arrows - Move
  E/Space     - Interact: pick up, open workbench or gate
  I           - Inventory
  1-9, 0      - Select slot on an open screen
  Mouse       - Click slots and buttons directly
  Esc         - Close screen
  Q/Ctrl+C    - Quit (run summary is saved)

Preset options:
  mild    - Longer calms, gentler storms
  normal  - Reference balance
  harsh   - Short calms, stronger storms

Examples:
  dustward play
  dustward play dustward_clearskies
  dustward play --preset harsh
  dustward play --config ./my-world.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom world config YAML")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Balance preset: mild, normal, harsh")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "dustward"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'dustward list' to see available variants.")
		os.Exit(1)
	}

	// Terminal size for the initial screen buffer
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	worldCfg, err := config.LoadWorld(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&worldCfg, config.Preset(flagPreset))

	g, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	if dg, ok := g.(*game.Game); ok {
		dg.SetConfig(worldCfg)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(g, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
