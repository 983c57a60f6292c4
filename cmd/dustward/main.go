// dustward is a terminal scavenging game set in a desert outside a walled
// city. Roam the dunes, collect salvage, repair it at the workbench, and
// trade it at the gate while the day cycle and sandstorms run overhead.
//
// Usage:
//
//	dustward play [variant]   - Head out into the dunes
//	dustward list             - List game variants
//	dustward serve            - Start SSH server for remote play
//	dustward runs             - Show expedition history
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible worlds
//	--db <path>     - Set database path (default: ~/.dustward/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game package to register its variants
	_ "dustward/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dustward",
	Short: "Dustward - desert scavenging in your terminal",
	Long: `Dustward is a terminal game about scavenging the dunes outside a
walled desert city. Pick up salvage, repair it at the workbench, sell it
at the gate, and buy the data logs that tell you what happened here.

Available commands:
  play     - Head out into the dunes
  list     - Show game variants
  serve    - Start SSH server for remote play
  runs     - View expedition history

Examples:
  dustward play
  dustward play dustward_clearskies
  dustward play --preset harsh --seed 42
  dustward serve --ssh :2222
  dustward runs -i`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dustward/runs.db", "Path to runs database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
}
