// cavebat is a terminal arcade game: steer a bat through a scrolling
// cave of stalactites and stalagmites by flapping.
//
// Usage:
//
//	cavebat              - Play with the built-in tuning
//	cavebat play         - Same as above
//	cavebat config       - Print the default tuning YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cavebat",
	Short: "Cave Bat - Flap through the cave in your terminal",
	Long: `Cave Bat is a terminal arcade game. Flap to climb and to push
forward; stop flapping and the cave slows down while gravity pulls you
into the stalagmites.

Examples:
  cavebat
  cavebat --seed 42
  cavebat play --config ./my-cave.yaml
  cavebat config > ~/.cavebat/config.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
