// ringflip is a terminal flyer: steer through a chain of rings, time your
// falls for perfect passes and survive gravity flips.
//
// Usage:
//
//	ringflip play            - Play locally
//	ringflip serve           - Start SSH server for remote play
//	ringflip scores          - Show best scores and run history
//	ringflip difficulties    - List difficulty profiles
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.ringflip/scores.db)
//	--config <path>       - Custom game config YAML
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Log destination
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ringflip",
	Short: "Ring Flip - fly through rings in your terminal",
	Long: `Ring Flip is a terminal flyer. Pass downward through each ring to score,
pass dead centre without touching the rim for a perfect, and chain
perfects for up to 8 points a ring. Shield rings absorb one crash,
gravity rings flip which way is down.

Settings are read from flags, then RINGFLIP_* variables (a .env file in
the working directory is loaded first), then built-in defaults.

Examples:
  ringflip play
  ringflip play --difficulty hard --sound
  ringflip serve --ssh :2222
  ringflip scores --difficulty easy`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default ~/.ringflip/scores.db)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(difficultiesCmd)
}
