package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ringflip/internal/config"
)

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "List difficulty profiles",
	Long:  `Shows the flight parameters of each difficulty after config overrides.`,
	Args:  cobra.NoArgs,
	RunE:  runDifficulties,
}

func runDifficulties(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	profiles := config.NewProfiles(cfg.Profiles)

	fmt.Printf("  %-8s  %8s  %8s  %8s  %8s  %8s  %8s\n", "Level", "Gravity", "Jump X", "Jump Y", "Speed", "Spacing", "Height")
	fmt.Printf("  %-8s  %8s  %8s  %8s  %8s  %8s  %8s\n", "-----", "-------", "------", "------", "-----", "-------", "------")
	for _, lv := range config.Levels {
		p := profiles.Profile(lv)
		fmt.Printf("  %-8s  %8.2f  %8.2f  %8.2f  %8.2f  %8.2f  %8.2f\n",
			lv, p.GravityScale, p.HorizontalJumpForce, p.VerticalJumpForce, p.MaxSpeed, p.RingSpawnDistance, p.RingHeightVariance)
	}

	fmt.Println()
	fmt.Println("Run 'ringflip play --difficulty <level>' to preselect one.")
	return nil
}
