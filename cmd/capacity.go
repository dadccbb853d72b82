/*
Copyright © 2026 Daystack Labs
*/
package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/daystacklabs/daystack/internal/config"
	"github.com/daystacklabs/daystack/internal/stack"
	"github.com/daystacklabs/daystack/models"
)

var (
	capacityDomain string
	capacityToday  bool
	capacityClear  bool
)

// capacityCmd represents the capacity command
var capacityCmd = &cobra.Command{
	Use:   "capacity [minutes]",
	Short: "Show or set the daily minute budget",
	Long: `Show or set the daily minute budget for a domain. Without --today the
value becomes the standing default in the config file; with --today it
applies to the current date only and expires at midnight.`,
	Example: `  daystack capacity                      # show resolved budget for life
  daystack capacity 90 -d work           # standing default for work
  daystack capacity 45 --today           # just for today
  daystack capacity --today --clear      # drop today's override`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCapacity,
}

func init() {
	rootCmd.AddCommand(capacityCmd)
	capacityCmd.Flags().StringVarP(&capacityDomain, "domain", "d", "", "domain to adjust (life or work)")
	capacityCmd.Flags().BoolVar(&capacityToday, "today", false, "apply to the current date only")
	capacityCmd.Flags().BoolVar(&capacityClear, "clear", false, "remove today's override")
}

func runCapacity(cmd *cobra.Command, args []string) error {
	domain, err := parseDomain(capacityDomain)
	if err != nil {
		return err
	}

	cfg := GetConfig()
	overrides := config.NewOverrideStore(filepath.Join(cfg.Project.RootDir, cfg.Project.DataDir))

	if capacityClear {
		if !capacityToday {
			return fmt.Errorf("--clear only applies to --today overrides")
		}
		if err := overrides.Clear(domain); err != nil {
			return err
		}
		cmd.Printf("Cleared today's %s override\n", domain)
		return nil
	}

	if len(args) == 0 {
		resolved := stack.ResolveAvailableMinutes(cfg.Capacity, overrides.Find(domain), domain, today())
		if isJSON() {
			return printJSON(map[string]any{"domain": domain, "minutes": resolved})
		}
		cmd.Printf("%s capacity today: %d minutes\n", domain, resolved)
		return nil
	}

	minutes, err := strconv.Atoi(args[0])
	if err != nil || minutes < 0 {
		return fmt.Errorf("minutes must be a non-negative integer, got %q", args[0])
	}
	if minutes == 0 && !capacityToday {
		return fmt.Errorf("a standing default of 0 is not allowed; use --today for a no-time day")
	}

	if capacityToday {
		override := models.DailyCapacity{Date: today(), Domain: domain, Minutes: minutes}
		if err := overrides.Save(override); err != nil {
			return err
		}
		cmd.Printf("Set today's %s capacity to %d minutes\n", domain, minutes)
		return nil
	}

	viper.Set(fmt.Sprintf("capacity.%s", domain), minutes)
	if err := viper.WriteConfig(); err != nil {
		// No config file yet; create one next to the data dir.
		path := filepath.Join(cfg.Project.RootDir, configName+".yaml")
		if err := viper.SafeWriteConfigAs(path); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	cmd.Printf("Set default %s capacity to %d minutes\n", domain, minutes)
	return nil
}
