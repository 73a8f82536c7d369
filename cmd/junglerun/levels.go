package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/junglerun/internal/config"
	"github.com/vovakirdan/junglerun/internal/levels"
	"github.com/vovakirdan/junglerun/internal/levels/formats"
)

var (
	flagFrom int
	flagTo   int
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Inspect and validate the level catalog",
	Long: `Inspect the level catalog: ten authored levels followed by generated
ones. Files from --levels-dir replace the level with the index in their
file name (level_12.yaml, 12-canopy.tmx).

Examples:
  junglerun levels list
  junglerun levels show 3
  junglerun levels show 42 --seed 7 > level_42.yaml
  junglerun levels validate --from 1 --to 100`,
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every level with its source and entity counts",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		catalog, err := levelCatalog()
		if err != nil {
			return err
		}
		return listLevels(os.Stdout, catalog)
	},
}

var levelsShowCmd = &cobra.Command{
	Use:   "show <n>",
	Short: "Print a level as YAML, after reachability repair",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("level must be a number: %q", args[0])
		}
		catalog, err := levelCatalog()
		if err != nil {
			return err
		}
		return showLevel(os.Stdout, catalog, index)
	},
}

var levelsValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that every level loads and every platform is reachable",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		catalog, err := levelCatalog()
		if err != nil {
			return err
		}
		return validateLevels(os.Stdout, catalog, flagFrom, flagTo)
	},
}

func init() {
	levelsCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	levelsCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory of YAML/TMX level files that replace built-in levels")

	levelsValidateCmd.Flags().IntVar(&flagFrom, "from", 1, "First level to check")
	levelsValidateCmd.Flags().IntVar(&flagTo, "to", 0, "Last level to check (0 = last level)")

	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsShowCmd)
	levelsCmd.AddCommand(levelsValidateCmd)
}

// levelCatalog builds the catalog the game would use. Generated levels
// depend on --seed; 0 is used as is so listings are stable.
func levelCatalog() (*levels.Catalog, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	catalog := levels.NewCatalog(cfg, flagSeed)
	if overrides := loadOverrides(); len(overrides) > 0 {
		catalog.SetOverrides(overrides)
	}
	return catalog, nil
}

func listLevels(w io.Writer, catalog *levels.Catalog) error {
	fmt.Fprintf(w, "  %-5s  %-9s  %-24s  %9s  %7s  %8s  %7s\n",
		"Level", "Source", "Name", "Platforms", "Enemies", "PowerUps", "Helpers")
	fmt.Fprintf(w, "  %-5s  %-9s  %-24s  %9s  %7s  %8s  %7s\n",
		"-----", "------", "----", "---------", "-------", "--------", "-------")

	var failed int
	for i := 1; i <= catalog.Count(); i++ {
		d, err := catalog.Level(i)
		if err != nil {
			fmt.Fprintf(w, "  %-5d  error: %v\n", i, err)
			failed++
			continue
		}
		fmt.Fprintf(w, "  %-5d  %-9s  %-24s  %9d  %7d  %8d  %7d\n",
			d.Index, d.Source, truncate(d.Name, 24), len(d.Platforms), len(d.Enemies), len(d.PowerUps), d.Helpers)
	}
	if failed > 0 {
		return fmt.Errorf("%d levels failed to load", failed)
	}
	return nil
}

func showLevel(w io.Writer, catalog *levels.Catalog, index int) error {
	d, err := catalog.Level(index)
	if err != nil {
		return err
	}
	data, err := formats.MarshalYAML(levels.ToFormat(d))
	if err != nil {
		return fmt.Errorf("encoding level %d: %w", index, err)
	}
	fmt.Fprintf(w, "# level %d (%s, %d helper platforms)\n", d.Index, d.Source, d.Helpers)
	_, err = w.Write(data)
	return err
}

// validateLevels loads every level in [from, to] and checks reachability.
func validateLevels(w io.Writer, catalog *levels.Catalog, from, to int) error {
	if to <= 0 || to > catalog.Count() {
		to = catalog.Count()
	}
	from = max(from, 1)
	if from > to {
		return fmt.Errorf("empty range %d..%d", from, to)
	}

	var failed, repaired int
	for i := from; i <= to; i++ {
		d, err := catalog.Level(i)
		if err != nil {
			fmt.Fprintf(w, "level %d: %v\n", i, err)
			failed++
			continue
		}
		if bad := levels.Unreachable(d, catalog.RepairParams()); len(bad) > 0 {
			fmt.Fprintf(w, "level %d: unreachable platforms %v\n", i, bad)
			failed++
			continue
		}
		if d.Helpers > 0 {
			repaired++
		}
	}

	checked := to - from + 1
	fmt.Fprintf(w, "checked %d levels (%d..%d): %d ok, %d repaired, %d failed\n",
		checked, from, to, checked-failed, repaired, failed)
	if failed > 0 {
		return fmt.Errorf("%d levels failed validation", failed)
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}
