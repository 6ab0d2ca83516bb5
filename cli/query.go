package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/parts-pile/carfinder/vehicle"
)

func newYearsCmd(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "years",
		Short: "List the years in the catalog, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			finder, err := finderFor(cmd, load)
			if err != nil {
				return err
			}
			for _, year := range finder.Years() {
				fmt.Fprintln(cmd.OutOrStdout(), year)
			}
			return nil
		},
	}
}

func newMakesCmd(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "makes YEAR",
		Aliases: []string{"manufacturers"},
		Short:   "List the manufacturers with a vehicle in YEAR",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYear(args[0])
			if err != nil {
				return err
			}
			finder, err := finderFor(cmd, load)
			if err != nil {
				return err
			}
			makes, err := finder.Manufacturers(year)
			if err != nil {
				return err
			}
			printLines(cmd, makes)
			return nil
		},
	}
}

func newModelsCmd(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "models YEAR MAKE",
		Short: "List the models of MAKE in YEAR",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYear(args[0])
			if err != nil {
				return err
			}
			finder, err := finderFor(cmd, load)
			if err != nil {
				return err
			}
			models, err := finder.Models(year, args[1])
			if err != nil {
				return err
			}
			printLines(cmd, models)
			return nil
		},
	}
}

func newDescribeCmd(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "describe YEAR MAKE MODEL",
		Short: "Print the description of one vehicle",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYear(args[0])
			if err != nil {
				return err
			}
			finder, err := finderFor(cmd, load)
			if err != nil {
				return err
			}
			v, err := finder.Find(year, args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), vehicle.Describe(v))
			return nil
		},
	}
}

func finderFor(cmd *cobra.Command, load loadFunc) (*vehicle.Finder, error) {
	cfg, err := load(cmd)
	if err != nil {
		return nil, err
	}
	return buildFinder(cfg.Catalog)
}

func parseYear(arg string) (int, error) {
	year, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q: must be an integer", arg)
	}
	return year, nil
}

func printLines(cmd *cobra.Command, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
}
