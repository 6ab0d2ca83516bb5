package cli

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/parts-pile/carfinder/config"
)

const (
	RootCmdName  = "carfinder"
	RootCmdShort = "Narrow a vehicle catalog by year, make and model"
	RootCmdLong  = `carfinder serves a small vehicle finder: pick a year, then a make,
then a model, and see the selected vehicle's description.

The query commands answer the same lookups from the terminal.`
)

// NewRootCmd builds the command tree. Each call returns an independent tree
// with its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           RootCmdName,
		Short:         RootCmdShort,
		Long:          RootCmdLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "path to a YAML config file")
	flags.String("catalog", "", "catalog file (.json/.yaml) or SQLite database path")
	flags.String("catalog-driver", "", "catalog source: embedded, file or sqlite")
	v.BindPFlag("catalog.path", flags.Lookup("catalog"))
	v.BindPFlag("catalog.driver", flags.Lookup("catalog-driver"))

	load := func(cmd *cobra.Command) (*config.Config, error) {
		file, _ := cmd.Flags().GetString("config")
		return config.Load(v, file)
	}

	root.AddCommand(
		newServeCmd(v, load),
		newYearsCmd(load),
		newMakesCmd(load),
		newModelsCmd(load),
		newDescribeCmd(load),
		newImportCmd(),
	)
	return root
}

func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
