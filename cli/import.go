package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/parts-pile/carfinder/db"
	"github.com/parts-pile/carfinder/vehicle"
)

const (
	ImportCmdName  = "import"
	ImportCmdShort = "Build a SQLite catalog from a JSON or YAML file"
	ImportCmdLong  = `Read a .json, .yaml or .yml catalog and write it to a fresh SQLite
database that can be served with --catalog-driver sqlite. An existing
database at the destination is replaced.`
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   ImportCmdName + " SOURCE DEST",
		Short: ImportCmdShort,
		Long:  ImportCmdLong,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return importCatalog(args[0], args[1])
		},
	}
}

func importCatalog(src, dest string) error {
	records, err := vehicle.LoadFile(src)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	conn, err := db.Create(dest)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := vehicle.SaveDB(conn, records); err != nil {
		return err
	}
	log.Printf("[catalog] Imported %d vehicles from %s into %s", len(records), src, dest)
	return nil
}
