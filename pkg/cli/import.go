package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/cmseval/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func cmdImport() *cli.Command {
	var store storeConfig

	return &cli.Command{
		Name:      "import",
		Aliases:   []string{"i"},
		Usage:     "Replace the stored vendors with a JSON export",
		ArgsUsage: "<export.json>",
		Flags:     store.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			path := c.Args().First()
			if path == "" {
				return goerr.Wrap(config.ErrMissingOption, "export file path is required")
			}

			// #nosec G304 - path is provided by CLI argument
			data, err := os.ReadFile(path)
			if err != nil {
				return goerr.Wrap(err, "failed to read export file", goerr.V("path", path))
			}

			uc, closer, err := store.open(ctx)
			if err != nil {
				return err
			}
			defer closer()

			n, err := uc.Exchange.ImportJSON(ctx, data)
			if err != nil {
				return goerr.Wrap(err, "import rejected", goerr.V("path", path))
			}

			// import commits even when the backend write fails, so check it here
			if err := uc.Vendor.Persist(ctx); err != nil {
				return goerr.Wrap(err, "imported vendors could not be stored")
			}

			fmt.Fprintf(c.Root().Writer, "Imported %d vendors from %s\n", n, path)
			return nil
		},
	}
}
