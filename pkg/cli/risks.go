package cli

import (
	"context"

	"github.com/secmon-lab/cmseval/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

func cmdRisks() *cli.Command {
	var vendorID string
	var store storeConfig

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "vendor",
			Usage:       "Show only risks of this vendor ID",
			Destination: &vendorID,
		},
	}
	flags = append(flags, store.Flags()...)

	return &cli.Command{
		Name:  "risks",
		Usage: "Print the risk register with likelihood x impact ratings",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, closer, err := store.open(ctx)
			if err != nil {
				return err
			}
			defer closer()

			view, err := uc.Risk.Register(ctx, types.VendorID(vendorID))
			if err != nil {
				return err
			}
			renderRisks(c.Root().Writer, view)
			return nil
		},
	}
}
