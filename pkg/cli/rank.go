package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/cmseval/pkg/domain/types"
	"github.com/secmon-lab/cmseval/pkg/service/ranking"
	"github.com/urfave/cli/v3"
)

func cmdRank() *cli.Command {
	var sortKey string
	var sortDir string
	var top int
	var store storeConfig

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "sort",
			Usage:       "Sort key (priority, totalScore or name)",
			Value:       string(types.SortByPriority),
			Destination: &sortKey,
		},
		&cli.StringFlag{
			Name:        "dir",
			Usage:       "Sort direction (asc or desc)",
			Value:       string(types.SortAsc),
			Destination: &sortDir,
		},
		&cli.IntFlag{
			Name:        "top",
			Aliases:     []string{"n"},
			Usage:       "Show only the first N vendors by priority (0 shows all)",
			Destination: &top,
		},
	}
	flags = append(flags, store.Flags()...)

	return &cli.Command{
		Name:    "rank",
		Aliases: []string{"r"},
		Usage:   "Print the vendor ranking",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			key, err := types.ParseSortKey(sortKey)
			if err != nil {
				return goerr.Wrap(err, "invalid --sort")
			}
			dir, err := types.ParseSortDirection(sortDir)
			if err != nil {
				return goerr.Wrap(err, "invalid --dir")
			}

			uc, closer, err := store.open(ctx)
			if err != nil {
				return err
			}
			defer closer()

			vendors := uc.Vendor.List(ctx)
			if top > 0 {
				vendors = ranking.TopN(vendors, top)
			}
			renderRanking(c.Root().Writer, ranking.Sort(vendors, key, dir))
			return nil
		},
	}
}
