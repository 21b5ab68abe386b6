package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/jobsift/jobsift/internal/cachectl"
	"github.com/jobsift/jobsift/internal/report"
	"github.com/jobsift/jobsift/internal/scan"
	"github.com/jobsift/jobsift/models"
)

func main() {
	app := &cli.App{
		Name:  "jobsift",
		Usage: "extract weighted keywords from job postings",
		Commands: []*cli.Command{
			{
				Name:  "scan",
				Usage: "process the configured job posting URLs",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Value:   "jobsift.yaml",
						Usage:   "path to the YAML config file",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "number of concurrent source pipelines",
					},
					&cli.StringFlag{
						Name:  "cache-dir",
						Usage: "override the fetch cache directory",
					},
					&cli.IntFlag{
						Name:  "top",
						Usage: "how many aggregated keywords to print",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "log errors only",
					},
				},
				Action: scan.Action,
			},
			{
				Name:  "history",
				Usage: "list outcomes recorded by past scans",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "db",
						Value: models.DefaultHistoryDB,
						Usage: "path to the history database",
					},
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "maximum rows to list",
					},
				},
				Action: report.Action,
			},
			{
				Name:  "cache",
				Usage: "inspect and invalidate the fetch cache",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "cache-dir",
						Value: models.DefaultCacheDir,
						Usage: "fetch cache directory",
					},
				},
				Subcommands: []*cli.Command{
					{
						Name:   "clear",
						Usage:  "delete every cached entry",
						Action: cachectl.ClearAction,
					},
					{
						Name:      "rm",
						Usage:     "delete the entries for the given URLs",
						ArgsUsage: "<url> [<url>...]",
						Action:    cachectl.RemoveAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
