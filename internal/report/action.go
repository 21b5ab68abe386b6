// Package report implements `jobsift history`, listing per-source outcomes
// recorded by past scans.
package report

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/jobsift/jobsift/pkg/history"
)

// Action lists the most recent scan results.
func Action(c *cli.Context) error {
	store, err := history.Open(c.String("db"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to open history store: %v", err), 2)
	}
	defer store.Close()

	entries, err := store.Recent(c.Int("limit"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to read history: %v", err), 2)
	}

	if len(entries) == 0 {
		fmt.Fprintln(c.App.Writer, "No recorded scans yet.")
		return nil
	}

	for _, e := range entries {
		line := fmt.Sprintf("%s  %-7s  %s", e.CreatedAt.Format("2006-01-02 15:04:05"), e.Status, e.URL)
		switch e.Status {
		case history.StatusOK:
			line += fmt.Sprintf("  (%d keywords", e.KeywordCount)
			if e.JobTitle != "" {
				line += fmt.Sprintf(", %q", e.JobTitle)
			}
			line += ")"
		case history.StatusFailed:
			line += fmt.Sprintf("  error: %s", e.Error)
		}
		fmt.Fprintln(c.App.Writer, line)
	}
	return nil
}
