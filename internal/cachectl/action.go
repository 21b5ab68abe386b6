// Package cachectl implements the `jobsift cache` subcommands. The cache is
// keyed by source URL alone, so this is the only sanctioned way to
// invalidate stale entries after changing the extractor set.
package cachectl

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/jobsift/jobsift/pkg/cache"
)

// ClearAction deletes every cache entry.
func ClearAction(c *cli.Context) error {
	fetchCache, err := cache.New(c.String("cache-dir"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to open cache: %v", err), 2)
	}
	if err := fetchCache.Clear(); err != nil {
		return cli.Exit(fmt.Sprintf("failed to clear cache: %v", err), 2)
	}
	fmt.Fprintln(c.App.Writer, "Cache cleared.")
	return nil
}

// RemoveAction deletes the entries for the URLs given as arguments, forcing
// a re-fetch on the next scan.
func RemoveAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("usage: jobsift cache rm <url> [<url>...]", 1)
	}
	fetchCache, err := cache.New(c.String("cache-dir"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to open cache: %v", err), 2)
	}
	for _, rawURL := range c.Args().Slice() {
		if err := fetchCache.Remove(rawURL); err != nil {
			return cli.Exit(fmt.Sprintf("failed to remove entry: %v", err), 2)
		}
		fmt.Fprintf(c.App.Writer, "Removed cache entry for %s\n", rawURL)
	}
	return nil
}
