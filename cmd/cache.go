package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect the image cache",
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached images, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices(cmd, false)
		if err != nil {
			return err
		}
		defer svc.Close()

		entries := svc.cache.Entries()
		fmt.Printf("%d/%d cached\n\n", len(entries), svc.cache.Capacity())
		if len(entries) == 0 {
			return nil
		}

		fmt.Printf("%-24s  %-12s  %-10s  %s\n", "Word", "Type", "Size", "Cached")
		fmt.Println(strings.Repeat("─", 64))
		for _, e := range entries {
			fmt.Printf("%-24s  %-12s  %-10s  %s\n",
				truncate(e.Word, 24),
				e.Image.MIMEType,
				humanize.Bytes(uint64(len(e.Image.Data))),
				humanize.Time(entryTime(e.Timestamp)),
			)
		}
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached image",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices(cmd, false)
		if err != nil {
			return err
		}
		defer svc.Close()

		n := svc.cache.Len()
		if err := svc.cache.Clear(cmd.Context()); err != nil {
			return fmt.Errorf("clear cache: %w", err)
		}
		fmt.Printf("Removed %d cached images.\n", n)
		return nil
	},
}

// entryTime converts a millisecond timestamp or id to a time.
func entryTime(ms int64) time.Time {
	return time.UnixMilli(ms)
}

func init() {
	cacheCmd.AddCommand(cacheListCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}
