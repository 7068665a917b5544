package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/vocasheet/internal/store"
	"github.com/abhisek/vocasheet/internal/worksheet"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent worksheet generations",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		failed, _ := cmd.Flags().GetBool("failed")

		svc, err := openServices(cmd, false)
		if err != nil {
			return err
		}
		defer svc.Close()

		events, err := svc.store.EventRepo().QueryGenerations(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No generations recorded yet.")
			return nil
		}

		fmt.Printf("%-19s  %-20s  %-13s  %-10s  %-7s  %s\n",
			"Timestamp", "Word", "Level", "Image", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 84))
		for _, e := range events {
			if failed && e.Success {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗ " + truncate(e.ErrorMessage, 40)
			}
			fmt.Printf("%-19s  %-20s  %-13s  %-10s  %-7d  %s\n",
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(e.Word, 20),
				worksheet.Level(e.Level).Name(),
				e.ImageStatus,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	historyCmd.Flags().Bool("failed", false, "Only show failed generations")
}
