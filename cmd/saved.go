package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/abhisek/vocasheet/internal/render"
)

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "Manage saved worksheets",
}

var savedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved worksheets, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openServices(cmd, false)
		if err != nil {
			return err
		}
		defer svc.Close()

		entries := svc.saved.List()
		if len(entries) == 0 {
			fmt.Println("No saved worksheets.")
			return nil
		}

		fmt.Printf("%-14s  %-16s  %-20s  %-5s  %s\n", "ID", "Saved", "Word", "Level", "Image")
		fmt.Println(strings.Repeat("─", 72))
		for _, e := range entries {
			fmt.Printf("%-14d  %-16s  %-20s  %-5s  %s\n",
				e.ID,
				humanize.Time(entryTime(e.ID)),
				truncate(e.Word, 20),
				e.Level,
				render.ImageLabel(e.Image),
			)
		}
		return nil
	},
}

var savedShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a saved worksheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseSavedID(args[0])
		if err != nil {
			return err
		}
		plain, _ := cmd.Flags().GetBool("plain")
		imageOut, _ := cmd.Flags().GetString("image-out")

		svc, err := openServices(cmd, false)
		if err != nil {
			return err
		}
		defer svc.Close()

		e, ok := svc.saved.Get(id)
		if !ok {
			return fmt.Errorf("saved worksheet %d not found", id)
		}
		fmt.Println(render.Worksheet(e.Worksheet, e.Image, render.Options{Plain: plain}))

		if imageOut != "" && e.Image != nil {
			path, err := writeImage(imageOut, *e.Image)
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, "Image written to", path)
		}
		return nil
	},
}

var savedDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved worksheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseSavedID(args[0])
		if err != nil {
			return err
		}

		svc, err := openServices(cmd, false)
		if err != nil {
			return err
		}
		defer svc.Close()

		if _, ok := svc.saved.Get(id); !ok {
			fmt.Printf("Saved worksheet %d not found, nothing to delete.\n", id)
			return nil
		}
		if err := svc.saved.Delete(cmd.Context(), id); err != nil {
			return fmt.Errorf("delete worksheet: %w", err)
		}
		fmt.Printf("Deleted %d.\n", id)
		return nil
	},
}

func parseSavedID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ID %q: %w", s, err)
	}
	return id, nil
}

func init() {
	savedShowCmd.Flags().Bool("plain", false, "Print without colors")
	savedShowCmd.Flags().StringP("image-out", "o", "", "Write the illustration to this file or directory")

	savedCmd.AddCommand(savedListCmd)
	savedCmd.AddCommand(savedShowCmd)
	savedCmd.AddCommand(savedDeleteCmd)
}
