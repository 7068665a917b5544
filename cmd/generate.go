package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/vocasheet/internal/generator"
	"github.com/abhisek/vocasheet/internal/render"
	"github.com/abhisek/vocasheet/internal/saved"
	"github.com/abhisek/vocasheet/internal/worksheet"
)

var generateCmd = &cobra.Command{
	Use:   "generate <word>",
	Short: "Generate a worksheet and print it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		levelFlag, _ := cmd.Flags().GetString("level")
		plain, _ := cmd.Flags().GetBool("plain")
		imageOut, _ := cmd.Flags().GetString("image-out")
		save, _ := cmd.Flags().GetBool("save")
		width, _ := cmd.Flags().GetInt("width")

		level, err := worksheet.ParseLevel(levelFlag)
		if err != nil {
			return err
		}

		svc, err := openServices(cmd, true)
		if err != nil {
			return err
		}
		defer svc.Close()

		if svc.generator == nil {
			return fmt.Errorf("LLM provider not configured: %w", svc.llmErr)
		}

		res, err := svc.generator.Generate(cmd.Context(), args[0], level)
		if err != nil {
			if errors.Is(err, generator.ErrInput) {
				return err
			}
			return fmt.Errorf("failed to generate the worksheet: %w", err)
		}

		fmt.Println(render.Worksheet(res.Worksheet, res.Image, render.Options{Width: width, Plain: plain}))

		if imageOut != "" && res.Image != nil {
			path, err := writeImage(imageOut, *res.Image)
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, "Image written to", path)
		}

		if save {
			entry, err := svc.saved.Save(cmd.Context(), saved.Candidate{
				Word:      res.Word,
				Worksheet: res.Worksheet,
				Image:     res.Image,
			})
			switch {
			case errors.Is(err, saved.ErrDuplicate):
				fmt.Fprintln(os.Stderr, "Already saved.")
			case err != nil:
				return fmt.Errorf("save worksheet: %w", err)
			default:
				fmt.Fprintf(os.Stderr, "Saved as #%d\n", entry.ID)
			}
		}
		return nil
	},
}

// writeImage writes img to path. A path ending in a separator or naming an
// existing directory gets "<word><ext>" appended.
func writeImage(path string, img worksheet.Image) (string, error) {
	if info, err := os.Stat(path); (err == nil && info.IsDir()) || strings.HasSuffix(path, string(os.PathSeparator)) {
		name := strings.ReplaceAll(worksheet.NormalizeWord(img.Word), " ", "-")
		if name == "" {
			name = "image"
		}
		path = filepath.Join(path, name+img.Extension())
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create image dir: %w", err)
	}
	if err := os.WriteFile(path, img.Data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return path, nil
}

func init() {
	generateCmd.Flags().StringP("level", "l", "1", "Worksheet level: 1-4, L1-L4 or a level name")
	generateCmd.Flags().Bool("plain", false, "Print without colors")
	generateCmd.Flags().Int("width", 80, "Wrap width")
	generateCmd.Flags().StringP("image-out", "o", "", "Write the illustration to this file or directory")
	generateCmd.Flags().BoolP("save", "s", false, "Add the worksheet to the saved list")
}
