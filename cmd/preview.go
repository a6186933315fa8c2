package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/inkwell/internal/ui/markdown"
)

var previewCmd = &cobra.Command{
	Use:   "preview [file|-]",
	Short: "Render a markdown document to the terminal",
	Long: `Render a markdown document the way the preview tab shows it.

Reads stdin when the file is "-" or omitted. The style and wrap width come
from the preview section of the config.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

var previewWidth int

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().IntVar(&previewWidth, "width", 0,
		"wrap width (default: preview.width from the config, 0 for none)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	doc, err := readDocument(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	width := cfg.Preview.Width
	if cmd.Flags().Changed("width") {
		width = previewWidth
	}
	r, err := markdown.New(cfg.Preview.Style, width)
	if err != nil {
		return err
	}
	out, err := r.Render(doc)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
