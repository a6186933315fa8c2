package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/zjrosen/inkwell/internal/flags"
	"github.com/zjrosen/inkwell/internal/highlight"
	"github.com/zjrosen/inkwell/internal/log"
	"github.com/zjrosen/inkwell/internal/watcher"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [file|-]",
	Short: "Print the highlight markup for a markdown document",
	Long: `Print the overlay markup for a markdown document: escaped text with
<span class="md-..."> tags around each highlighted run.

Reads stdin when the file is "-" or omitted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHighlight,
}

var (
	highlightPlain bool
	highlightWatch bool
)

func init() {
	rootCmd.AddCommand(highlightCmd)

	highlightCmd.Flags().BoolVar(&highlightPlain, "plain", false,
		"strip the tags and unescape, printing the source text back")
	highlightCmd.Flags().BoolVarP(&highlightWatch, "watch", "w", false,
		"print again every time the file changes")
}

func runHighlight(cmd *cobra.Command, args []string) error {
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	hl := highlight.New(highlight.Options{
		InlineHeadings: flags.New(cfg.Flags).Enabled(flags.FlagHeadingInline),
	})
	render := func(doc string) string {
		out := hl.Highlight(doc)
		if highlightPlain {
			out = highlight.Plain(out)
		}
		return out
	}

	doc, err := readDocument(path, cmd.InOrStdin())
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprint(out, render(doc)); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if !highlightWatch {
		return nil
	}
	if path == "-" {
		return errors.New("--watch needs a file, not stdin")
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return watchDocument(ctx, path, cfg.Watch.Debounce, out, render)
}

// watchDocument writes render(doc) to out each time path changes, until ctx
// is done or the file is removed.
func watchDocument(ctx context.Context, path string, debounce time.Duration, out io.Writer, render func(string) string) error {
	wcfg := watcher.DefaultConfig(path)
	if debounce > 0 {
		wcfg.DebounceDur = debounce
	}
	w, err := watcher.New(wcfg)
	if err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	events := w.Broker().Subscribe(ctx)
	if err := w.Start(); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	defer func() { _ = w.Stop() }()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev.Payload.Type {
			case watcher.FileChanged:
				doc, err := readDocument(path, nil)
				if err != nil {
					log.ErrorErr(log.CatWatcher, "Re-read failed", err, "path", path)
					continue
				}
				if _, err := fmt.Fprint(out, "\n", render(doc)); err != nil {
					return fmt.Errorf("writing output: %w", err)
				}
			case watcher.FileRemoved:
				return fmt.Errorf("%s was removed", path)
			case watcher.WatcherError:
				log.Warn(log.CatWatcher, "Watcher error", "error", ev.Payload.Error)
			}
		}
	}
}
