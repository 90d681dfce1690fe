package main

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"pinpoint/internal/reportfile"
	"pinpoint/internal/ui"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] <report.toml|report.msgpack>...",
	Short: "Render diagnostic report files to the terminal",
	Long:  `Render one or more report description files (TOML or msgpack) as box-drawn diagrams, in argument order`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	renderCmd.Flags().Bool("compact", false, "force compact layout regardless of the report file")
	renderCmd.Flags().Bool("pager", false, "view the rendered output in an interactive pager")
	renderCmd.Flags().Bool("stderr", false, "write to standard error instead of standard output")
}

func runRender(cmd *cobra.Command, args []string) error {
	colorMode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	compact, err := cmd.Flags().GetBool("compact")
	if err != nil {
		return fmt.Errorf("failed to get compact flag: %w", err)
	}
	pager, err := cmd.Flags().GetBool("pager")
	if err != nil {
		return fmt.Errorf("failed to get pager flag: %w", err)
	}
	toStderr, err := cmd.Flags().GetBool("stderr")
	if err != nil {
		return fmt.Errorf("failed to get stderr flag: %w", err)
	}

	out := os.Stdout
	if toStderr {
		out = os.Stderr
	}

	var useColor bool
	switch colorMode {
	case "auto":
		useColor = isTerminal(out)
	case "on":
		useColor = true
	case "off":
		useColor = false
	default:
		return fmt.Errorf("unknown color mode %q (want auto|on|off)", colorMode)
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Рендерим в буферы параллельно, печатаем в порядке аргументов
	outputs := make([]string, len(args))
	g, gctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(min(jobs, len(args)))

	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			f, err := reportfile.Load(path)
			if err != nil {
				return err
			}
			if compact {
				f.Report.Compact = true
			}
			r, err := reportfile.Build(f, useColor)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			var buf bytes.Buffer
			if err := r.Render(&buf); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			outputs[i] = buf.String()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if pager {
		return ui.Page("pinpoint", strings.Join(outputs, ""))
	}
	for _, s := range outputs {
		if _, err := fmt.Fprint(out, s); err != nil {
			return err
		}
	}
	return nil
}
