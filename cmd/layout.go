package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"kinetic/config"
	"kinetic/transcript"
	"kinetic/wordcloud"
)

var layoutCmd = &cobra.Command{
	Use:   "layout <words.json>...",
	Short: "Compute word-cloud screens from word timings",
	Long: `Compute word-cloud screens from one or more word timing files.

Each input is a JSON array of {word, start, end, tier?, groupId?} objects, or
an object with a "words" or "segments" list. Screens are written next to each
input as <name>.screens.json unless -o is given for a single input.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyLayoutFlags(cmd.Flags(), cfg); err != nil {
			return err
		}
		output, _ := cmd.Flags().GetString("output")
		if output != "" && len(args) > 1 {
			return errors.New("--output needs a single input file")
		}

		measurer, release := newMeasurer(cfg)
		defer release()

		var g errgroup.Group
		g.SetLimit(runtime.NumCPU())
		for _, input := range args {
			out := output
			if out == "" {
				out = screensPath(input)
			}
			g.Go(func() error {
				return layoutFile(cfg, measurer, input, out)
			})
		}
		return g.Wait()
	},
}

// screensPath is words.json -> words.screens.json beside the input.
func screensPath(input string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + ".screens.json"
}

func layoutFile(c *config.Config, m wordcloud.Measurer, input, output string) error {
	words, err := transcript.Load(input)
	if err != nil {
		return err
	}
	if err := transcript.Validate(words); err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	screens := computeScreens(c, m, words)
	if err := writeJSON(output, screens); err != nil {
		return err
	}

	logger.Info().
		Str("input", input).
		Str("output", output).
		Int("words", len(words)).
		Int("screens", len(screens)).
		Msg("wrote screens")
	return nil
}

func computeScreens(c *config.Config, m wordcloud.Measurer, words []wordcloud.WordTiming) []wordcloud.ComputedScreen {
	authoring := wordcloud.ResolveAuthoring(words)
	logger.Debug().
		Stringer("groups", authoring.Groups).
		Stringer("tiers", authoring.Tiers).
		Msg("authoring")

	return wordcloud.NewCompiler(m, layoutOptions(c, words)).ComputeAllScreens(
		words,
		c.Canvas.Width,
		c.Canvas.Height,
		c.Grouping.GapThreshold,
		c.Grouping.MaxWordsPerGroup,
	)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func init() {
	addLayoutFlags(layoutCmd)
	layoutCmd.Flags().StringP("output", "o", "", "Output file (single input only)")
}
