package cmd

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"kinetic/fcp"
	"kinetic/transcript"
)

var fcpxmlCmd = &cobra.Command{
	Use:   "fcpxml <words.json>",
	Short: "Export screens as Final Cut Pro titles",
	Long: `Compute screens from a word timing file and export them as an FCPXML
project with one title per word, placed and colored like the layout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyLayoutFlags(cmd.Flags(), cfg); err != nil {
			return err
		}
		if cmd.Flags().Changed("scheme") {
			cfg.Export.ColorScheme, _ = cmd.Flags().GetString("scheme")
		}
		if cmd.Flags().Changed("name") {
			cfg.Export.ProjectName, _ = cmd.Flags().GetString("name")
		}
		scheme, err := cfg.Palette()
		if err != nil {
			return err
		}

		input := args[0]
		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = strings.TrimSuffix(input, filepath.Ext(input)) + ".fcpxml"
		}

		words, err := transcript.Load(input)
		if err != nil {
			return err
		}
		if err := transcript.Validate(words); err != nil {
			return err
		}

		measurer, release := newMeasurer(cfg)
		defer release()
		screens := computeScreens(cfg, measurer, words)

		doc, err := fcp.BuildScreensFCPXML(screens, fcp.ScreenExportOptions{
			Width:       int(cfg.Canvas.Width),
			Height:      int(cfg.Canvas.Height),
			Name:        cfg.Export.ProjectName,
			ColorScheme: scheme,
			FontFamily:  fontName(cfg.Measure.FontFamily),
		})
		if err != nil {
			return err
		}
		if err := fcp.WriteToFile(doc, output); err != nil {
			return err
		}

		logger.Info().Str("output", output).Int("screens", len(screens)).Msg("exported FCPXML")
		return nil
	},
}

// fontName is the first family of a CSS font stack, unquoted.
func fontName(stack string) string {
	first, _, _ := strings.Cut(stack, ",")
	return strings.Trim(strings.TrimSpace(first), `"'`)
}

func init() {
	addLayoutFlags(fcpxmlCmd)
	fcpxmlCmd.Flags().StringP("output", "o", "", "Output file (defaults to <name>.fcpxml)")
	fcpxmlCmd.Flags().String("scheme", "rotate", `Color scheme index or "rotate"`)
	fcpxmlCmd.Flags().String("name", "", "Project and event name")
}
