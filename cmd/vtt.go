package cmd

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"kinetic/transcript"
	"kinetic/vtt"
)

var vttCmd = &cobra.Command{
	Use:   "vtt <file.vtt>",
	Short: "Convert WebVTT captions to word timings",
	Long: `Convert WebVTT captions to word timings. Inline <hh:mm:ss.mmm> word stamps,
as in YouTube auto-captions, give each word its own start. Cues without stamps
spread their words evenly over the cue.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = strings.TrimSuffix(input, filepath.Ext(input)) + ".words.json"
		}

		cues, err := vtt.ParseFile(input)
		if err != nil {
			return err
		}
		words := vtt.Words(cues)
		if err := transcript.Validate(words); err != nil {
			return err
		}
		if err := writeJSON(output, words); err != nil {
			return err
		}
		logger.Info().
			Str("output", output).
			Int("cues", len(cues)).
			Int("words", len(words)).
			Msg("converted captions")
		return nil
	},
}

func init() {
	vttCmd.Flags().StringP("output", "o", "", "Output file (defaults to <name>.words.json)")
}
