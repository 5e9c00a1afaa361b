package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"kinetic/director"
	"kinetic/transcript"
	"kinetic/wordcloud"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge a director script with transcript timings",
	Long: `Merge a director script (planned groups and emphasis) with a word-level
transcript. Matched words keep their spoken timing and gain the group id and
tier from the script. The result is a word timing file for "kinetic layout".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		directorPath, _ := cmd.Flags().GetString("director")
		transcriptPath, _ := cmd.Flags().GetString("transcript")
		output, _ := cmd.Flags().GetString("output")
		if directorPath == "" || transcriptPath == "" {
			return errors.New("both --director and --transcript are required")
		}
		if output == "" {
			output = strings.TrimSuffix(transcriptPath, ".json") + ".merged.json"
		}

		script, err := director.LoadScript(directorPath)
		if err != nil {
			return err
		}
		words, err := transcript.Load(transcriptPath)
		if err != nil {
			return err
		}

		res := director.Merge(script, words)
		for _, w := range res.Unmatched {
			logger.Warn().Str("word", w).Msg("director word not found in transcript")
		}
		if res.Leftover > 0 {
			logger.Warn().Int("words", res.Leftover).Msg("transcript words left after the script")
		}
		if len(res.Words) == 0 {
			return fmt.Errorf("no director words matched %s", transcriptPath)
		}

		if err := writeJSON(output, res.Words); err != nil {
			return err
		}
		logger.Info().
			Str("output", output).
			Int("words", len(res.Words)).
			Int("groups", len(script.Groups)).
			Int("hero", res.TierCounts[wordcloud.TierHero]).
			Int("strong", res.TierCounts[wordcloud.TierStrong]).
			Int("normal", res.TierCounts[wordcloud.TierNormal]).
			Msg("merged")
		return nil
	},
}

func init() {
	mergeCmd.Flags().StringP("director", "d", "", "Director script JSON")
	mergeCmd.Flags().StringP("transcript", "t", "", "Transcript JSON with word timings")
	mergeCmd.Flags().StringP("output", "o", "", "Output file (defaults to <transcript>.merged.json)")
}
