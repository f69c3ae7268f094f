package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mbarros/oxossi/internal/output"
)

var flagThemesConfig string

var themesCmd = &cobra.Command{
	Use:   "themes <input>",
	Short: "Score thematic keyword groups against a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, log, err := newEngine()
		if err != nil {
			return err
		}
		defer eng.Close()
		defer log.Sync()

		configPath := eng.Config().ThemesConfig
		if flagThemesConfig != "" {
			configPath = flagThemesConfig
		}

		result, err := eng.AnalyzeThemes(args[0], configPath)
		if err != nil {
			emitError(err)
			return err
		}

		status, message := output.StatusOK, "theme analysis complete"
		if result.TotalKeywordsFound == 0 {
			status, message = output.StatusWarning, "no theme keywords found in the text"
		}
		return output.Emit(os.Stdout, flagOutput, output.Envelope{
			Status:  status,
			Message: message,
			Results: result,
		})
	},
}

func init() {
	themesCmd.Flags().StringVarP(&flagThemesConfig, "themes-config", "t", "", "theme keyword groups JSON (overrides config)")
}
