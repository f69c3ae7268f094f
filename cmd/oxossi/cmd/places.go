package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mbarros/oxossi/internal/output"
)

var flagGazetteer string

var placesCmd = &cobra.Command{
	Use:   "places <input>",
	Short: "Attribute a document to colonial captaincies by place mentions",
	Long: "Scans the document for gazetteer place names (longest-match,\n" +
		"word-bounded, case-insensitive), counts mentions, rolls them up into\n" +
		"per-captaincy scores and selects the top captaincy (or a sorted tie).",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, log, err := newEngine()
		if err != nil {
			return err
		}
		defer eng.Close()
		defer log.Sync()

		gazetteerPath := eng.Config().Gazetteer
		if flagGazetteer != "" {
			gazetteerPath = flagGazetteer
		}

		result, err := eng.AnalyzePlaces(args[0], gazetteerPath)
		if err != nil {
			emitError(err)
			return err
		}

		status, message := output.StatusOK, "place analysis complete"
		if len(result.FoundPlacesDetails) == 0 {
			status, message = output.StatusWarning, "no known places found in the text"
		}
		return output.Emit(os.Stdout, flagOutput, output.Envelope{
			Status:  status,
			Message: message,
			Results: result,
		})
	},
}

func init() {
	placesCmd.Flags().StringVar(&flagGazetteer, "gazetteer", "", "place,captaincy data file (overrides config)")
}

// emitError prints an error envelope so consumers always receive valid
// JSON, even on failure. The error itself still propagates for exit status.
func emitError(err error) {
	_ = output.Emit(os.Stdout, flagOutput, output.Envelope{
		Status:  output.StatusError,
		Message: err.Error(),
		Results: nil,
	})
}
