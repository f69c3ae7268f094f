package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mbarros/oxossi/internal/output"
)

var flagDateConfig string

var datesCmd = &cobra.Command{
	Use:   "dates <input>",
	Short: "Extract and summarize date evidence in a document",
	Long: "Finds numeric years and textual century phrases (\"século XVII\",\n" +
		"\"primeira metade do século XVIII\"), resolves them to year intervals and\n" +
		"computes summary statistics over the combined representative years.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, log, err := newEngine()
		if err != nil {
			return err
		}
		defer eng.Close()
		defer log.Sync()

		configPath := eng.Config().DateConfig
		if flagDateConfig != "" {
			configPath = flagDateConfig
		}

		result, err := eng.AnalyzeDates(args[0], configPath)
		if err != nil {
			emitError(err)
			return err
		}

		status, message := output.StatusOK, fmt.Sprintf("%d representative year(s) analyzed", result.Count)
		if result.Count == 0 {
			status, message = output.StatusWarning, "no relevant dates found"
		}
		return output.Emit(os.Stdout, flagOutput, output.Envelope{
			Status:  status,
			Message: message,
			Results: result,
		})
	},
}

func init() {
	datesCmd.Flags().StringVarP(&flagDateConfig, "date-config", "c", "", "date configuration JSON (overrides config)")
}
