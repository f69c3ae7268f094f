package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mbarros/oxossi/internal/output"
)

var flagNamesConfig string

var namesCmd = &cobra.Command{
	Use:   "names <input>",
	Short: "Extract potential personal names from a document",
	Long: "Walks the text for runs of known given names and surnames joined by\n" +
		"lowercase prepositions (\"João da Silva\"), using the configured name\n" +
		"dictionaries.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, log, err := newEngine()
		if err != nil {
			return err
		}
		defer eng.Close()
		defer log.Sync()

		configPath := eng.Config().NamesConfig
		if flagNamesConfig != "" {
			configPath = flagNamesConfig
		}

		result, err := eng.AnalyzeNames(args[0], configPath)
		if err != nil {
			emitError(err)
			return err
		}

		status, message := output.StatusOK, fmt.Sprintf("%d potential name(s) found", result.Count)
		if result.Count == 0 {
			status, message = output.StatusWarning, "no potential names found"
		}
		return output.Emit(os.Stdout, flagOutput, output.Envelope{
			Status:  status,
			Message: message,
			Results: result,
		})
	},
}

func init() {
	namesCmd.Flags().StringVarP(&flagNamesConfig, "names-config", "n", "", "name dictionaries JSON (overrides config)")
}
