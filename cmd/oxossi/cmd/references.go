package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mbarros/oxossi/internal/output"
)

var referencesCmd = &cobra.Command{
	Use:   "references <input.pdf>",
	Short: "Extract bibliographic references from a PDF",
	Long: "Runs the anystyle CLI over the PDF, parses the references it finds and\n" +
		"formats them as compact citations (Family,G. (Year) Title…). Requires\n" +
		"anystyle on PATH.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, log, err := newEngine()
		if err != nil {
			return err
		}
		defer eng.Close()
		defer log.Sync()

		result, err := eng.AnalyzeReferences(cmd.Context(), args[0])
		if err != nil {
			emitError(err)
			return err
		}

		status, message := output.StatusOK, fmt.Sprintf("%d reference(s) formatted", result.Count)
		if result.Count == 0 {
			status, message = output.StatusWarning, "no formattable references found"
		}
		return output.Emit(os.Stdout, flagOutput, output.Envelope{
			Status:  status,
			Message: message,
			Results: result,
		})
	},
}
