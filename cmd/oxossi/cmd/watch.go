package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mbarros/oxossi/internal/adapters/fsnotify"
	"github.com/mbarros/oxossi/internal/output"
)

var watchCmd = &cobra.Command{
	Use:   "watch <input>",
	Short: "Re-run place attribution whenever the document or gazetteer changes",
	Long: "Compiles the gazetteer once, scans the document, then watches both\n" +
		"files: a document change triggers a rescan against the cached compiled\n" +
		"index; a gazetteer change recompiles first. Runs until interrupted.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, log, err := newEngine()
		if err != nil {
			return err
		}
		defer eng.Close()
		defer log.Sync()

		inputPath := args[0]
		gazetteerPath := eng.Config().Gazetteer
		if flagGazetteer != "" {
			gazetteerPath = flagGazetteer
		}

		ci, err := eng.CompilePlaces(gazetteerPath)
		if err != nil {
			return err
		}

		rescan := func() {
			text, err := eng.ReadDocument(inputPath)
			if err != nil {
				log.Error("document read failed", zap.Error(err))
				emitError(err)
				return
			}
			result := ci.Scan(text)
			status, message := output.StatusOK, "place analysis complete"
			if len(result.FoundPlacesDetails) == 0 {
				status, message = output.StatusWarning, "no known places found in the text"
			}
			if err := output.Emit(os.Stdout, flagOutput, output.Envelope{
				Status:  status,
				Message: message,
				Results: result,
			}); err != nil {
				log.Error("emit failed", zap.Error(err))
			}
		}
		rescan()

		w, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer w.Stop()

		err = w.Watch([]string{inputPath, gazetteerPath}, func(path string) {
			log.Info("change detected", zap.String("path", path))
			if sameFile(path, gazetteerPath) {
				recompiled, err := eng.CompilePlaces(gazetteerPath)
				if err != nil {
					log.Error("gazetteer reload failed, keeping previous index", zap.Error(err))
				} else {
					ci = recompiled
				}
			}
			rescan()
		})
		if err != nil {
			return err
		}

		log.Info("watching for changes",
			zap.String("input", inputPath),
			zap.String("gazetteer", gazetteerPath))

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		return nil
	},
}

func init() {
	watchCmd.Flags().StringVar(&flagGazetteer, "gazetteer", "", "place,captaincy data file (overrides config)")
}

// sameFile compares two paths after normalization; the watcher reports
// absolute paths while flags may be relative.
func sameFile(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}
