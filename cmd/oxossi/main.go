// oxossi mines historical documents for colonial-era evidence: place
// mentions attributed to captaincies, date phrases, personal names, theme
// keywords and bibliographic references.
package main

import (
	"os"

	"github.com/mbarros/oxossi/cmd/oxossi/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
