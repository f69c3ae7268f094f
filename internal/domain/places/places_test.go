package places

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbarros/oxossi/internal/adapters/ahocorasick"
	"github.com/mbarros/oxossi/internal/domain/gazetteer"
	"github.com/mbarros/oxossi/internal/domain/rank"
	"github.com/mbarros/oxossi/internal/ports"
)

// baseGazetteer is the reference data the scenario tests run against.
const baseGazetteer = `
São Vicente,Capitania de São Vicente
Santos,Capitania de São Vicente
Olinda,Capitania de Pernambuco
Recife,Capitania de Pernambuco
Salvador,Capitania da Bahia
`

func compileFrom(t *testing.T, data string) *CompiledIndex {
	t.Helper()
	ix, err := gazetteer.Load(strings.NewReader(data))
	require.NoError(t, err)
	ci := Compile(ix, ahocorasick.Factory)
	require.Empty(t, ci.Diagnostics())
	return ci
}

func TestScan_ThreeWayTie(t *testing.T) {
	ci := compileFrom(t, baseGazetteer)

	result := ci.Scan("Viajou de Santos para Olinda, passando por Salvador.")

	assert.Equal(t, []PlaceCount{
		{Place: "Olinda", Count: 1},
		{Place: "Salvador", Count: 1},
		{Place: "Santos", Count: 1},
	}, result.FoundPlacesDetails)

	assert.Equal(t, map[string]int{
		"Capitania da Bahia":       1,
		"Capitania de Pernambuco":  1,
		"Capitania de São Vicente": 1,
	}, result.AllCaptaincyScores)

	assert.Equal(t, rank.Tied, result.TopCaptaincy.Kind())
	assert.Equal(t, []string{
		"Capitania da Bahia",
		"Capitania de Pernambuco",
		"Capitania de São Vicente",
	}, result.TopCaptaincy.Names())
}

func TestScan_CaseInsensitiveSingleWinner(t *testing.T) {
	ci := compileFrom(t, baseGazetteer)

	result := ci.Scan("Em olinda e recife, diferente de sAlVaDoR.")

	assert.Equal(t, []PlaceCount{
		{Place: "Olinda", Count: 1},
		{Place: "Recife", Count: 1},
		{Place: "Salvador", Count: 1},
	}, result.FoundPlacesDetails)
	assert.Equal(t, 2, result.AllCaptaincyScores["Capitania de Pernambuco"])
	assert.Equal(t, 1, result.AllCaptaincyScores["Capitania da Bahia"])
	assert.Equal(t, 0, result.AllCaptaincyScores["Capitania de São Vicente"])

	assert.Equal(t, rank.Single, result.TopCaptaincy.Kind())
	assert.Equal(t, []string{"Capitania de Pernambuco"}, result.TopCaptaincy.Names())
}

func TestScan_LongestMatchPriority(t *testing.T) {
	ci := compileFrom(t, baseGazetteer+`
São Paulo,Capitania de São Paulo Teste
São Paulo de Piratininga,Capitania de São Vicente
`)

	result := ci.Scan("Foi para São Paulo de Piratininga, não apenas São Paulo.")

	assert.Equal(t, []PlaceCount{
		{Place: "São Paulo", Count: 1},
		{Place: "São Paulo de Piratininga", Count: 1},
	}, result.FoundPlacesDetails)
	assert.Equal(t, 1, result.AllCaptaincyScores["Capitania de São Paulo Teste"])
	assert.Equal(t, 1, result.AllCaptaincyScores["Capitania de São Vicente"])

	assert.Equal(t, rank.Tied, result.TopCaptaincy.Kind())
	assert.Equal(t, []string{
		"Capitania de São Paulo Teste",
		"Capitania de São Vicente",
	}, result.TopCaptaincy.Names())
}

func TestScan_LongOccurrenceNeverCreditsShortEntry(t *testing.T) {
	ci := compileFrom(t, `
São Paulo,Capitania A
São Paulo de Piratininga,Capitania B
`)

	result := ci.Scan("Chegaram a São Paulo de Piratininga em novembro.")

	assert.Equal(t, []PlaceCount{
		{Place: "São Paulo de Piratininga", Count: 1},
	}, result.FoundPlacesDetails)
	assert.Equal(t, 0, result.AllCaptaincyScores["Capitania A"])
	assert.Equal(t, 1, result.AllCaptaincyScores["Capitania B"])
}

func TestScan_WordBoundaryEnforced(t *testing.T) {
	ci := compileFrom(t, baseGazetteer)

	result := ci.Scan("A palavra Olindana não conta, mas Olinda sim.")

	assert.Equal(t, []PlaceCount{{Place: "Olinda", Count: 1}}, result.FoundPlacesDetails)
}

func TestScan_AccentedRunIsNotABoundary(t *testing.T) {
	ci := compileFrom(t, baseGazetteer)

	// 'ã' is a letter: "Olindã" embeds "Olind" + letter, "Olindaça" embeds
	// "Olinda" + letter. Neither may count.
	result := ci.Scan("Olindaça e olindã.")

	assert.Empty(t, result.FoundPlacesDetails)
	assert.Equal(t, rank.None, result.TopCaptaincy.Kind())
}

func TestScan_CountsRepeatedMentions(t *testing.T) {
	ci := compileFrom(t, baseGazetteer)

	result := ci.Scan("Olinda, OLINDA e olinda; Recife uma vez.")

	assert.Equal(t, []PlaceCount{
		{Place: "Olinda", Count: 3},
		{Place: "Recife", Count: 1},
	}, result.FoundPlacesDetails)
	assert.Equal(t, 4, result.AllCaptaincyScores["Capitania de Pernambuco"])
}

func TestScan_EmptyTextNonEmptyGazetteer(t *testing.T) {
	ci := compileFrom(t, baseGazetteer)

	result := ci.Scan("")

	assert.Equal(t, []PlaceCount{}, result.FoundPlacesDetails)
	assert.Equal(t, rank.None, result.TopCaptaincy.Kind())
	assert.Equal(t, map[string]int{
		"Capitania da Bahia":       0,
		"Capitania de Pernambuco":  0,
		"Capitania de São Vicente": 0,
	}, result.AllCaptaincyScores)
}

func TestScan_NonEmptyTextEmptyGazetteer(t *testing.T) {
	ix, err := gazetteer.Load(strings.NewReader(""))
	require.NoError(t, err)
	ci := Compile(ix, ahocorasick.Factory)
	assert.NotEmpty(t, ci.Diagnostics())

	result := ci.Scan("Viajou de Santos para Olinda.")

	assert.Equal(t, []PlaceCount{}, result.FoundPlacesDetails)
	assert.Equal(t, rank.None, result.TopCaptaincy.Kind())
	assert.Equal(t, map[string]int{}, result.AllCaptaincyScores)
}

func TestScan_NoKnownPlacesInText(t *testing.T) {
	ci := compileFrom(t, baseGazetteer)

	result := ci.Scan("Nada de interessante aconteceu hoje.")

	assert.Equal(t, []PlaceCount{}, result.FoundPlacesDetails)
	assert.Equal(t, rank.None, result.TopCaptaincy.Kind())
	assert.Len(t, result.AllCaptaincyScores, 3)
}

func TestCompile_FactoryFailureDegradesToEmptyMatch(t *testing.T) {
	ix, err := gazetteer.Load(strings.NewReader(baseGazetteer))
	require.NoError(t, err)

	failing := func(patterns []string) (ports.PhraseScanner, error) {
		return nil, errors.New("engine rejected pattern set")
	}
	ci := Compile(ix, failing)
	require.NotEmpty(t, ci.Diagnostics())

	result := ci.Scan("Viajou de Santos para Olinda.")

	// Captaincies stay enumerable even though the matcher never built.
	assert.Equal(t, []PlaceCount{}, result.FoundPlacesDetails)
	assert.Equal(t, rank.None, result.TopCaptaincy.Kind())
	assert.Equal(t, map[string]int{
		"Capitania da Bahia":       0,
		"Capitania de Pernambuco":  0,
		"Capitania de São Vicente": 0,
	}, result.AllCaptaincyScores)
}

func TestScan_MatchResolvesToCanonicalCasing(t *testing.T) {
	ci := compileFrom(t, "OLINDA,Capitania de Pernambuco\n")

	result := ci.Scan("passando por olinda")

	// Canonical form is the casing first recorded in the gazetteer, never
	// the casing found in the document.
	assert.Equal(t, []PlaceCount{{Place: "OLINDA", Count: 1}}, result.FoundPlacesDetails)
}

func TestScan_ConcurrentUse(t *testing.T) {
	ci := compileFrom(t, baseGazetteer)

	done := make(chan SearchResult, 8)
	for i := 0; i < 8; i++ {
		go func() {
			done <- ci.Scan("De Olinda a Santos, e de Santos a Salvador.")
		}()
	}
	for i := 0; i < 8; i++ {
		result := <-done
		assert.Equal(t, 2, result.AllCaptaincyScores["Capitania de São Vicente"])
		assert.Equal(t, 1, result.AllCaptaincyScores["Capitania de Pernambuco"])
		assert.Equal(t, 1, result.AllCaptaincyScores["Capitania da Bahia"])
	}
}

func TestAggregate_ZeroInitializesEveryCaptaincy(t *testing.T) {
	ix, err := gazetteer.Load(strings.NewReader(baseGazetteer))
	require.NoError(t, err)

	scores := Aggregate(map[string]int{"Olinda": 2}, ix)

	assert.Equal(t, map[string]int{
		"Capitania da Bahia":       0,
		"Capitania de Pernambuco":  2,
		"Capitania de São Vicente": 0,
	}, scores)
}
