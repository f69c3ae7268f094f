package themes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbarros/oxossi/internal/domain/rank"
)

func testGroups() Groups {
	return Groups{
		"economia": {"açúcar", "engenho", "comércio"},
		"religião": {"igreja", "jesuíta"},
		"guerra":   {"batalha", "fortaleza"},
	}
}

func TestAnalyze_CountsAndPercentages(t *testing.T) {
	text := "O engenho de açúcar ficava perto da igreja. O açúcar seguia para o comércio."

	result := Analyze(text, testGroups())

	assert.Equal(t, map[string]int{
		"economia": 4,
		"religião": 1,
		"guerra":   0,
	}, result.ThemeCounts)
	assert.Equal(t, map[string]int{
		"açúcar":   2,
		"engenho":  1,
		"comércio": 1,
		"igreja":   1,
	}, result.KeywordCounts)
	assert.Equal(t, 5, result.TotalKeywordsFound)
	assert.Equal(t, map[string]float64{
		"economia": 80,
		"religião": 20,
		"guerra":   0,
	}, result.ThemePercentages)

	assert.Equal(t, rank.Single, result.TopTheme.Kind())
	assert.Equal(t, []string{"economia"}, result.TopTheme.Names())
}

func TestAnalyze_WholeWordOnly(t *testing.T) {
	// "engenhos" is a different token than "engenho"; counting is per
	// whitespace-delimited word.
	result := Analyze("os engenhos da capitania", testGroups())

	assert.Equal(t, 0, result.TotalKeywordsFound)
	assert.Equal(t, rank.None, result.TopTheme.Kind())
}

func TestAnalyze_CaseInsensitive(t *testing.T) {
	result := Analyze("IGREJA e Igreja", testGroups())

	assert.Equal(t, 2, result.KeywordCounts["igreja"])
	assert.Equal(t, 2, result.ThemeCounts["religião"])
}

func TestAnalyze_TopThemeTie(t *testing.T) {
	result := Analyze("batalha perto da igreja", testGroups())

	assert.Equal(t, rank.Tied, result.TopTheme.Kind())
	assert.Equal(t, []string{"guerra", "religião"}, result.TopTheme.Names())
}

func TestAnalyze_EmptyInputs(t *testing.T) {
	for _, result := range []Result{
		Analyze("", testGroups()),
		Analyze("algum texto", Groups{}),
		Analyze("algum texto", nil),
	} {
		assert.Equal(t, map[string]int{}, result.ThemeCounts)
		assert.Equal(t, map[string]int{}, result.KeywordCounts)
		assert.Equal(t, map[string]float64{}, result.ThemePercentages)
		assert.Equal(t, 0, result.TotalKeywordsFound)
		assert.Equal(t, rank.None, result.TopTheme.Kind())
	}
}

func TestAnalyze_NoKeywordsInText(t *testing.T) {
	result := Analyze("nada de relevante por aqui", testGroups())

	// Every theme is still enumerated at zero.
	assert.Equal(t, map[string]int{"economia": 0, "religião": 0, "guerra": 0}, result.ThemeCounts)
	assert.Equal(t, rank.None, result.TopTheme.Kind())
	assert.Empty(t, result.ThemePercentages)
}

func TestLoadGroups_SkipsNonListValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "themes.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"economia": ["açúcar", "engenho"],
		"quebrado": "não é uma lista",
		"guerra": ["batalha"]
	}`), 0644))

	groups, diags, err := LoadGroups(path)
	require.NoError(t, err)

	assert.Equal(t, Groups{
		"economia": {"açúcar", "engenho"},
		"guerra":   {"batalha"},
	}, groups)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0], "quebrado")
}

func TestLoadGroups_Errors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := LoadGroups(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("[]"), 0644))
	_, _, err = LoadGroups(bad)
	assert.Error(t, err)
}
