package scraper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matteobe/icd10-scraper/internal/config"
	"github.com/matteobe/icd10-scraper/pkg/icd"
)

func TestConceptURLs(t *testing.T) {
	cfg := config.Default()
	cfg.Version = 2016
	client := NewClient(cfg)

	require.Equal(t,
		"https://icd.who.int/browse10/2016/en/GetConcept?ConceptId=I",
		client.conceptURL("I"))
	require.Equal(t,
		"https://icd.who.int/browse10/2016/en/JsonGetChildrenConcepts?ConceptId=A00-A09&useHtml=true&showAdoptedChildren=true",
		client.childrenURL("A00-A09"))
}

func TestCleanLabel(t *testing.T) {
	testCases := []struct {
		label    string
		code     string
		expected string
	}{
		{"I Certain infectious and parasitic diseases", "I", "Certain infectious and parasitic diseases"},
		{"Intestinal infectious\r\ndiseases", "", "Intestinal infectious diseases"},
		{"  A00 Cholera  ", "A00", "Cholera"},
		{"Tuberculosis", "", "Tuberculosis"},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, cleanLabel(test.label, test.code))
	}
}

func TestCodesSkipsFailedRecords(t *testing.T) {
	records := []icd.Record{
		{Level: icd.LevelBlock, Code: "A00-A09"},
		{Level: icd.LevelBlock, ParentCode: "II", Failure: &icd.Failure{Status: 404, Reason: "Not Found"}},
		{Level: icd.LevelBlock, Code: "A15-A19"},
	}
	require.Equal(t, []string{"A00-A09", "A15-A19"}, Codes(records))
}
