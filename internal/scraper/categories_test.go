package scraper

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matteobe/icd10-scraper/pkg/icd"
)

func TestCategories(t *testing.T) {
	choleraChildren := []childConcept{
		{ID: "A00", HTML: `<li class="ygtvitem"><a class="ygtvlabel" href="#/A00"><span class="icode">A00</span>&nbsp;Cholera</a></li>`},
		{ID: "A01", HTML: `<li class="ygtvitem"><a class="ygtvlabel" href="#/A01"><span class="icode">A01</span>&nbsp;Typhoid and paratyphoid
fevers</a></li>`},
	}

	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/browse10/2019/en/JsonGetChildrenConcepts", r.URL.Path)
		require.Equal(t, "true", r.URL.Query().Get("useHtml"))
		require.Equal(t, "true", r.URL.Query().Get("showAdoptedChildren"))

		switch r.URL.Query().Get("ConceptId") {
		case "A00-A09":
			json.NewEncoder(w).Encode(choleraChildren)
		case "NOPE":
			http.Error(w, "not found", http.StatusNotFound)
		default:
			t.Errorf("unexpected ConceptId %q", r.URL.Query().Get("ConceptId"))
		}
	}))

	records, err := client.Categories(context.Background(), []string{"A00-A09", "NOPE"})
	require.NoError(t, err)
	require.Len(t, records, 3)

	byCode := make(map[string]icd.Record)
	var failed []icd.Record
	for _, r := range records {
		require.Equal(t, icd.LevelCategory, r.Level)
		if r.Failed() {
			failed = append(failed, r)
			continue
		}
		byCode[r.Code] = r
	}

	require.Equal(t, "Cholera", byCode["A00"].Description)
	require.Equal(t, "A00-A09", byCode["A00"].ParentCode)
	require.Equal(t, "Typhoid and paratyphoid fevers", byCode["A01"].Description)
	require.Len(t, failed, 1)
	require.Equal(t, "NOPE", failed[0].ParentCode)
	require.Equal(t, http.StatusNotFound, failed[0].Failure.Status)
}

func TestCategoriesMalformedPayload(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))

	_, err := client.Categories(context.Background(), []string{"A00-A09"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode children")
}

func TestParseCategoryLabel(t *testing.T) {
	description, err := parseCategoryLabel(
		`<a class="ygtvlabel" href="#"><span class="icode">B15</span>&nbsp;Acute hepatitis&nbsp;A</a>`, "B15")
	require.NoError(t, err)
	require.Equal(t, "Acute hepatitis A", description)
}
