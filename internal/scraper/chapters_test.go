package scraper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matteobe/icd10-scraper/pkg/icd"
)

// Trimmed-down copy of the rendered YUI tree the browser page builds.
const chapterTreeFixture = `
<div id="ygtvc1" class="ygtvchildren">
  <div id="ygtv2" class="ygtvitem">
    <a href="#" class="ygtvspacer ygtvlabel  " id="ygtvlabelel2"><span class="icode ">I</span>&nbsp;Certain infectious and parasitic diseases</a>
  </div>
  <div id="ygtv3" class="ygtvitem">
    <a href="#" class="ygtvspacer ygtvlabel  " id="ygtvlabelel3"><span class="icode ">II</span>&nbsp;Neoplasms</a>
  </div>
  <div id="ygtv4" class="ygtvitem">
    <a href="#" class="ygtvspacer ygtvlabel  " id="ygtvlabelel4"><span class="icode ">XXII</span>&nbsp;Codes for special purposes</a>
  </div>
</div>`

func TestParseChapters(t *testing.T) {
	records, err := ParseChapters(strings.NewReader(chapterTreeFixture))
	require.NoError(t, err)
	require.Len(t, records, 3)

	require.Equal(t, icd.Record{
		Level:       icd.LevelChapter,
		Code:        "I",
		Description: "Certain infectious and parasitic diseases",
	}, records[0])
	require.Equal(t, "II", records[1].Code)
	require.Equal(t, "Neoplasms", records[1].Description)
	require.Equal(t, "XXII", records[2].Code)
	require.Equal(t, "Codes for special purposes", records[2].Description)
}

func TestParseChaptersEmptyTree(t *testing.T) {
	_, err := ParseChapters(strings.NewReader(`<div id="ygtvc1"></div>`))
	require.Error(t, err)
}
