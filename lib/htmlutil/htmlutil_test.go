package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const statsPage = `
<html><body>
<table>
  <tr><th>Player</th><th>G</th><th>AVG</th></tr>
  <tr><td><a href="/bis/eng/players/91295134.html">Suzuki, I.</a></td><td>130</td><td>.353</td></tr>
  <tr><td>Matsui,   H.</td><td>140</td><td>.334</td></tr>
</table>
<table>
  <tr><td>lone cell</td></tr>
</table>
</body></html>`

func TestTables(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(statsPage))
	require.NoError(t, err)

	tables := Tables(doc)
	require.Len(t, tables, 2)

	rows := tables[0]
	require.Len(t, rows, 3)
	require.Equal(t, []string{"Player", "G", "AVG"}, rows[0].Texts())
	require.Equal(t, "Suzuki, I.", rows[1][0].Text)
	require.Equal(t, "/bis/eng/players/91295134.html", rows[1][0].Href)
	require.Equal(t, "Matsui, H.", rows[2][0].Text)
	require.Empty(t, rows[2][0].Href)
}

func TestCleanText(t *testing.T) {
	require.Equal(t, "a b", CleanText("  a \n\n  b \t"))
}
