package render

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/shouni/commedia-index/pkg/canto"
	"github.com/shouni/commedia-index/pkg/types"
)

// filledTable は全100歌に URL を設定した表を返します。
func filledTable(t *testing.T) *canto.Table {
	t.Helper()
	table := canto.NewTable()
	for row := range table.All() {
		row.ReadingURL = fmt.Sprintf("https://archive.org/%s-%d.mp3", row.Canticle, row.Number)
		row.CommentaryURL = fmt.Sprintf("https://feeds.example.com/%s-%d.mp3", row.Canticle, row.Number)
	}
	require.NoError(t, table.Validate())
	return table
}

func TestPage_Structure(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Page(&out, filledTable(t)))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out.String()))
	require.NoError(t, err)

	assert.Equal(t, pageTitle, strings.TrimSpace(doc.Find("h1").Text()))

	var headings []string
	doc.Find("h2").Each(func(i int, s *goquery.Selection) {
		headings = append(headings, strings.TrimSpace(s.Text()))
	})
	assert.Equal(t, []string{"Inferno", "Purgatorio", "Paradiso"}, headings)

	assert.Equal(t, 3, doc.Find("table").Length())
	doc.Find("thead").Each(func(i int, s *goquery.Selection) {
		var cols []string
		s.Find("th").Each(func(_ int, th *goquery.Selection) {
			cols = append(cols, strings.TrimSpace(th.Text()))
		})
		assert.Equal(t, []string{"Canto", "Text", "Commentary"}, cols)
	})

	rows := doc.Find("tbody tr")
	require.Equal(t, 100, rows.Length())

	var labels []string
	rows.Each(func(i int, s *goquery.Selection) {
		labels = append(labels, strings.TrimSpace(s.Find("td").First().Text()))
	})
	assert.Equal(t, "Inferno 1", labels[0])
	assert.Equal(t, "Inferno 34", labels[33])
	assert.Equal(t, "Purgatorio 1", labels[34])
	assert.Equal(t, "Paradiso 33", labels[99])

	third := rows.Eq(2)
	sources := third.Find("audio source")
	require.Equal(t, 2, sources.Length())
	src, _ := sources.Eq(0).Attr("src")
	assert.Equal(t, "https://archive.org/inferno-3.mp3", src)
	src, _ = sources.Eq(1).Attr("src")
	assert.Equal(t, "https://feeds.example.com/inferno-3.mp3", src)
	typ, _ := sources.Eq(0).Attr("type")
	assert.Equal(t, "audio/mpeg", typ)

	paragraphs := doc.Find("div > p")
	require.Equal(t, 2, paragraphs.Length())
	assert.Equal(t, sourcesNote, strings.TrimSpace(paragraphs.Eq(0).Text()))
	href, _ := paragraphs.Eq(1).Find("a").Attr("href")
	assert.Equal(t, authorURL, href)
}

func TestPage_PrettyPrinted(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Page(&out, filledTable(t)))

	expectedHead := strings.Join([]string{
		"<html>",
		" <head>",
		" </head>",
		" <body>",
		"  <div>",
		"   <h1>",
		"    The Divine Comedy by Dante Alighieri",
		"   </h1>",
		"   <h2>",
		"    Inferno",
		"   </h2>",
		"   <table>",
		"    <thead>",
		"     <tr>",
		"      <th>",
		"       Canto",
		"      </th>",
	}, "\n")
	assert.True(t, strings.HasPrefix(out.String(), expectedHead), "先頭部分:\n%s", out.String()[:400])
	assert.True(t, strings.HasSuffix(out.String(), "  </div>\n </body>\n</html>\n"))
	assert.Contains(t, out.String(), "<audio controls=\"\" preload=\"none\">\n")
	assert.NotContains(t, out.String(), "</source>")
}

func TestPrettify(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<html><head></head><body><p>a &amp; b<br>c</p><!--note--></body></html>`))
	require.NoError(t, err)

	var out bytes.Buffer
	Prettify(&out, doc)

	expected := strings.Join([]string{
		"<html>",
		" <head>",
		" </head>",
		" <body>",
		"  <p>",
		"   a &amp; b",
		"   <br>",
		"   c",
		"  </p>",
		"  <!--note-->",
		" </body>",
		"</html>",
		"",
	}, "\n")
	assert.Equal(t, expected, out.String())
}

func TestPage_EmptyTableStillRenders(t *testing.T) {
	// 検証は呼び出し側の責務のため、未設定の行もそのまま描画されます。
	table := canto.NewTable()
	var out bytes.Buffer
	require.NoError(t, Page(&out, table))
	assert.Equal(t, 100, strings.Count(out.String(), "<tr>")-3)

	row, err := table.Lookup(types.Inferno, 1)
	require.NoError(t, err)
	assert.Empty(t, row.ReadingURL)
}
