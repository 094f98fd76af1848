package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"golang.org/x/net/html"

	"github.com/shouni/commedia-index/pkg/canto"
	"github.com/shouni/commedia-index/pkg/types"
)

const (
	pageTitle = "The Divine Comedy by Dante Alighieri"

	sourcesNote = `Sources: LibriVox "Divine Comedy (version 2 Dramatic Reading)", Baylor University 100 Days of Dante.`
	authorName  = "Christopher Adams"
	authorURL   = "https://www.instagram.com/adamsc64/"
)

// columnHeaders は各歌集の表の見出し列です。
var columnHeaders = []string{"Canto", "Text", "Commentary"}

// pageTemplate は整形前の1行のHTMLです。整形は Prettify が行います。
var pageTemplate = template.Must(template.New("page").Parse(
	`<html><head></head><body><div>` +
		`<h1>{{.Title}}</h1>` +
		`{{range .Sections}}` +
		`<h2>{{.Heading}}</h2>` +
		`<table><thead><tr>{{range $.Headers}}<th>{{.}}</th>{{end}}</tr></thead><tbody>` +
		`{{range .Rows}}` +
		`<tr><td>{{.Label}}</td>` +
		`<td>{{template "audio" .ReadingURL}}</td>` +
		`<td>{{template "audio" .CommentaryURL}}</td></tr>` +
		`{{end}}` +
		`</tbody></table>` +
		`{{end}}` +
		`<p>{{.SourcesNote}}</p>` +
		`<p>Created by <a href="{{.AuthorURL}}">{{.AuthorName}}</a></p>` +
		`</div></body></html>` +
		`{{define "audio"}}<audio controls preload="none"> <source src="{{.}}" type="audio/mpeg"> No support</audio>{{end}}`,
))

type section struct {
	Heading string
	Rows    []*types.Canto
}

type pageData struct {
	Title       string
	Headers     []string
	Sections    []section
	SourcesNote string
	AuthorName  string
	AuthorURL   string
}

// Page は検証済みの表から一覧ページを生成し、整形したHTMLを w に書き出します。
// 生成はすべてバッファ上で行い、完成した文書だけを書き出します。
func Page(w io.Writer, table *canto.Table) error {
	data := pageData{
		Title:       pageTitle,
		Headers:     columnHeaders,
		SourcesNote: sourcesNote,
		AuthorName:  authorName,
		AuthorURL:   authorURL,
	}
	for _, c := range types.CanticleOrder {
		data.Sections = append(data.Sections, section{
			Heading: c.Display(),
			Rows:    table.Cantos(c),
		})
	}

	var raw bytes.Buffer
	if err := pageTemplate.Execute(&raw, data); err != nil {
		return fmt.Errorf("HTMLテンプレートの展開に失敗しました: %w", err)
	}

	doc, err := html.Parse(&raw)
	if err != nil {
		return fmt.Errorf("生成したHTMLの解析に失敗しました: %w", err)
	}

	var out bytes.Buffer
	Prettify(&out, doc)
	if _, err := out.WriteTo(w); err != nil {
		return fmt.Errorf("HTMLの書き出しに失敗しました: %w", err)
	}
	return nil
}
