package extract

import (
	"bytes"
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	textUtils "github.com/shouni/go-utils/text"

	"github.com/shouni/commedia-index/pkg/numeral"
	"github.com/shouni/commedia-index/pkg/types"
)

// ----------------------------------------------------------------------
// 定数定義 (解析関連のみ)
// ----------------------------------------------------------------------
const (
	// DefaultReadingsURL は LibriVox の『神曲』(劇形式朗読 第2版) のカタログページです。
	DefaultReadingsURL = "https://librivox.org/the-divine-comedy-version-2-dramatic-reading-by-dante-alighieri/"

	// nonCantoMarker を含む章は歌ではない (登場人物一覧) ため読み飛ばします。
	nonCantoMarker = "Dramatis Personae"

	// chapterTokenCount は章名 ("Divine Comedy Inferno I" など) のトークン数です。
	chapterTokenCount = 4
)

// chapterSelector は章ごとの音声リンクを指します。
var chapterSelector = cascadia.MustCompile("a.chapter-name")

// Extractor は、Fetcher を使って朗読カタログから章ごとの音声URLを抽出します。
type Extractor struct {
	fetcher Fetcher
}

// NewExtractor は、新しいExtractorのインスタンスを生成します。
func NewExtractor(fetcher Fetcher) (*Extractor, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("extract.NewExtractor: Fetcher cannot be nil")
	}
	return &Extractor{
		fetcher: fetcher,
	}, nil
}

// ----------------------------------------------------------------------
// メイン関数 (メソッド化)
// ----------------------------------------------------------------------

// FetchReadings は指定されたURLからカタログページを取得し、章ごとの (歌集, 番号, 音声URL) を列挙します。
// 取得とHTML解析の失敗はここで返し、個々の章の解析エラーは列挙中に返します。
func (e *Extractor) FetchReadings(ctx context.Context, url string) (iter.Seq2[types.Record, error], error) {
	// 1. Fetcherから生のバイト配列を取得 (通信の責務)
	htmlBytes, err := e.fetcher.FetchBytes(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("朗読カタログの取得失敗 (URL: %s): %w", url, err)
	}

	// 2. goquery.Documentに変換 (解析の責務)
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlBytes))
	if err != nil {
		return nil, fmt.Errorf("HTML解析に失敗しました (URL: %s): %w", url, err)
	}

	return ReadingsFromDocument(doc), nil
}

// ReadingsFromDocument は解析済みドキュメントから章のリンクを文書順に列挙します。
func ReadingsFromDocument(doc *goquery.Document) iter.Seq2[types.Record, error] {
	chapters := doc.FindMatcher(chapterSelector)

	return func(yield func(types.Record, error) bool) {
		for i := range chapters.Length() {
			s := chapters.Eq(i)
			text := s.Text()
			if strings.Contains(text, nonCantoMarker) {
				continue
			}

			rec, err := parseChapter(text, s)
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

// parseChapter は "Divine Comedy Purgatorio XIV" 形式の章名とリンク先からレコードを組み立てます。
func parseChapter(text string, s *goquery.Selection) (types.Record, error) {
	label := textUtils.NormalizeText(text)

	href, ok := s.Attr("href")
	if !ok || href == "" {
		return types.Record{}, fmt.Errorf("%w: 章 %q にリンク先がありません", types.ErrMalformedRecord, label)
	}

	tokens := strings.Fields(text)
	if len(tokens) != chapterTokenCount {
		return types.Record{}, fmt.Errorf("%w: 章名 %q は %d トークンではありません (実際: %d)",
			types.ErrMalformedRecord, label, chapterTokenCount, len(tokens))
	}

	number, err := numeral.FromRoman(tokens[3])
	if err != nil {
		return types.Record{}, fmt.Errorf("章 %q の歌番号を解釈できません: %w", label, err)
	}

	return types.Record{
		Canticle: types.NormalizeCanticle(tokens[2]),
		Number:   number,
		URL:      href,
	}, nil
}
