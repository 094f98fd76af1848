package feed

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/shouni/commedia-index/pkg/types"
)

// EpisodeAdapter は gofeed.Feed をエピソード単位のレコード列に適合させるためのアダプターです。
// gofeed.Feed の具体的な構造への依存を内部に閉じ込めます。
type EpisodeAdapter struct {
	*gofeed.Feed
}

// NewEpisodeAdapter は gofeed.Feed から新しいアダプターを作成します。
func NewEpisodeAdapter(feed *gofeed.Feed) *EpisodeAdapter {
	return &EpisodeAdapter{Feed: feed}
}

// Commentaries はフィード順にエピソードを解析して列挙します。
// 最初の解析エラーを返した時点で列挙を終了します。
func (a *EpisodeAdapter) Commentaries() iter.Seq2[types.Record, error] {
	return func(yield func(types.Record, error) bool) {
		// nil またはアイテムがない場合は何も列挙しません。
		if a.Feed == nil {
			return
		}
		for _, item := range a.Items {
			rec, err := parseEpisode(item)
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

// parseEpisode はエピソードのタイトルと添付ファイル (enclosure) からレコードを組み立てます。
func parseEpisode(item *gofeed.Item) (types.Record, error) {
	if item == nil {
		return types.Record{}, fmt.Errorf("%w: 空のエピソードです", types.ErrMalformedRecord)
	}
	if len(item.Enclosures) == 0 || item.Enclosures[0].URL == "" {
		return types.Record{}, fmt.Errorf("%w: エピソード %q に音声ファイルがありません", types.ErrMalformedRecord, item.Title)
	}

	canticle, number, err := ParseTitle(item.Title)
	if err != nil {
		return types.Record{}, err
	}
	return types.Record{
		Canticle: canticle,
		Number:   number,
		URL:      item.Enclosures[0].URL,
	}, nil
}

// ParseTitle はエピソードタイトルから歌集と歌番号を取り出します。
//
// 先頭3トークンのうち、1番目を歌集名、2番目を歌番号として読みます。
// 2番目が整数でなければ ("Purgatorio Canto 5" のような形式) 3番目を歌番号として読みます。
// どちらも整数でない場合は構造エラーです。
func ParseTitle(title string) (types.Canticle, int, error) {
	tokens := strings.Fields(title)
	if len(tokens) < 3 {
		return "", 0, fmt.Errorf("%w: タイトル %q のトークンが不足しています", types.ErrMalformedRecord, title)
	}

	number, err := strconv.Atoi(tokens[1])
	if err != nil {
		var fallbackErr error
		number, fallbackErr = strconv.Atoi(tokens[2])
		if fallbackErr != nil {
			return "", 0, fmt.Errorf("%w: タイトル %q から歌番号を読み取れません: %w", types.ErrMalformedRecord, title, fallbackErr)
		}
	}
	return types.NormalizeCanticle(tokens[0]), number, nil
}
