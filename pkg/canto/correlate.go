package canto

import (
	"fmt"
	"iter"

	"github.com/shouni/commedia-index/pkg/types"
)

// ApplyReadings は朗読索引のレコードを表に反映し、ReadingURL を設定します。
// 反映した件数を返します。
func (t *Table) ApplyReadings(records iter.Seq2[types.Record, error]) (int, error) {
	return t.apply(records, "朗読索引", func(c *types.Canto, url string) {
		c.ReadingURL = url
	})
}

// ApplyCommentaries はポッドキャストのレコードを表に反映し、CommentaryURL を設定します。
// 反映した件数を返します。
func (t *Table) ApplyCommentaries(records iter.Seq2[types.Record, error]) (int, error) {
	return t.apply(records, "ポッドキャスト", func(c *types.Canto, url string) {
		c.CommentaryURL = url
	})
}

// apply は各レコードを (歌集, 番号) で対応する行に書き込みます。
// 同じキーのレコードが複数ある場合は後勝ちで上書きします (重複検出は行いません)。
// 列挙中のエラーや検索エラーが発生した時点で中断します。
func (t *Table) apply(records iter.Seq2[types.Record, error], source string, set func(*types.Canto, string)) (int, error) {
	applied := 0
	for rec, err := range records {
		if err != nil {
			return applied, fmt.Errorf("%sのレコード取得に失敗しました: %w", source, err)
		}
		row, err := t.Lookup(rec.Canticle, rec.Number)
		if err != nil {
			return applied, fmt.Errorf("%sのレコード (URL: %s) を反映できません: %w", source, rec.URL, err)
		}
		set(row, rec.URL)
		applied++
	}
	return applied, nil
}
