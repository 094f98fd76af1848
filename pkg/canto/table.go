package canto

import (
	"fmt"
	"iter"

	"github.com/shouni/commedia-index/pkg/types"
)

// Table は全100歌を (歌集, 番号) で引けるように保持する正規の表です。
// 生成時に全行を作成し、以降は行の追加・削除を行いません。
type Table struct {
	canticles map[types.Canticle][]*types.Canto
}

// NewTable は URL が未設定の100行を正規の順序で生成します。
func NewTable() *Table {
	t := &Table{canticles: make(map[types.Canticle][]*types.Canto, len(types.CanticleOrder))}
	for _, c := range types.CanticleOrder {
		rows := make([]*types.Canto, c.CantoCount())
		for i := range rows {
			rows[i] = &types.Canto{Canticle: c, Number: i + 1}
		}
		t.canticles[c] = rows
	}
	return t
}

// Lookup は (歌集, 番号) に対応する行を返します。
func (t *Table) Lookup(canticle types.Canticle, number int) (*types.Canto, error) {
	rows, ok := t.canticles[canticle]
	if !ok {
		return nil, fmt.Errorf("%w %s", types.ErrInvalidCanticle, canticle)
	}
	if number < 1 || number > len(rows) {
		return nil, fmt.Errorf("%w: %s の %d (1..%d)", types.ErrCantoOutOfRange, canticle, number, len(rows))
	}
	return rows[number-1], nil
}

// Cantos は指定された歌集の行を番号順に返します。
func (t *Table) Cantos(canticle types.Canticle) []*types.Canto {
	return t.canticles[canticle]
}

// All は全100行を正規の順序 (地獄篇, 煉獄篇, 天国篇) で列挙します。
func (t *Table) All() iter.Seq[*types.Canto] {
	return func(yield func(*types.Canto) bool) {
		for _, c := range types.CanticleOrder {
			for _, row := range t.canticles[c] {
				if !yield(row) {
					return
				}
			}
		}
	}
}

// Len は表の行数を返します。
func (t *Table) Len() int {
	n := 0
	for _, rows := range t.canticles {
		n += len(rows)
	}
	return n
}
