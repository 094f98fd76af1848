package types

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Canticle は『神曲』を構成する三つの歌集 (篇) の識別子です。
type Canticle string

const (
	Inferno    Canticle = "inferno"
	Purgatorio Canticle = "purgatorio"
	Paradiso   Canticle = "paradiso"
)

// CanticleOrder は出力時の正規の並び順です。
var CanticleOrder = []Canticle{Inferno, Purgatorio, Paradiso}

// cantoCounts は各歌集に含まれる歌 (Canto) の数です。合計100。
var cantoCounts = map[Canticle]int{
	Inferno:    34,
	Purgatorio: 33,
	Paradiso:   33,
}

// aliases は既知の表記揺れ・誤記を正規の歌集名に対応付けます。
var aliases = map[string]Canticle{
	"purgatory":  Purgatorio,
	"puragtorio": Purgatorio,
}

var titleCaser = cases.Title(language.Und)

// CantoCount は歌集に含まれる歌の数を返します。未知の歌集は 0 です。
func (c Canticle) CantoCount() int {
	return cantoCounts[c]
}

// IsValid は正規の三歌集のいずれかであるかを判定します。
func (c Canticle) IsValid() bool {
	_, ok := cantoCounts[c]
	return ok
}

// Display は見出しやラベルに使う表示名 (例: "Inferno") を返します。
func (c Canticle) Display() string {
	return titleCaser.String(string(c))
}

// NormalizeCanticle は取得元の歌集名を小文字化し、別名表を適用します。
// 別名表にない名前はそのまま返すため、正規名かどうかの判定は呼び出し側で行います。
func NormalizeCanticle(name string) Canticle {
	lowered := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[lowered]; ok {
		return canonical
	}
	return Canticle(lowered)
}

// Canto は (歌集, 番号) で識別される1つの歌と、それに紐づく音声URLを保持します。
type Canto struct {
	Canticle      Canticle
	Number        int
	ReadingURL    string // 朗読音声 (LibriVox)
	CommentaryURL string // 解説音声 (ポッドキャスト)
}

// String はエラーメッセージ用の識別表現を返します。
func (c Canto) String() string {
	return fmt.Sprintf("Canto(%q, %d)", string(c.Canticle), c.Number)
}

// Label は表の先頭列に表示するラベル (例: "Inferno 3") を返します。
func (c Canto) Label() string {
	return fmt.Sprintf("%s %d", c.Canticle.Display(), c.Number)
}

// Record は取得元から抽出された (歌集, 番号, URL) の三つ組です。
// Canticle は正規化済みですが、正規名である保証はありません。
type Record struct {
	Canticle Canticle
	Number   int
	URL      string
}
