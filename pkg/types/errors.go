package types

import (
	"errors"
	"fmt"
)

// 取得・解析・突合・検証の各段階で返されるエラーです。
// いずれも回復処理は行わず、呼び出し元へそのまま伝播させます。
var (
	// ErrMalformedRecord は、項目のテキストやタイトルが期待するトークン構成に分解できないことを示します。
	ErrMalformedRecord = errors.New("レコードの形式が不正です")
	// ErrInvalidNumeral は、ローマ数字として解釈できない文字が含まれることを示します。
	ErrInvalidNumeral = errors.New("不正なローマ数字です")
	// ErrInvalidCanticle は、正規化後の歌集名が三歌集のいずれにも一致しないことを示します。
	ErrInvalidCanticle = errors.New("invalid canticle")
	// ErrCantoOutOfRange は、歌番号が歌集の範囲外であることを示します。
	ErrCantoOutOfRange = errors.New("歌番号が範囲外です")
	// ErrMissingField は、検証時に必須項目が未設定であることを示します。
	ErrMissingField = errors.New("必須項目が未設定です")
)

// MissingFieldError は、どの歌のどの項目が欠けているかを保持する検証エラーです。
type MissingFieldError struct {
	Canto Canto
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s.%s が未設定です", e.Canto, e.Field)
}

// Unwrap により errors.Is(err, ErrMissingField) で判定できます。
func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}
