package numeral

import (
	"fmt"
	"strings"

	"github.com/shouni/commedia-index/pkg/types"
)

// romanValues は1文字の値と減算表記の2文字の値をまとめた変換表です。
var romanValues = map[string]int{
	"I":  1,
	"V":  5,
	"X":  10,
	"L":  50,
	"C":  100,
	"D":  500,
	"M":  1000,
	"IV": 4,
	"IX": 9,
	"XL": 40,
	"XC": 90,
	"CD": 400,
	"CM": 900,
}

// FromRoman はローマ数字の文字列を整数に変換します。大文字小文字は区別しません。
//
// 左から走査し、現在位置からの2文字が減算表記に一致すればその値を加算して2文字進め、
// そうでなければ1文字分の値を加算します。"IIII" のような非標準表記の検証は行わず、
// 単純な加算結果を返します。ローマ数字以外の文字を含む場合のみエラーになります。
func FromRoman(roman string) (int, error) {
	roman = strings.ToUpper(roman)

	num := 0
	for i := 0; i < len(roman); {
		if i+1 < len(roman) {
			if v, ok := romanValues[roman[i:i+2]]; ok {
				num += v
				i += 2
				continue
			}
		}
		v, ok := romanValues[roman[i:i+1]]
		if !ok {
			return 0, fmt.Errorf("%w: %q (位置 %d の文字 %q)", types.ErrInvalidNumeral, roman, i, roman[i:i+1])
		}
		num += v
		i++
	}
	return num, nil
}
