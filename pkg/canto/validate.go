package canto

import (
	"github.com/shouni/commedia-index/pkg/types"
)

// Validate は全行を正規の順序で検査し、最初に見つかった欠落項目をエラーとして返します。
// 検査順は reading_url, commentary_url, canticle, number です。
func (t *Table) Validate() error {
	for row := range t.All() {
		if err := validateCanto(row); err != nil {
			return err
		}
	}
	return nil
}

func validateCanto(c *types.Canto) error {
	switch {
	case c.ReadingURL == "":
		return &types.MissingFieldError{Canto: *c, Field: "reading_url"}
	case c.CommentaryURL == "":
		return &types.MissingFieldError{Canto: *c, Field: "commentary_url"}
	case c.Canticle == "":
		return &types.MissingFieldError{Canto: *c, Field: "canticle"}
	case c.Number == 0:
		return &types.MissingFieldError{Canto: *c, Field: "number"}
	}
	return nil
}
