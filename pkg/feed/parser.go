package feed

import (
	"bytes"
	"context"
	"fmt"
	"iter"

	"github.com/mmcdole/gofeed"

	"github.com/shouni/commedia-index/pkg/types"
)

// DefaultPodcastURL は Baylor University「100 Days of Dante」のポッドキャストRSSです。
const DefaultPodcastURL = "https://feeds.soundcloud.com/users/soundcloud:users:989590753/sounds.rss"

// Parserが依存すべきインターフェース
type Fetcher interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// Parser 構造体
type Parser struct {
	client Fetcher // インターフェースに依存
}

// NewParser は新しい Parser インスタンスを初期化し、依存関係を注入します。
func NewParser(client Fetcher) (*Parser, error) {
	if client == nil {
		return nil, fmt.Errorf("feed.NewParser: Fetcher cannot be nil")
	}
	return &Parser{client: client}, nil
}

// FetchAndParse は指定されたURLからフィードを取得し、パースします。
func (p *Parser) FetchAndParse(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	body, err := p.client.FetchBytes(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("フィードの取得失敗 (URL: %s): %w", feedURL, err)
	}

	fp := gofeed.NewParser()
	feed, parseErr := fp.Parse(bytes.NewReader(body))
	if parseErr != nil {
		return nil, fmt.Errorf("RSSフィードのパース失敗 (URL: %s): %w", feedURL, parseErr)
	}
	return feed, nil
}

// FetchCommentaries はフィードを取得し、各エピソードの (歌集, 番号, 音声URL) を列挙します。
func (p *Parser) FetchCommentaries(ctx context.Context, feedURL string) (iter.Seq2[types.Record, error], error) {
	feed, err := p.FetchAndParse(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	return NewEpisodeAdapter(feed).Commentaries(), nil
}
