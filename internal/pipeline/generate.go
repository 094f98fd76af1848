package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/shouni/commedia-index/pkg/canto"
	"github.com/shouni/commedia-index/pkg/extract"
	"github.com/shouni/commedia-index/pkg/feed"
	"github.com/shouni/commedia-index/pkg/render"
)

// Sources は取得元の2つのURLです。
type Sources struct {
	ReadingsURL string // 朗読カタログ (HTML)
	PodcastURL  string // 解説ポッドキャスト (RSS)
}

// DefaultSources は既定の取得元を返します。
func DefaultSources() Sources {
	return Sources{
		ReadingsURL: extract.DefaultReadingsURL,
		PodcastURL:  feed.DefaultPodcastURL,
	}
}

// Fetcher は両方の取得元が依存する、生バイト列を取得する機能です。
type Fetcher interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

// Generator は取得・突合・検証・描画を順に実行し、一覧ページを生成します。
type Generator struct {
	extractor *extract.Extractor
	parser    *feed.Parser
	logger    *zap.Logger
}

// NewGenerator は Fetcher を両方の取得元に注入して Generator を初期化します。
// logger が nil の場合は何も出力しません。
func NewGenerator(fetcher Fetcher, logger *zap.Logger) (*Generator, error) {
	extractor, err := extract.NewExtractor(fetcher)
	if err != nil {
		return nil, fmt.Errorf("Extractorの初期化エラー: %w", err)
	}
	parser, err := feed.NewParser(fetcher)
	if err != nil {
		return nil, fmt.Errorf("Parserの初期化エラー: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{extractor: extractor, parser: parser, logger: logger}, nil
}

// Generate は朗読カタログ、ポッドキャストの順に取得して表を組み立て、
// 全100歌が揃っていることを確認してから w にHTMLを書き出します。
// いずれかの段階で失敗した場合は w に何も書き込みません。
func (g *Generator) Generate(ctx context.Context, src Sources, w io.Writer) error {
	table, err := g.Collect(ctx, src)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := render.Page(&buf, table); err != nil {
		return fmt.Errorf("一覧ページの生成エラー: %w", err)
	}
	g.logger.Debug("一覧ページを生成しました", zap.Int("bytes", buf.Len()))

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("一覧ページの出力エラー: %w", err)
	}
	return nil
}

// Collect は両取得元のレコードを正規の表に突合し、検証済みの表を返します。
func (g *Generator) Collect(ctx context.Context, src Sources) (*canto.Table, error) {
	table := canto.NewTable()

	// 1. 朗読カタログ
	g.logger.Debug("朗読カタログを取得します", zap.String("url", src.ReadingsURL))
	readings, err := g.extractor.FetchReadings(ctx, src.ReadingsURL)
	if err != nil {
		return nil, err
	}
	n, err := table.ApplyReadings(readings)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("朗読を反映しました", zap.Int("records", n))

	// 2. 解説ポッドキャスト
	g.logger.Debug("ポッドキャストを取得します", zap.String("url", src.PodcastURL))
	commentaries, err := g.parser.FetchCommentaries(ctx, src.PodcastURL)
	if err != nil {
		return nil, err
	}
	n, err = table.ApplyCommentaries(commentaries)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("解説を反映しました", zap.Int("records", n))

	// 3. 全行の検証
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("取得結果の検証エラー: %w", err)
	}
	return table, nil
}
