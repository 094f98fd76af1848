package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shouni/go-http-kit/pkg/httpkit"
)

// ----------------------------------------------------------------------
// 定数とインターフェース
// ----------------------------------------------------------------------

const (
	// DefaultHTTPTimeout は、デフォルトのHTTPタイムアウトです。
	DefaultHTTPTimeout = 30 * time.Second
)

// Doer は、標準の *http.Client.Do()と互換性のあるHTTPクライアントのインターフェースを定義します。
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client は httpkit.Client をラップし、取得元パッケージが依存する
// Fetcher (ctx, url の引数順) に適合させます。
// 取得はGET一回きりで、リトライは行いません。
type Client struct {
	kit *httpkit.Client
}

// ----------------------------------------------------------------------
// 設定とコンストラクタ
// ----------------------------------------------------------------------

// ClientOption はClientの設定を行うための関数型です。
type ClientOption func(*Client)

// WithHTTPClient はカスタムのDoerを設定します。テストで httptest のクライアントを差し込む際に使用します。
func WithHTTPClient(doer Doer) ClientOption {
	return func(c *Client) {
		httpkit.WithHTTPClient(doer)(c.kit)
	}
}

// New は新しいClientを初期化します。timeout が 0 以下の場合は DefaultHTTPTimeout を使用します。
func New(timeout time.Duration, options ...ClientOption) *Client {
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}

	// 失敗は即座に致命的エラーとして扱うため、リトライ回数は 0 に固定
	c := &Client{
		kit: httpkit.New(timeout, httpkit.WithMaxRetries(0)),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// ----------------------------------------------------------------------
// httpkit メソッドの利用
// ----------------------------------------------------------------------

// FetchBytes は URL からコンテンツを取得し、生のバイト配列として返します。
// ネットワークエラーや 2xx 以外のステータスはエラーになります。
func (c *Client) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	body, err := c.kit.FetchBytes(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("HTTP GETに失敗しました (URL: %s): %w", url, err)
	}
	return body, nil
}

// IsNonRetryableError は与えられたエラーが 4xx 系のHTTPエラーであるかを判断します。
// httpkit の同名関数を呼び出します。
func IsNonRetryableError(err error) bool {
	return httpkit.IsNonRetryableError(err)
}
