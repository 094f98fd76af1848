package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shouni/commedia-index/internal/pipeline"
	"github.com/shouni/commedia-index/pkg/client"
	"github.com/shouni/commedia-index/pkg/extract"
	"github.com/shouni/commedia-index/pkg/feed"
)

// --- グローバル定数 ---

const (
	appName           = "commedia-index"
	defaultTimeoutSec = 30 // 秒
)

// --- グローバル変数とフラグ構造体 ---

// AppFlags はこのアプリケーション固有の永続フラグを保持
type AppFlags struct {
	TimeoutSec  int    // --timeout タイムアウト
	Verbose     bool   // --verbose 詳細ログ
	ReadingsURL string // --readings-url 朗読カタログ
	PodcastURL  string // --podcast-url 解説ポッドキャスト
}

var Flags AppFlags

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "『神曲』全100歌の朗読と解説の音声一覧HTMLを生成します",
	Long: `LibriVox の朗読カタログと「100 Days of Dante」ポッドキャストを取得し、
地獄篇・煉獄篇・天国篇の各歌について朗読音声と解説音声を並べたHTMLを標準出力に書き出します。
全100歌が揃わない場合は何も出力せずに終了します。`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initAppPreRunE,
	RunE:              runGenerate,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// --- 初期化とロジック ---

// addAppPersistentFlags は、アプリケーション固有の永続フラグをルートコマンドに追加します。
func addAppPersistentFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().IntVar(&Flags.TimeoutSec, "timeout", defaultTimeoutSec, "HTTPリクエストのタイムアウト時間（秒）")
	rootCmd.PersistentFlags().BoolVarP(&Flags.Verbose, "verbose", "v", false, "詳細ログを標準エラー出力に表示します")
	rootCmd.PersistentFlags().StringVar(&Flags.ReadingsURL, "readings-url", extract.DefaultReadingsURL, "朗読カタログ (HTML) のURL")
	rootCmd.PersistentFlags().StringVar(&Flags.PodcastURL, "podcast-url", feed.DefaultPodcastURL, "解説ポッドキャスト (RSS) のURL")
}

// initAppPreRunE は、ロガーの初期化と取得元URLの補完・検証を行います。
func initAppPreRunE(cmd *cobra.Command, args []string) error {
	if err := initLogger(Flags.Verbose); err != nil {
		return fmt.Errorf("ロガーの初期化エラー: %w", err)
	}

	var err error
	if Flags.ReadingsURL, err = ensureScheme(Flags.ReadingsURL); err != nil {
		return fmt.Errorf("--readings-url の処理エラー: %w", err)
	}
	if Flags.PodcastURL, err = ensureScheme(Flags.PodcastURL); err != nil {
		return fmt.Errorf("--podcast-url の処理エラー: %w", err)
	}
	return nil
}

// runGenerate は一覧ページを生成し、コマンドの標準出力に書き出します。
func runGenerate(cmd *cobra.Command, args []string) error {
	timeout := time.Duration(Flags.TimeoutSec) * time.Second
	logger := zap.L().With(zap.String("command", appName))
	logger.Debug("HTTPクライアントを初期化します", zap.Duration("timeout", timeout))

	generator, err := pipeline.NewGenerator(client.New(timeout), logger)
	if err != nil {
		return err
	}

	src := pipeline.Sources{
		ReadingsURL: Flags.ReadingsURL,
		PodcastURL:  Flags.PodcastURL,
	}
	return generator.Generate(cmd.Context(), src, cmd.OutOrStdout())
}

func init() {
	addAppPersistentFlags(rootCmd)
}

// --- エントリポイント ---

// Execute は、rootCmd を実行するメイン関数です。失敗時は診断を標準エラー出力に書き、終了コード1で終了します。
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		if client.IsNonRetryableError(err) {
			fmt.Fprintln(os.Stderr, "取得元URLが正しいか確認してください (--readings-url, --podcast-url)。")
		}
		os.Exit(1)
	}
}
