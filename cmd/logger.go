package cmd

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initLogger はグローバルの zap ロガーを差し替えます。
// 通常は何も出力せず、verbose の場合のみ debug レベルで標準エラー出力に書き出します。
func initLogger(verbose bool) error {
	if !verbose {
		zap.ReplaceGlobals(zap.NewNop())
		return nil
	}

	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.Level.SetLevel(zapcore.DebugLevel)
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := zapCfg.Build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}
