// Package logger, uygulamanın structured logger'ını (zap) oluşturur.
//
// Tüm log satırları stdout'a tek satırlık JSON olarak yazılır.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New, verilen seviyede JSON logger oluşturur.
// Kabul edilen seviyeler (case-insensitive): "debug", "info", "warn", "error".
func New(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(os.Stdout)),
		zapLevel,
	)

	return zap.New(core, zap.AddCaller()), nil
}

// Flush, buffer'da kalan log'ları yazar. main'den çıkmadan hemen önce çağrılır.
//
// Sync stdout üzerinde "invalid argument" dönebilir (bazı platformlarda);
// bu zararsızdır, o yüzden hata yoksayılır.
func Flush(l *zap.Logger) {
	_ = l.Sync()
}
