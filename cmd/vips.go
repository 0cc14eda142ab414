package main

import (
	"github.com/davidbyttow/govips/v2/vips"
	"go.uber.org/zap"

	"github.com/brandquad/procuracao"
)

// startVips routes libvips logging through logger and starts it when covers
// are enabled. The returned func shuts it down again.
func startVips(cfg procuracao.Config, logger *zap.Logger) func() {
	if cfg.CoverHeight <= 0 {
		return func() {}
	}
	vips.LoggingSettings(func(domain string, _ vips.LogLevel, message string) {
		logger.Debug("vips", zap.String("domain", domain), zap.String("message", message))
	}, vips.LogLevelWarning)
	vips.Startup(&vips.Config{ConcurrencyLevel: cfg.MaxConversions})
	return vips.Shutdown
}
