// Package logger provides structured logging helpers built on log/slog.
//
// New builds a logger from options, and the attribute helpers give log
// records consistent keys. Helpers return an empty slog.Attr for nil or empty
// input, which slog drops, so callers never need nil checks.
//
//	import "github.com/dmitrymomot/forms/core/logger"
//
//	log := logger.New(
//		logger.WithDevelopment("formcheck"),
//		logger.WithOutput(os.Stderr),
//	)
//
//	log.Debug("form reconciled",
//		logger.Component("form"),
//		logger.Form("checkout"),
//		logger.Count("changed", 3),
//		logger.Elapsed(start),
//	)
//
//	log.Error("form definition rejected",
//		logger.Error(err),
//		logger.Control("street"),
//		logger.SubmitPath("address[street]"),
//	)
//
// Libraries in this module accept a *slog.Logger and default to Discard.
package logger
