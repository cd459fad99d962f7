// Package logger builds the service's structured logger on top of log/slog.
//
// Output goes to stdout as JSON (or text for local development). Context
// extractors add request-scoped attributes, such as the request ID, to every
// record logged with a context:
//
//	log, err := logger.New(cfg.Log, requestIDExtractor)
//	log.InfoContext(ctx, "catalog served", slog.Int("rules", 32))
//	// {"level":"INFO","msg":"catalog served","rules":32,"request_id":"..."}
//
// When Config.Sentry.DSN is set, errors additionally create Sentry issues and
// warnings are stored as Sentry logs. A missing DSN or a failed SDK
// initialization falls back to stdout only, so the same code path works in
// development and production.
package logger
