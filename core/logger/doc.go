// Package logger provides a structured logging facility based on Zap.
//
// New builds a development logger for the "debug" level and a production
// logger otherwise, with json or console encoding. WithRayID tags entries with
// the ray id set by the rayid middleware so all logs of one request can be
// correlated.
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Dataset loaded", zap.Int("revisions", store.Len()))
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Lookup failed", zap.Error(err))
package logger
