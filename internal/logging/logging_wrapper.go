package logging

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// Middleware creates a fresh LogData per request, stores it in the request
// context and logs one entry when the handler returns.
func Middleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(log)
		operation := "unknown"
		if op := ctx.Operation(); op != nil && op.OperationID != "" {
			operation = op.OperationID
		}
		logData.AddData("operation", operation)
		logData.AddData("method", ctx.Method())
		logData.AddData("path", ctx.URL().Path)

		endTimer := logData.AddTiming("duration")
		next(huma.WithContext(ctx, WithLogData(ctx.Context(), logData)))
		endTimer()

		status := ctx.Status()
		logData.AddData("status", status)
		entry := logData.Log()
		switch {
		case status >= 500:
			entry.Errorf("Handler.%v.Error", operation)
		case status >= 400:
			entry.Warnf("Handler.%v.Rejected", operation)
		default:
			entry.Infof("Handler.%v.Complete", operation)
		}
	}
}
