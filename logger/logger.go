// Package logger provides adapters for popular logger libraries to work with btrees' Logger interface.
//
// The adapters allow you to use your existing logger with btrees without writing boilerplate.
// Note that the standard library's slog.Logger already implements btrees.Logger directly.
//
// Example with zap:
//
//	import (
//	    "btrees"
//	    "btrees/logger"
//	    "go.uber.org/zap"
//	)
//
//	func main() {
//	    zapLogger, _ := zap.NewProduction()
//
//	    tree, err := btrees.New(5, btrees.WithLogger(logger.NewZap(zapLogger)))
//	    if err != nil {
//	        panic(err)
//	    }
//	    tree.Insert(42)
//	}
package logger
