// Package logging provides structured logging utilities for Cloud Native Stack components.
//
// # Overview
//
// This package wraps the standard library slog package with CNS-specific defaults
// and conventions for consistent logging across all components. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//   - Integration with standard library log package
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("skugen", "v1.0.0")
//	    slog.Info("listing sizes", "location", "eastus")
//	    slog.Debug("detailed state", "data", complexObject)
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("skugen", "v2.0.0", "debug")
//	logger.Info("generation starting", "profile", "hardened")
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("skugen", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug skugen generate
//	LOG_LEVEL=error skugen fault-domains
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "constants written",
//	    "module": "skugen",
//	    "version": "v1.0.0",
//	    "path": "pkg/helpers/azureconst.go"
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "inventory.(*Fetcher).FetchAllSkus",
//	        "file": "fetcher.go",
//	        "line": 45
//	    },
//	    "msg": "listing sizes",
//	    "module": "skugen",
//	    "version": "v1.0.0"
//	}
//
// # Integration
//
// pkg/cli installs the default logger before any command runs; the
// --log-level flag overrides LOG_LEVEL.
package logging
