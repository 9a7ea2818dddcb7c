// Safe logging: masks personal identifiers in production log output.
package utils

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
)

var (
	// In production, emails and user IDs are masked.
	IsProduction = os.Getenv("GIN_MODE") == "release" ||
		os.Getenv("ENVIRONMENT") == "production" ||
		os.Getenv("ENV") == "production"

	LogLevel = getLogLevel()
)

const (
	LogLevelDebug = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

func getLogLevel() int {
	level := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	switch level {
	case "DEBUG":
		return LogLevelDebug
	case "WARN", "WARNING":
		return LogLevelWarn
	case "ERROR":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

var (
	emailRegex = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	uuidRegex  = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)
)

// maskSensitive replaces emails and full UUIDs with short redacted forms.
func maskSensitive(msg string) string {
	if !IsProduction {
		return msg
	}

	msg = emailRegex.ReplaceAllStringFunc(msg, func(email string) string {
		at := strings.Index(email, "@")
		if at <= 1 {
			return "***@***"
		}
		return email[:1] + "***" + email[at:]
	})

	msg = uuidRegex.ReplaceAllStringFunc(msg, func(id string) string {
		return id[:8] + "-****"
	})

	return msg
}

func LogDebug(format string, args ...interface{}) {
	if LogLevel <= LogLevelDebug {
		log.Printf("🔍 %s", maskSensitive(fmt.Sprintf(format, args...)))
	}
}

func LogInfo(format string, args ...interface{}) {
	if LogLevel <= LogLevelInfo {
		log.Printf("ℹ️  %s", maskSensitive(fmt.Sprintf(format, args...)))
	}
}

func LogWarn(format string, args ...interface{}) {
	if LogLevel <= LogLevelWarn {
		log.Printf("⚠️  %s", maskSensitive(fmt.Sprintf(format, args...)))
	}
}

func LogError(format string, args ...interface{}) {
	if LogLevel <= LogLevelError {
		log.Printf("❌ %s", maskSensitive(fmt.Sprintf(format, args...)))
	}
}
