package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/gommon/log"
)

const (
	logDir      = "logs"
	logFileName = "herofx.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging returns the application logger and the open log file
// Logging is off unless debug is set, the terminal owns stdout and stderr
func setupLogging(debug bool) (*log.Logger, *os.File) {
	logger := log.New("herofx")
	logger.SetHeader("${time_rfc3339} ${level} ${short_file}:${line}")

	if !debug {
		logger.SetOutput(io.Discard)
		logger.SetLevel(log.OFF)
		return logger, nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		logger.SetOutput(io.Discard)
		logger.SetLevel(log.OFF)
		return logger, nil
	}

	logPath := filepath.Join(logDir, logFileName)
	rotateLog(logPath)

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logger.SetOutput(io.Discard)
		logger.SetLevel(log.OFF)
		return logger, nil
	}

	logger.SetOutput(logFile)
	logger.SetLevel(log.DEBUG)
	logger.Infof("logging started, pid %d", os.Getpid())
	return logger, logFile
}

// rotateLog moves an oversized log aside with a timestamp suffix
func rotateLog(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	stamp := time.Now().Format("20060102-150405")
	rotated := filepath.Join(filepath.Dir(logPath), fmt.Sprintf("herofx-%s.log", stamp))
	_ = os.Rename(logPath, rotated)
}
