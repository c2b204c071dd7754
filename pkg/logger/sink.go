package logger

import (
	"fmt"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	SinkConsole = "console"
	SinkFile    = "file"
)

// Rotation policy of file sinks: the current file is rotated once it would
// exceed MaxFileSize, and at most MaxFiles files (current plus backups) are
// kept. The current file always keeps its fixed name.
const (
	MaxFileSize int64 = 5 * megabyte
	MaxFiles          = 2

	megabyte = 1024 * 1024
)

// FileName returns the name of the file sink for hostname.
func FileName(hostname string) string {
	return fmt.Sprintf("application_%s.log", hostname)
}

// FilePath returns the full path of the file sink under dir.
func FilePath(dir, hostname string) string {
	return filepath.Join(dir, FileName(hostname))
}

func newRotatingFile(dir, hostname string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   FilePath(dir, hostname),
		MaxSize:    int(MaxFileSize / megabyte),
		MaxBackups: MaxFiles - 1,
	}
}
