// Package staticLog 进程级静态日志, 基于 logrus, 可选 lumberjack 滚动文件输出.
package staticLog

import (
	"io"
	"os"
	"strings"

	"binable/infra/errorx"
	"binable/infra/errorx/errCode"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	FORMAT_TEXT = "text"
	FORMAT_JSON = "json"
)

type Options struct {
	Level      string `yaml:"level"`  // debug, info, warn, error
	Format     string `yaml:"format"` // text or json
	File       string `yaml:"file"`   // 为空则只输出到 stderr
	MaxSize    int    `yaml:"maxsize"`
	MaxBackups int    `yaml:"maxbackups"`
	MaxAge     int    `yaml:"maxage"`
}

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// Validate 检查日志配置, 不修改全局 logger
func Validate(opt Options) error {
	if _, err := parseLevel(opt.Level); err != nil {
		return err
	}
	switch strings.ToLower(opt.Format) {
	case "", FORMAT_TEXT, FORMAT_JSON:
		return nil
	default:
		return errorx.New(errCode.CONFIG_ERROR, "unknown log format "+opt.Format)
	}
}

func parseLevel(s string) (logrus.Level, error) {
	if s == "" {
		return logrus.InfoLevel, nil
	}
	lvl, err := logrus.ParseLevel(s)
	if err != nil {
		return logrus.InfoLevel, errorx.Wrap(err, errCode.CONFIG_ERROR, "parse log level")
	}
	return lvl, nil
}

func Init(opt Options) error {
	if err := Validate(opt); err != nil {
		return err
	}
	lvl, _ := parseLevel(opt.Level)

	if strings.ToLower(opt.Format) == FORMAT_JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	var out io.Writer = os.Stderr
	if opt.File != "" {
		out = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   opt.File,
			MaxSize:    opt.MaxSize, // MB
			MaxBackups: opt.MaxBackups,
			MaxAge:     opt.MaxAge, // days
		})
	}
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	return nil
}

// SetOutput 替换输出, 测试中用于捕获日志
func SetOutput(w io.Writer) { logger.SetOutput(w) }

func SetLevel(lvl logrus.Level) { logger.SetLevel(lvl) }

func Logger() *logrus.Logger { return logger }

func WithFields(fields logrus.Fields) *logrus.Entry { return logger.WithFields(fields) }

func Debugf(format string, args ...interface{}) { logger.Debugf(format, args...) }

func Infof(format string, args ...interface{}) { logger.Infof(format, args...) }

func Warnf(format string, args ...interface{}) { logger.Warnf(format, args...) }

func Errorf(format string, args ...interface{}) { logger.Errorf(format, args...) }
