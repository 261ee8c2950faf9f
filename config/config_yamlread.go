package config

import (
	"os"
	"sync/atomic"

	"binable/classify/binning"
	"binable/infra/errorx"
	"binable/infra/errorx/errCode"
	"binable/infra/observe/log/staticLog"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Mode string            `yaml:"mode"` // none, equal_width, equal_frequency
	Log  staticLog.Options `yaml:"log"`
}

// 用 atomic.Value 存当前配置，支持热更新时无锁读取
var cfgValue atomic.Value // stores *Config

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errorx.Wrap(err, errCode.CONFIG_ERROR, "read yaml")
	}
	return Parse(b)
}

func Parse(b []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, errorx.Wrap(err, errCode.CONFIG_ERROR, "unmarshal yaml")
	}

	// 规范化 mode
	mode := binning.GetMode(c.Mode)
	if mode == binning.MODE_ERROR {
		return nil, errorx.New(errCode.CONFIG_ERROR, "invalid mode "+c.Mode)
	}
	c.Mode = mode.String()

	if err := staticLog.Validate(c.Log); err != nil {
		return nil, err
	}
	return &c, nil
}

// Init 加载配置并应用日志设置, 失败时保留旧配置
func Init(path string) error {
	c, err := Load(path)
	if err != nil {
		return err
	}
	if err := staticLog.Init(c.Log); err != nil {
		return err
	}
	cfgValue.Store(c)
	staticLog.Infof("config loaded from %s, mode %s", path, c.Mode)
	return nil
}

// Get 未 Init 时返回 nil
func Get() *Config {
	cAny := cfgValue.Load()
	if cAny == nil {
		return nil
	}
	return cAny.(*Config)
}

func (c *Config) ClassifierMode() binning.Mode {
	return binning.GetMode(c.Mode)
}

// Classifier 按当前配置构造; 未 Init 时为 MODE_NONE
func Classifier() binning.Classifier {
	c := Get()
	if c == nil {
		return binning.NewClassifier()
	}
	return binning.NewClassifier().WithMode(c.ClassifierMode())
}
