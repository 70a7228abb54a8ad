package config

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Script   string `yaml:"script"`    // 操作脚本路径
	MaxSteps int    `yaml:"max_steps"` // 最大操作数，0 表示不限制
	Debug    bool   `yaml:"debug"`     // 是否输出调试日志
}

func DefaultConfig() *Config {
	return &Config{
		Script:   "ops.yaml",
		MaxSteps: 1024,
		Debug:    false,
	}
}

func (c *Config) Unmarshal(b []byte) error {
	return yaml.Unmarshal(b, c)
}

func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Load 读取配置文件，未填写的字段使用默认值
func Load(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	conf := DefaultConfig()
	if err = conf.Unmarshal(data); err != nil {
		return nil, errors.WithStack(err)
	}

	if conf.MaxSteps < 0 {
		return nil, errors.Errorf("invalid max_steps %d", conf.MaxSteps)
	}

	return conf, nil
}
