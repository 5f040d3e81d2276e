package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/anilwee/epgLK/internal/app/epg"
	"github.com/anilwee/epgLK/internal/pkg/logging"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	DefaultURL    = "https://watch.livecricketsl.xyz/epg/epg.xml.gz"
	DefaultOutput = "diaLK.xml"
)

var ErrInvalidConfig = errors.New("invalid epgLK config")

// DefaultChannels 缺省保留的频道
var DefaultChannels = []string{
	"Rupavahini", "ITN", "Sirasa", "Siyatha", "Derana", "Hiru", "Supreme TV", "TNL",
	"Channel One", "TV1", "Shakti", "Shakthi", "Shakthi TV", "Cityhitz", "Ridee TV", "Hi TV",
	"Swarnavahini", "TV Derana", "Siyatha TV", "Citi Hitz",
}

type Config struct {
	URL              string        `json:"url" yaml:"url"`                                               // 必填，gzip压缩的XMLTV文件地址
	Output           string        `json:"output" yaml:"output"`                                         // 过滤后的EPG文件路径
	Channels         []string      `json:"channels" yaml:"channels"`                                     // 需要保留的频道名称，不区分大小写
	Timezone         string        `json:"timezone" yaml:"timezone"`                                     // 计算24小时窗口的时区
	ArchivePath      string        `json:"archivePath,omitempty" yaml:"archivePath,omitempty"`           // 保存下载的原始压缩文件，为空则不保存
	Timeout          time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`                   // HTTP请求超时时间，0表示不限制
	UserAgent        string        `json:"userAgent,omitempty" yaml:"userAgent,omitempty"`               // 自定义User-Agent
	SkipInvalidTimes bool          `json:"skipInvalidTimes,omitempty" yaml:"skipInvalidTimes,omitempty"` // 跳过时间格式错误的节目

	Log *logging.LogConfig `json:"log,omitempty" yaml:"log,omitempty"` // 日志设置

	Location *time.Location `json:"-" yaml:"-"` // Validate()时进行填充
}

func (c *Config) Validate() error {
	// 校验config配置
	if c.URL == "" {
		return fmt.Errorf("%w: url is empty", ErrInvalidConfig)
	} else if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout is negative", ErrInvalidConfig)
	}

	// L()：获取全局logger
	logger := zap.L()

	if c.Timezone == "" {
		c.Timezone = epg.DefaultTimezone
	}
	loc, err := epg.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("%w: unknown timezone %q", ErrInvalidConfig, c.Timezone)
	}
	c.Location = loc

	if len(c.Channels) == 0 {
		logger.Warn("The channel list is empty. The filtered EPG will contain no channels.")
	}

	return nil
}

// Options 转换为过滤任务的参数
func (c *Config) Options() *epg.Options {
	return &epg.Options{
		URL:              c.URL,
		Output:           c.Output,
		Channels:         c.Channels,
		Timezone:         c.Timezone,
		ArchivePath:      c.ArchivePath,
		SkipInvalidTimes: c.SkipInvalidTimes,
	}
}

func Load(fPath string) (*Config, error) {
	// 读取配置文件
	data, err := os.ReadFile(fPath)
	if err != nil {
		return nil, err
	}
	var config Config
	if err = yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Default 缺省配置
func Default() *Config {
	return &Config{
		URL:      DefaultURL,
		Output:   DefaultOutput,
		Channels: append([]string(nil), DefaultChannels...),
		Timezone: epg.DefaultTimezone,
		Log:      logging.DefaultLogConfig(),
	}
}

func CreateDefaultCfg(fPath string) error {
	// 写入默认配置
	f, err := os.Create(fPath)
	if err != nil {
		return err
	}
	defer f.Close()

	// 创建编码器
	encoder := yaml.NewEncoder(f)
	encoder.SetIndent(2)

	if err = encoder.Encode(Default()); err != nil {
		return err
	}
	return encoder.Close()
}
