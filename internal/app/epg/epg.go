package epg

import (
	"context"
	"fmt"
	"time"

	"github.com/anilwee/epgLK/internal/app/xmltv"
	"go.uber.org/zap"
)

// Options 一次过滤任务的参数
type Options struct {
	URL              string   // EPG文件的下载地址，gzip压缩的XMLTV
	Output           string   // 输出文件路径
	Channels         []string // 需要保留的频道名称，不区分大小写
	Timezone         string   // 计算时间窗口的时区，空字符串使用缺省时区
	ArchivePath      string   // 若配置则保存下载的原始压缩文件
	SkipInvalidTimes bool     // 跳过时间格式错误的节目，而不是中止
}

// Result 过滤结果统计
type Result struct {
	Output     string
	Window     Window
	Channels   int // 保留的频道数量
	Programmes int // 保留的节目数量
	Skipped    int // 因时间格式错误而跳过的节目数量
}

// Build 下载并过滤EPG，返回新的文档，不写入输出文件
func (c *Client) Build(ctx context.Context, opts *Options) (*xmltv.Document, *Result, error) {
	loc, err := LoadLocation(opts.Timezone)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid timezone %q: %w", opts.Timezone, err)
	}

	// 下载EPG文件
	data, err := c.Fetch(ctx, opts.URL)
	if err != nil {
		return nil, nil, err
	}

	// 保存原始文件
	if opts.ArchivePath != "" {
		if err = writeArchive(opts.ArchivePath, data); err != nil {
			return nil, nil, err
		}
	}

	// 解压并解析
	src, err := xmltv.Decode(data)
	if err != nil {
		return nil, nil, err
	}

	return c.filter(src, opts, NewWindow(c.clock(), loc))
}

// filter 先筛选频道，再筛选节目
func (c *Client) filter(src *xmltv.Document, opts *Options, window Window) (*xmltv.Document, *Result, error) {
	result := Result{
		Output: opts.Output,
		Window: window,
	}

	channels, ids := SelectChannels(src, NewTargetSet(opts.Channels))

	var onInvalid invalidTimeFunc
	if opts.SkipInvalidTimes {
		onInvalid = func(programme *xmltv.Programme, err error) error {
			c.logger.Warn("Skip the programme with an invalid time.", zap.String("channel", programme.Channel), zap.Error(err))
			result.Skipped++
			return nil
		}
	}
	programmes, err := selectProgrammes(src, ids, window, onInvalid)
	if err != nil {
		return nil, nil, err
	}

	doc := xmltv.NewDocument()
	doc.Channels = channels
	doc.Programmes = programmes

	result.Channels = len(channels)
	result.Programmes = len(programmes)
	return doc, &result, nil
}

// Generate 下载并过滤EPG，写入输出文件
func (c *Client) Generate(ctx context.Context, opts *Options) (*Result, error) {
	if opts.Output == "" {
		return nil, ErrOutputIsEmpty
	}

	doc, result, err := c.Build(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err = WriteFile(opts.Output, doc); err != nil {
		return nil, err
	}

	c.logger.Info("Filtered EPG saved.",
		zap.String("output", opts.Output),
		zap.Int("channels", result.Channels),
		zap.Int("programmes", result.Programmes),
		zap.Int("skipped", result.Skipped),
		zap.Time("windowStart", result.Window.Start),
		zap.Time("windowEnd", result.Window.End))
	return result, nil
}

func (c *Client) clock() time.Time {
	if c.now != nil {
		return c.now()
	}
	return time.Now()
}
