package router

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"net/http"
	"time"

	"github.com/anilwee/epgLK/internal/app/epg"
	"github.com/anilwee/epgLK/internal/app/xmltv"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	xmltvGzipFilename = "epg.xml.gz"

	jsonTimeFormat = "2006-01-02 15:04"
)

// JsonEPG JSON格式EPG
type JsonEPG struct {
	Timezone    string          `json:"timezone"`
	WindowStart string          `json:"window_start"`
	WindowEnd   string          `json:"window_end"`
	Channels    []JsonChannel   `json:"channels"`
	Programmes  []JsonProgramme `json:"programmes"`
}

// JsonChannel 频道
type JsonChannel struct {
	Id           string   `json:"id"`
	DisplayNames []string `json:"display_names"`
}

// JsonProgramme 节目
type JsonProgramme struct {
	Channel string `json:"channel"`
	Title   string `json:"title"`
	Start   string `json:"start"` // 开始时间，按请求的时区显示
	Stop    string `json:"stop"`  // 结束时间，按请求的时区显示
}

// buildEPG 根据请求参数下载并过滤EPG，失败时已写入响应
func buildEPG(c *gin.Context) (*xmltv.Document, *epg.Result, *time.Location, bool) {
	// 获取频道名称，未指定则使用配置中的频道
	chNames := c.QueryArray("ch")
	if len(chNames) == 0 {
		chNames = conf.Channels
	}

	// 获取时区
	tz := c.DefaultQuery("tz", conf.Timezone)
	loc, err := epg.LoadLocation(tz)
	if err != nil {
		logger.Warn("Unknown timezone.", zap.String("tz", tz), zap.Error(err))
		c.Status(http.StatusBadRequest)
		return nil, nil, nil, false
	}

	opts := conf.Options()
	opts.Channels = chNames
	opts.Timezone = tz
	// 并发请求不保存原始文件
	opts.ArchivePath = ""

	doc, result, err := epgClient.Build(c.Request.Context(), opts)
	if err != nil {
		logger.Error("Failed to build the filtered EPG.", zap.Error(err))
		c.Status(http.StatusBadGateway)
		return nil, nil, nil, false
	}

	logger.Sugar().Infof("EPG filtered, channels: %d, programmes: %d, skipped: %d.", result.Channels, result.Programmes, result.Skipped)
	return doc, result, loc, true
}

// GetXmlEPG 返回XMLTV格式的EPG
func GetXmlEPG(c *gin.Context) {
	doc, _, _, ok := buildEPG(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := xmltv.Encode(&buf, doc); err != nil {
		logger.Error("Failed to marshal xml.", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", buf.Bytes())
}

// GetXmlEPGWithGzip 返回gzip压缩的XMLTV格式EPG
func GetXmlEPGWithGzip(c *gin.Context) {
	doc, _, _, ok := buildEPG(c)
	if !ok {
		return
	}

	// 先完整压缩，避免写入一半时出错
	var buf bytes.Buffer
	gzipWriter := gzip.NewWriter(&buf)
	if err := xmltv.Encode(gzipWriter, doc); err != nil {
		logger.Error("Failed to write xml data.", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}
	if err := gzipWriter.Close(); err != nil {
		logger.Error("Failed to compress xml data.", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}

	// 设置HTTP头，通知浏览器这是一个二进制流文件
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", xmltvGzipFilename)) // 指定下载文件名
	c.Data(http.StatusOK, "application/octet-stream", buf.Bytes())
}

// GetJsonEPG 返回JSON格式的EPG
func GetJsonEPG(c *gin.Context) {
	doc, result, loc, ok := buildEPG(c)
	if !ok {
		return
	}

	resp := JsonEPG{
		Timezone:    loc.String(),
		WindowStart: result.Window.Start.In(loc).Format(jsonTimeFormat),
		WindowEnd:   result.Window.End.In(loc).Format(jsonTimeFormat),
		Channels:    make([]JsonChannel, 0, len(doc.Channels)),
		Programmes:  make([]JsonProgramme, 0, len(doc.Programmes)),
	}
	for _, channel := range doc.Channels {
		resp.Channels = append(resp.Channels, JsonChannel{
			Id:           channel.ID,
			DisplayNames: channel.DisplayNames,
		})
	}
	for i := range doc.Programmes {
		programme := &doc.Programmes[i]
		// 保留下来的节目时间均已校验
		start, _ := programme.StartTime()
		stop, _ := programme.StopTime()
		resp.Programmes = append(resp.Programmes, JsonProgramme{
			Channel: programme.Channel,
			Title:   programme.Title(),
			Start:   start.In(loc).Format(jsonTimeFormat),
			Stop:    stop.In(loc).Format(jsonTimeFormat),
		})
	}

	c.PureJSON(http.StatusOK, &resp)
}
