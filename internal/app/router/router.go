package router

import (
	"github.com/anilwee/epgLK/internal/app/config"
	"github.com/anilwee/epgLK/internal/app/epg"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	logger *zap.Logger

	conf      *config.Config
	epgClient *epg.Client
)

// NewEngine 创建HTTP服务，每次请求都会重新下载并过滤EPG
func NewEngine(cfg *config.Config, client *epg.Client) *gin.Engine {
	// L()：获取全局logger
	logger = zap.L()

	gin.SetMode(gin.ReleaseMode)

	conf = cfg
	epgClient = client

	// 创建 Gin 路由引擎
	r := gin.New()

	// 日志记录
	r.Use(ginzap.Ginzap(logger, "", false))
	r.Use(ginzap.RecoveryWithZap(logger, true))

	// 查询EPG-xml格式
	r.GET("/epg/xml", GetXmlEPG)
	r.GET("/epg/xml.gz", GetXmlEPGWithGzip)
	// 查询EPG-json格式
	r.GET("/epg/json", GetJsonEPG)

	return r
}
