package epg

import (
	"context"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultUserAgent = "epgLK/1.0"

type Client struct {
	httpClient *http.Client // HTTP客户端
	userAgent  string       // 请求时的User-Agent

	now func() time.Time // 当前时间，测试时可替换

	logger *zap.Logger // 日志
}

func NewClient(httpClient *http.Client, userAgent string) *Client {
	c := Client{
		httpClient: httpClient,
		userAgent:  userAgent,
		logger:     zap.L(),
	}
	if c.httpClient == nil {
		c.httpClient = http.DefaultClient
	}
	if c.userAgent == "" {
		c.userAgent = defaultUserAgent
	}
	return &c
}

// Fetch 下载EPG文件，返回未解压的原始内容
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, ErrURLIsEmpty
	}

	// 创建请求
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)

	// 执行请求
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}

	c.logger.Debug("EPG file downloaded.", zap.String("url", url), zap.Int("bytes", len(data)))
	return data, nil
}
