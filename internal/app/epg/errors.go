package epg

import (
	"errors"
	"fmt"
)

var (
	ErrOutputIsEmpty = errors.New("output path is empty")
	ErrURLIsEmpty    = errors.New("EPG url is empty")
)

// FetchError 服务器返回了非2xx的状态码
type FetchError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch EPG file %s: http status code: %d", e.URL, e.StatusCode)
}

// TransportError HTTP之下的网络错误，如超时、DNS、TLS
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to request %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IOError 本地文件读写失败
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
