package xmltv

import (
	"fmt"
)

// DecompressionError 数据不是合法的gzip格式
type DecompressionError struct {
	Err error
}

func (e *DecompressionError) Error() string {
	return fmt.Sprintf("failed to decompress EPG data: %v", e.Err)
}

func (e *DecompressionError) Unwrap() error {
	return e.Err
}

// ParseError 解压后的内容不是格式良好的XML
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse EPG xml: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// TimestampFormatError 节目的时间属性不符合 YYYYMMDDHHMMSS[ offset] 格式
type TimestampFormatError struct {
	Attr  string // 属性名称，start或stop
	Value string // 原始属性值
	Err   error  // time.Parse的错误，正则不匹配时为空
}

func (e *TimestampFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s timestamp %q: %v", e.Attr, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid %s timestamp %q", e.Attr, e.Value)
}

func (e *TimestampFormatError) Unwrap() error {
	return e.Err
}
