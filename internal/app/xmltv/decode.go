package xmltv

import (
	"bytes"
	"compress/gzip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// document 解析用的根元素，根元素名称不做限制
type document struct {
	XMLName    xml.Name
	Channels   []Channel   `xml:"channel"`
	Programmes []Programme `xml:"programme"`
}

// Decode 解压gzip数据并解析为EPG文档
func Decode(data []byte) (*Document, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, &DecompressionError{Err: err}
	}
	defer zr.Close()

	// 先完整解压，区分解压错误和解析错误
	content, err := io.ReadAll(zr)
	if err != nil {
		return nil, &DecompressionError{Err: err}
	}

	return Parse(bytes.NewReader(content))
}

// Parse 解析未压缩的XMLTV内容
func Parse(r io.Reader) (*Document, error) {
	decoder := xml.NewDecoder(r)
	// 支持非UTF-8编码的文档
	decoder.CharsetReader = charset.NewReaderLabel

	var raw document
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, &ParseError{Err: err}
	}

	// 根元素之后只允许注释、处理指令和空白
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, &ParseError{Err: err}
		}

		switch t := token.(type) {
		case xml.StartElement:
			return nil, &ParseError{Err: fmt.Errorf("unexpected element <%s> after root element", t.Name.Local)}
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return nil, &ParseError{Err: errors.New("unexpected text after root element")}
			}
		}
	}

	return &Document{
		Channels:   raw.Channels,
		Programmes: raw.Programmes,
	}, nil
}
