package xmltv

import (
	"encoding/xml"
	"strings"
	"time"
)

const (
	GeneratorInfoName = "epgLK"
	GeneratorInfoUrl  = "https://github.com/anilwee/epgLK"
)

// Document XMLTV格式的EPG
type Document struct {
	XMLName           xml.Name    `xml:"tv"`
	GeneratorInfoName string      `xml:"generator-info-name,attr,omitempty"`
	GeneratorInfoUrl  string      `xml:"generator-info-url,attr,omitempty"`
	Channels          []Channel   `xml:"channel"`
	Programmes        []Programme `xml:"programme"`
}

// NewDocument 创建一个空的EPG文档
func NewDocument() *Document {
	return &Document{
		GeneratorInfoName: GeneratorInfoName,
		GeneratorInfoUrl:  GeneratorInfoUrl,
	}
}

// Channel 频道。
// Attrs和InnerXML保存原始内容，写出时原样输出。
type Channel struct {
	ID           string
	DisplayNames []string
	Attrs        []xml.Attr
	InnerXML     []byte
}

// Programme 节目
type Programme struct {
	Channel  string
	Start    string
	Stop     string
	Attrs    []xml.Attr
	InnerXML []byte
}

// StartTime 节目开始时间(UTC)
func (p *Programme) StartTime() (time.Time, error) {
	return ParseTime("start", p.Start)
}

// StopTime 节目结束时间(UTC)
func (p *Programme) StopTime() (time.Time, error) {
	return ParseTime("stop", p.Stop)
}

// rawElement 原样编解码元素内容
type rawElement struct {
	InnerXML []byte `xml:",innerxml"`
}

func (c *Channel) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var aux struct {
		ID           string   `xml:"id,attr"`
		DisplayNames []string `xml:"display-name"`
		InnerXML     []byte   `xml:",innerxml"`
	}
	if err := d.DecodeElement(&aux, &start); err != nil {
		return err
	}

	*c = Channel{
		ID:           aux.ID,
		DisplayNames: aux.DisplayNames,
		Attrs:        start.Attr,
		InnerXML:     aux.InnerXML,
	}
	return nil
}

func (c Channel) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	attrs := c.Attrs
	if len(attrs) == 0 {
		attrs = []xml.Attr{{Name: xml.Name{Local: "id"}, Value: c.ID}}
	}
	inner := c.InnerXML
	if len(inner) == 0 {
		inner = displayNamesXML(c.DisplayNames)
	}
	return e.EncodeElement(rawElement{InnerXML: inner}, xml.StartElement{
		Name: xml.Name{Local: "channel"},
		Attr: attrs,
	})
}

func (p *Programme) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var aux struct {
		Channel  string `xml:"channel,attr"`
		Start    string `xml:"start,attr"`
		Stop     string `xml:"stop,attr"`
		InnerXML []byte `xml:",innerxml"`
	}
	if err := d.DecodeElement(&aux, &start); err != nil {
		return err
	}

	*p = Programme{
		Channel:  aux.Channel,
		Start:    aux.Start,
		Stop:     aux.Stop,
		Attrs:    start.Attr,
		InnerXML: aux.InnerXML,
	}
	return nil
}

func (p Programme) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	attrs := p.Attrs
	if len(attrs) == 0 {
		attrs = []xml.Attr{
			{Name: xml.Name{Local: "start"}, Value: p.Start},
			{Name: xml.Name{Local: "stop"}, Value: p.Stop},
			{Name: xml.Name{Local: "channel"}, Value: p.Channel},
		}
	}
	return e.EncodeElement(rawElement{InnerXML: p.InnerXML}, xml.StartElement{
		Name: xml.Name{Local: "programme"},
		Attr: attrs,
	})
}

// displayNamesXML 为手动构造的频道生成display-name子元素
func displayNamesXML(names []string) []byte {
	var sb strings.Builder
	for _, name := range names {
		sb.WriteString("<display-name>")
		_ = xml.EscapeText(&sb, []byte(name))
		sb.WriteString("</display-name>")
	}
	return []byte(sb.String())
}

// Title 节目的第一个标题，没有则返回空字符串
func (p *Programme) Title() string {
	if len(p.InnerXML) == 0 {
		return ""
	}

	var aux struct {
		Titles []string `xml:"title"`
	}
	content := make([]byte, 0, len(p.InnerXML)+len("<programme></programme>"))
	content = append(content, "<programme>"...)
	content = append(content, p.InnerXML...)
	content = append(content, "</programme>"...)
	if err := xml.Unmarshal(content, &aux); err != nil || len(aux.Titles) == 0 {
		return ""
	}
	return aux.Titles[0]
}
