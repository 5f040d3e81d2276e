package xmltv

import (
	"encoding/xml"
	"io"
)

// Encode 写入xml头和EPG文档，UTF-8编码
func Encode(w io.Writer, doc *Document) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return err
	}
	if err := encoder.Close(); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")
	return err
}
