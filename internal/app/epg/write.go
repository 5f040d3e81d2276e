package epg

import (
	"io"

	"github.com/anilwee/epgLK/internal/app/xmltv"
	"github.com/anilwee/epgLK/internal/pkg/util"
)

// WriteFile 将EPG文档写入指定路径
func WriteFile(fPath string, doc *xmltv.Document) error {
	if fPath == "" {
		return ErrOutputIsEmpty
	}

	op, err := util.WriteFileAtomic(fPath, func(w io.Writer) error {
		return xmltv.Encode(w, doc)
	})
	if err != nil {
		return &IOError{Op: op, Path: fPath, Err: err}
	}
	return nil
}

// writeArchive 保存下载的原始压缩文件，每次运行都会覆盖
func writeArchive(fPath string, data []byte) error {
	op, err := util.WriteFileAtomic(fPath, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
	if err != nil {
		return &IOError{Op: op, Path: fPath, Err: err}
	}
	return nil
}
