package xmltv

import (
	"regexp"
	"strings"
	"time"
)

// TimeLayout XMLTV时间格式，例如：20241122205700
const TimeLayout = "20060102150405"

var timeRegex = regexp.MustCompile(`^[0-9]{14}$`)

// ParseTime 解析XMLTV的时间属性。
// 只取第一个空格之前的部分，时区偏移被忽略，结果按UTC解释。
func ParseTime(attr, value string) (time.Time, error) {
	s, _, _ := strings.Cut(value, " ")
	if !timeRegex.MatchString(s) {
		return time.Time{}, &TimestampFormatError{Attr: attr, Value: value}
	}

	t, err := time.ParseInLocation(TimeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, &TimestampFormatError{Attr: attr, Value: value, Err: err}
	}
	return t, nil
}

// FormatTime 格式化为带UTC偏移的XMLTV时间
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout + " -0700")
}
