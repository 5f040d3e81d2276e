package epg

import (
	"time"
	// 路由器等精简系统上可能没有时区数据库
	_ "time/tzdata"
)

const (
	DefaultTimezone = "Pacific/Auckland"

	windowSpan = 24 * time.Hour
)

// Window 闭区间 [Start, End]，均为UTC时间
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow 以指定时区的当前时间为起点，计算之后24小时的时间窗口
func NewWindow(now time.Time, loc *time.Location) Window {
	start := now.In(loc)
	end := start.Add(windowSpan)
	return Window{
		Start: start.UTC(),
		End:   end.UTC(),
	}
}

// Overlaps 节目区间 [start, stop] 是否与窗口有交集，两端均包含
func (w Window) Overlaps(start, stop time.Time) bool {
	return !w.Start.After(stop) && !start.After(w.End)
}

// LoadLocation 加载时区，空字符串使用缺省时区
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimezone
	}
	return time.LoadLocation(name)
}
