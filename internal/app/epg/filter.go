package epg

import (
	"strings"

	"github.com/anilwee/epgLK/internal/app/xmltv"
)

// TargetSet 目标频道名称集合，已去除首尾空白并转为小写
type TargetSet map[string]struct{}

// NewTargetSet 规范化频道名称，重复的名称会被合并
func NewTargetSet(names []string) TargetSet {
	set := make(TargetSet, len(names))
	for _, name := range names {
		set[normalizeName(name)] = struct{}{}
	}
	return set
}

// Contains 判断显示名称是否匹配
func (s TargetSet) Contains(name string) bool {
	_, ok := s[normalizeName(name)]
	return ok
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SelectChannels 按文档顺序筛选显示名称命中的频道，并记录频道ID
func SelectChannels(doc *xmltv.Document, targets TargetSet) ([]xmltv.Channel, map[string]struct{}) {
	channels := make([]xmltv.Channel, 0)
	ids := make(map[string]struct{})
	if len(targets) == 0 {
		return channels, ids
	}

	for _, channel := range doc.Channels {
		if !matchChannel(channel, targets) {
			continue
		}
		channels = append(channels, channel)
		ids[channel.ID] = struct{}{}
	}
	return channels, ids
}

// matchChannel 没有display-name或名称为空的频道不匹配
func matchChannel(channel xmltv.Channel, targets TargetSet) bool {
	for _, name := range channel.DisplayNames {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if targets.Contains(name) {
			return true
		}
	}
	return false
}

// invalidTimeFunc 处理时间格式错误的节目，返回nil表示跳过该节目
type invalidTimeFunc func(programme *xmltv.Programme, err error) error

// SelectProgrammes 按文档顺序筛选属于已选频道、且与时间窗口有交集的节目。
// 任意节目的时间格式错误都会中止筛选。
func SelectProgrammes(doc *xmltv.Document, ids map[string]struct{}, window Window) ([]xmltv.Programme, error) {
	return selectProgrammes(doc, ids, window, nil)
}

func selectProgrammes(doc *xmltv.Document, ids map[string]struct{}, window Window, onInvalid invalidTimeFunc) ([]xmltv.Programme, error) {
	programmes := make([]xmltv.Programme, 0)
	for i := range doc.Programmes {
		programme := &doc.Programmes[i]
		if _, ok := ids[programme.Channel]; !ok {
			continue
		}

		overlaps, err := programmeOverlaps(programme, window)
		if err != nil {
			if onInvalid == nil {
				return nil, err
			}
			if err = onInvalid(programme, err); err != nil {
				return nil, err
			}
			continue
		}

		if overlaps {
			programmes = append(programmes, *programme)
		}
	}
	return programmes, nil
}

func programmeOverlaps(programme *xmltv.Programme, window Window) (bool, error) {
	start, err := programme.StartTime()
	if err != nil {
		return false, err
	}
	stop, err := programme.StopTime()
	if err != nil {
		return false, err
	}
	return window.Overlaps(start, stop), nil
}
