package timer

import (
	"sort"
	"time"
)

// EventID 标识一个延迟事件
type EventID int

type schedule struct {
	interval time.Duration
	due      time.Time
}

// Events 是延迟/周期事件设施：Set(id, d) 在 d 之后投递 id，之后每隔 d 再投递一次，
// 直到用 d=0 取消。同一个 id 再次 Set 会覆盖之前的安排。
type Events struct {
	clock     Clock
	schedules map[EventID]schedule
}

func NewEvents(clock Clock) *Events {
	return &Events{clock: clock, schedules: make(map[EventID]schedule)}
}

func (e *Events) Set(id EventID, d time.Duration) {
	if d <= 0 {
		delete(e.schedules, id)
		return
	}
	e.schedules[id] = schedule{interval: d, due: e.clock.Now().Add(d)}
}

// Armed reports whether id is scheduled
func (e *Events) Armed(id EventID) bool {
	_, ok := e.schedules[id]
	return ok
}

// Poll 返回本帧已到期的事件 (按 id 排序)，每个 id 每帧最多出现一次
func (e *Events) Poll() []EventID {
	now := e.clock.Now()
	var fired []EventID
	for id, s := range e.schedules {
		if now.Before(s.due) {
			continue
		}
		fired = append(fired, id)
		// 周期事件：跳过已经错过的周期
		for !now.Before(s.due) {
			s.due = s.due.Add(s.interval)
		}
		e.schedules[id] = s
	}
	sort.Slice(fired, func(i, j int) bool { return fired[i] < fired[j] })
	return fired
}

// Fired reports whether id is in the batch returned by Poll
func Fired(batch []EventID, id EventID) bool {
	for _, f := range batch {
		if f == id {
			return true
		}
	}
	return false
}
