package timer

import "time"

// Timer 记录开始时间和持续时间；没有开始时间表示未启动或已停止
type Timer struct {
	clock    Clock
	start    time.Time
	started  bool
	duration time.Duration
}

func New(clock Clock, duration time.Duration) *Timer {
	return &Timer{clock: clock, duration: duration}
}

// Start 重新记录开始时间，之前未到期的计时会被覆盖
func (t *Timer) Start() {
	t.start = t.clock.Now()
	t.started = true
}

// Restart 换一个持续时间并立即开始
func (t *Timer) Restart(duration time.Duration) {
	t.duration = duration
	t.Start()
}

func (t *Timer) Stop() {
	t.started = false
}

// IsRunning 当且仅当 now - start < duration
func (t *Timer) IsRunning() bool {
	if !t.started {
		return false
	}
	return t.clock.Now().Sub(t.start) < t.duration
}

func (t *Timer) Duration() time.Duration {
	return t.duration
}
