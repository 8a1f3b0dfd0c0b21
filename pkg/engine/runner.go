package engine

import (
	"time"
)

// TickRunner 周期性时钟节拍任务。每场直播比赛一个，独立于用户命令，
// 但每次节拍都经过引擎的互斥锁，节拍不会与阶段转换交错:
// 终场哨后到达的节拍在 Tick 内被丢弃。
type TickRunner struct {
	engine   *Engine
	interval time.Duration
	onTick   func()
	stop     chan struct{}
	done     chan struct{}
}

// NewTickRunner 创建节拍任务。onTick 在每次节拍后调用 (可为 nil)，
// 用于向直播视图推送最新时钟。
func NewTickRunner(e *Engine, interval time.Duration, onTick func()) *TickRunner {
	return &TickRunner{
		engine:   e,
		interval: interval,
		onTick:   onTick,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Run 阻塞运行直到 Stop 被调用。通常放在 goroutine 中。
func (r *TickRunner) Run() {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.engine.Tick()
			if r.onTick != nil {
				r.onTick()
			}
		}
	}
}

// Stop 取消节拍任务并等待退出。离开直播视图后不留任何后台工作。
func (r *TickRunner) Stop() {
	select {
	case <-r.stop:
		// 已停止
	default:
		close(r.stop)
	}
	<-r.done
}
