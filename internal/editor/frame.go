package editor

import "github.com/dshills/blockdown/internal/block"

// scheduleFocus queues a focus move into the block's element for the
// next frame. The element is resolved at run time, not capture time,
// so an intervening re-render cannot leave the task pointing at a
// stale element. No data-model state depends on the task running.
func (e *Editor) scheduleFocus(b *block.Block) {
	e.Schedule(func() {
		if el := e.ElementFor(b); el != nil {
			el.Fire("focus")
		}
	})
}

// Schedule queues a zero-argument task to run after the current
// synchronous mutation commits. Tasks must not be load-bearing for any
// sequence or binding invariant.
func (e *Editor) Schedule(task func()) {
	if task == nil {
		return
	}
	e.frame = append(e.frame, task)
}

// FlushFrame runs and clears every queued task. The surface calls this
// once per paint; tests call it directly.
func (e *Editor) FlushFrame() {
	tasks := e.frame
	e.frame = nil
	for _, task := range tasks {
		task()
	}
}
