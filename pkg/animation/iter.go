package animation

import "iter"

// Once 依次产出配置的每一帧一次，可重复遍历，不影响动画状态
func (a *Animation) Once() iter.Seq[string] {
	frames := a.Frames()
	return func(yield func(string) bool) {
		for _, f := range frames {
			if !yield(f) {
				return
			}
		}
	}
}

// Seq 从动画当前的游标与迭代计数继续产出帧，直到 Finished；不会隐式 Reset，
// 需要完整的 maxIterations*Len 帧时先调用 Reset
// Unbounded 时不会自行结束，调用方需自行 break
func (a *Animation) Seq() iter.Seq[string] {
	return func(yield func(string) bool) {
		for !a.Finished() {
			frame, err := a.Next()
			if err != nil {
				return
			}
			if !yield(frame) {
				return
			}
		}
	}
}
