package wm

// Selection names the active (monitor, workspace slot) pair. The active
// workspace's current client is the one holding input focus.
type Selection struct {
	Monitor int
	Slot    int
}

// step moves i by delta within [0, n). A result outside the range wraps
// around when wrap is set and leaves i unchanged otherwise.
func step(i, delta, n int, wrap bool) int {
	if n <= 0 {
		return i
	}
	next := i + delta
	if next >= 0 && next < n {
		return next
	}
	if !wrap {
		return i
	}
	next %= n
	if next < 0 {
		next += n
	}
	return next
}
