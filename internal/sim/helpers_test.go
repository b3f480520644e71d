package sim

import "testing"

// scriptedRand returns queued values in order, then the lower bound.
type scriptedRand struct {
	values []int
	calls  int
}

func (r *scriptedRand) IntBetween(lo, hi int) int {
	r.calls++
	if len(r.values) == 0 {
		return lo
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v
}

func newTestEngine(t *testing.T, values ...int) *Engine {
	t.Helper()
	params := DefaultParams()
	if err := params.Validate(); err != nil {
		t.Fatalf("DefaultParams() invalid: %v", err)
	}
	return NewEngine(params, &scriptedRand{values: values})
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s should panic", name)
		}
	}()
	fn()
}
