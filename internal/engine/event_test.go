package engine

import "testing"

func TestEventWithArgInvokesInOrder(t *testing.T) {
	var e EventWithArg[int]
	var got []int

	e.AddListener(func(v int) { got = append(got, v) })
	e.AddListener(func(v int) { got = append(got, v*10) })
	e.Invoke(3)

	if len(got) != 2 || got[0] != 3 || got[1] != 30 {
		t.Errorf("Expected [3 30], got %v", got)
	}
}

func TestRemoveListener(t *testing.T) {
	var e EventWithArg[string]
	calls := 0

	id := e.AddListener(func(string) { calls++ })
	e.AddListener(func(string) { calls += 10 })
	e.RemoveListener(id)
	e.Invoke("x")

	if calls != 10 {
		t.Errorf("Removed listener still ran: calls=%d", calls)
	}
	if e.ListenerCount() != 1 {
		t.Errorf("Expected 1 listener, got %d", e.ListenerCount())
	}
}

func TestNilListenerIgnored(t *testing.T) {
	var e EventWithArg[bool]
	if id := e.AddListener(nil); id != 0 {
		t.Errorf("Nil listener should not subscribe, got id %d", id)
	}
	if e.ListenerCount() != 0 {
		t.Error("Nil listener was stored")
	}
}

func TestListenerAddedDuringInvoke(t *testing.T) {
	var e EventWithArg[int]
	late := 0
	e.AddListener(func(int) {
		e.AddListener(func(v int) { late += v })
	})

	e.Invoke(1)
	if late != 0 {
		t.Error("Listener added during Invoke ran in the same call")
	}
	e.Invoke(1)
	if late != 1 {
		t.Errorf("Expected late listener to run once, ran %d times", late)
	}
}
