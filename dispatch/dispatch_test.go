package dispatch

import (
	"reflect"
	"testing"
)

func TestDispatchDeliversInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.Subscribe("ev", func(any) { got = append(got, "first") })
	d.Subscribe("ev", func(any) { got = append(got, "second") })

	d.Dispatch("ev", nil)

	want := []string{"first", "second"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestDispatchPayload(t *testing.T) {
	d := NewDispatcher()
	var got any
	d.Subscribe("ev", func(p any) { got = p })

	d.Dispatch("ev", 42)
	if got != 42 {
		t.Errorf("payload = %v, want 42", got)
	}
}

func TestDispatchUnknownEventIsNoop(t *testing.T) {
	d := NewDispatcher()
	d.Dispatch("nobody-listens", nil) // must not panic
}

func TestReentrantDispatchRunsAfterCurrentHandler(t *testing.T) {
	d := NewDispatcher()
	var got []string

	d.Subscribe("outer", func(any) {
		got = append(got, "outer-start")
		d.Dispatch("inner", nil)
		got = append(got, "outer-end")
	})
	d.Subscribe("inner", func(any) { got = append(got, "inner") })

	d.Dispatch("outer", nil)

	want := []string{"outer-start", "outer-end", "inner"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestReentrantDispatchDrainsFIFO(t *testing.T) {
	d := NewDispatcher()
	var got []string

	d.Subscribe("outer", func(any) {
		d.Dispatch("a", nil)
		d.Dispatch("b", nil)
	})
	d.Subscribe("a", func(any) { got = append(got, "a") })
	d.Subscribe("b", func(any) { got = append(got, "b") })

	d.Dispatch("outer", nil)

	want := []string{"a", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("drain order = %v, want %v", got, want)
	}
}
