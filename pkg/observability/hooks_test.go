package observability

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	r := NoopRenderHooks{}
	r.OnChartStart(ctx, "summary_pre_vs_post_visual", "grouped_bar")
	r.OnChartComplete(ctx, "summary_pre_vs_post_visual", "grouped_bar", 1024, time.Second, nil)

	o := NoopOutputHooks{}
	o.OnWrite(ctx, "plots/summary_pre_vs_post_visual.png", 1024, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}
	if _, ok := Output().(NoopOutputHooks); !ok {
		t.Error("Output() should return NoopOutputHooks by default")
	}

	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	customOutput := &testOutputHooks{}
	SetOutputHooks(customOutput)
	if Output() != customOutput {
		t.Error("SetOutputHooks should set custom hooks")
	}

	Reset()
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Reset() should restore NoopRenderHooks")
	}
	if _, ok := Output().(NoopOutputHooks); !ok {
		t.Error("Reset() should restore NoopOutputHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testRenderHooks{}
	SetRenderHooks(custom)
	SetRenderHooks(nil)
	if Render() != custom {
		t.Error("SetRenderHooks(nil) should keep the registered hooks")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	h := &testRenderHooks{}
	SetRenderHooks(h)

	ctx := context.Background()
	failure := errors.New("boom")
	Render().OnChartStart(ctx, "a", "line")
	Render().OnChartComplete(ctx, "a", "line", 0, time.Millisecond, failure)

	if h.starts != 1 || h.completes != 1 {
		t.Errorf("starts=%d completes=%d, want 1 and 1", h.starts, h.completes)
	}
	if h.lastErr != failure {
		t.Errorf("lastErr = %v, want %v", h.lastErr, failure)
	}
}

func TestConcurrentAccess(t *testing.T) {
	Reset()
	defer Reset()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetRenderHooks(&testRenderHooks{})
		}()
		go func() {
			defer wg.Done()
			_ = Render()
		}()
	}
	wg.Wait()
}

type testRenderHooks struct {
	starts, completes int
	lastErr           error
}

func (h *testRenderHooks) OnChartStart(context.Context, string, string) { h.starts++ }
func (h *testRenderHooks) OnChartComplete(_ context.Context, _, _ string, _ int, _ time.Duration, err error) {
	h.completes++
	h.lastErr = err
}

type testOutputHooks struct{}

func (testOutputHooks) OnWrite(context.Context, string, int, error) {}
