package swr

import (
	"testing"

	intcolor "github.com/swr-go/swr/internal/color"
)

func TestWithFormatSelectsFramebufferFormat(t *testing.T) {
	ctx := NewContext(4, 4, WithFormat(intcolor.BGRA8888))
	if got := ctx.framebuffer.Format().Format; got != intcolor.BGRA8888 {
		t.Errorf("framebuffer format = %v, want BGRA8888", got)
	}
}

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.format != intcolor.ARGB8888 {
		t.Errorf("default format = %v, want ARGB8888", o.format)
	}
	if o.workers != 0 {
		t.Errorf("default workers = %d, want 0 (GOMAXPROCS)", o.workers)
	}
}

func TestWithWorkersSetsPoolSize(t *testing.T) {
	ctx := NewContext(4, 4, WithWorkers(3))
	if got := ctx.taskPool.Workers(); got != 3 {
		t.Errorf("taskPool.Workers() = %d, want 3", got)
	}
}
