// Package walker inspects the call stack of the calling goroutine.
//
// An Inspector walks frames from the most recent call outward, skips a
// number of leading frames, optionally filters the rest with a Predicate
// and reports the first survivor. Frames are resolved lazily and only as
// far as needed.
package walker

import (
	"iter"
	"runtime"
	"strings"
)

const DefaultDepth = 32

// Default is used by code that has no inspector of its own.
var Default = New()

type Inspector struct {
	naming  Naming
	depth   int
	runtime bool
	exclude []string
}

func New(options ...Option) *Inspector {
	inspector := &Inspector{
		naming:  NamingShort,
		depth:   DefaultDepth,
		runtime: false,
		exclude: nil,
	}
	for _, option := range options {
		option(inspector)
	}

	return inspector
}

// FunctionName returns the name of the first frame that survives skipping
// and filtering. Skip 0 is the caller of FunctionName.
func (r *Inspector) FunctionName(skip int, predicate Predicate) (string, bool) {
	frame, ok := r.first(r.walk(skip), predicate)
	if !ok {
		return "", false
	}

	return frame.Name, true
}

// Frame is FunctionName returning the whole frame.
func (r *Inspector) Frame(skip int, predicate Predicate) (*Frame, bool) {
	return r.first(r.walk(skip), predicate)
}

// Frames returns the walk from the caller of Frames with skip frames dropped.
// The stack is captured when Frames is called, not when it is ranged over.
func (r *Inspector) Frames(skip int) iter.Seq[*Frame] {
	return r.walk(skip)
}

// Names lists up to limit rendered names; limit <= 0 lists all of them.
func (r *Inspector) Names(skip int, limit int) []string {
	names := make([]string, 0)
	for frame := range r.walk(skip) {
		if limit > 0 && len(names) >= limit {
			break
		}
		names = append(names, frame.Name)
	}

	return names
}

func (r *Inspector) Render(function string) string {
	return Render(function, r.naming)
}

func (r *Inspector) Naming() Naming {
	return r.naming
}

func (r *Inspector) first(frames iter.Seq[*Frame], predicate Predicate) (*Frame, bool) {
	for frame := range frames {
		if predicate.Accept(frame.Name) {
			return frame, true
		}
	}

	return nil, false
}

// walk must be called directly by the exported method whose caller is the
// first frame of the walk.
func (r *Inspector) walk(skip int) iter.Seq[*Frame] {
	pcs := r.callers(2)

	return func(yield func(*Frame) bool) {
		remaining := max(skip, 0)
		if len(pcs) == 0 {
			return
		}

		frames := runtime.CallersFrames(pcs)
		for {
			f, more := frames.Next()
			f.Function = Unescape(f.Function)
			if f.Function != "" && r.visible(f.Function) {
				if remaining > 0 {
					remaining--
				} else if !yield(r.frame(f)) {
					return
				}
			}
			if !more {
				return
			}
		}
	}
}

// callers records program counters starting skip frames above its caller.
func (r *Inspector) callers(skip int) []uintptr {
	size := r.depth
	for {
		pcs := make([]uintptr, size)
		n := runtime.Callers(skip+2, pcs)
		if n < size {
			return pcs[:n]
		}
		size *= 2
	}
}

func (r *Inspector) visible(function string) bool {
	if !r.runtime && strings.HasPrefix(function, "runtime.") {
		return false
	}
	for _, prefix := range r.exclude {
		if strings.HasPrefix(function, prefix) {
			return false
		}
	}

	return true
}

func (r *Inspector) frame(f runtime.Frame) *Frame {
	return &Frame{
		Name:     Render(f.Function, r.naming),
		Function: f.Function,
		File:     f.File,
		Line:     f.Line,
		Entry:    f.Entry,
	}
}

// FunctionName walks the calling goroutine with Default. Skip 0 is the
// caller of FunctionName.
func FunctionName(skip int, predicate Predicate) (string, bool) {
	return Default.FunctionName(skip+1, predicate)
}
