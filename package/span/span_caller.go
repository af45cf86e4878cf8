package span

import (
	"fmt"
	"strings"

	"go.scnd.dev/open/stackwalk"
	"go.scnd.dev/open/stackwalk/package/walker"
)

const packagePrefix = "go.scnd.dev/open/stackwalk/package/span."

type Caller struct {
	Name *string `json:"name"`
	Line *int    `json:"line"`
}

func (r *Caller) String() string {
	return fmt.Sprintf("%s:%d", *r.Name, *r.Line)
}

// NewCaller reports the function that called NewCaller, or skip frames above
// it. A nil walker uses walker.Default.
func NewCaller(w stackwalk.Walker, skip int) *Caller {
	if w == nil {
		w = walker.Default
	}

	frame, ok := w.Frame(skip+1, nil)
	return newCaller(frame, ok)
}

// OuterCaller reports the first frame outside this package.
func OuterCaller(w stackwalk.Walker) *Caller {
	if w == nil {
		w = walker.Default
	}

	// * find outer package caller
	for frame := range w.Frames(0) {
		if !strings.HasPrefix(frame.Function, packagePrefix) {
			return newCaller(frame, true)
		}
	}

	return newCaller(nil, false)
}

func newCaller(frame *walker.Frame, ok bool) *Caller {
	if !ok {
		name := "unknown"
		line := 0
		return &Caller{
			Name: &name,
			Line: &line,
		}
	}

	name := walker.Render(frame.Function, walker.NamingPackage)
	line := frame.Line
	return &Caller{
		Name: &name,
		Line: &line,
	}
}
