package walk

import (
	"fmt"
	"io"

	"github.com/ddddddO/gtree"
	"go.scnd.dev/open/stackwalk/command/stackwalk/app"
	"go.scnd.dev/open/stackwalk/core"
	"go.scnd.dev/open/stackwalk/package/span"
	"go.scnd.dev/open/stackwalk/package/walker"
)

type Command struct {
	Skip  int  `help:"Frames to skip above the command." default:"0"`
	Limit int  `help:"Maximum number of frames, 0 for all." default:"0"`
	Files bool `help:"Show file and line of each frame."`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

func Run(app *app.App, command *Command) error {
	// * load config
	config, err := app.Config()
	if err != nil {
		return err
	}

	// * construct walker
	inspector, err := core.NewWalker(config)
	if err != nil {
		return err
	}

	// * collect frames
	frames := make([]*walker.Frame, 0)
	for frame := range inspector.Frames(command.Skip) {
		if command.Limit > 0 && len(frames) >= command.Limit {
			break
		}
		frames = append(frames, frame)
	}

	return Print(app.Output, frames, command.Files)
}

// Print writes frames as a tree rooted at the outermost frame, each callee
// nested under its caller.
func Print(w io.Writer, frames []*walker.Frame, files bool) error {
	if len(frames) == 0 {
		return span.NewError(nil, "no frames", nil)
	}

	label := func(frame *walker.Frame) string {
		if files {
			return fmt.Sprintf("%s (%s:%d)", frame.Name, frame.File, frame.Line)
		}
		return frame.Name
	}

	root := gtree.NewRoot(label(frames[len(frames)-1]))
	node := root
	for i := len(frames) - 2; i >= 0; i-- {
		node = node.Add(label(frames[i]))
	}

	if err := gtree.OutputFromRoot(w, root); err != nil {
		return span.NewError(nil, "unable to print tree", err)
	}

	return nil
}
