package config

import (
	"go.scnd.dev/open/stackwalk/command/stackwalk/app"
	"go.scnd.dev/open/stackwalk/package/span"
	"gopkg.in/yaml.v3"
)

type Command struct{}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

func Run(app *app.App, command *Command) error {
	config, err := app.Config()
	if err != nil {
		return err
	}

	encoder := yaml.NewEncoder(app.Output)
	encoder.SetIndent(2)
	if err := encoder.Encode(config); err != nil {
		return span.NewError(nil, "unable to encode configuration", err)
	}

	return encoder.Close()
}
