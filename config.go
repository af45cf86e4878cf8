package stackwalk

type Config struct {
	Naming                *string   `yaml:"naming,omitempty" validate:"omitempty,oneof=short package full"`
	Depth                 *int      `yaml:"depth,omitempty" validate:"omitempty,min=1,max=4096"`
	Runtime               *bool     `yaml:"runtime,omitempty"`
	Exclude               []*string `yaml:"exclude,omitempty" validate:"required"`
	AppName               *string   `yaml:"appName,omitempty"`
	AppVersion            *string   `yaml:"appVersion,omitempty"`
	AppNamespace          *string   `yaml:"appNamespace,omitempty"`
	AppInstanceId         *string   `yaml:"appInstanceId,omitempty"`
	TelemetryUrl          *string   `yaml:"telemetryUrl,omitempty" validate:"omitempty,hostname_port"`
	TelemetryOrganization *string   `yaml:"telemetryOrganization,omitempty"`
	WebListen             *string   `yaml:"webListen,omitempty"`
}

func (r *Config) GetWebListen() *string {
	return r.WebListen
}
