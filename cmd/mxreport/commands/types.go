package commands

import (
	"github.com/Dynom/mxreport/cmd/mxreport/config"
)

// RunSettings holds the flag values. Only flags that are set explicitly override the configuration.
type RunSettings struct {
	ConfigFile string
	Input      string
	Valid      string
	Invalid    string
	Workers    int
	Resolver   string
	Client     config.ClientType
	Timeout    config.Duration
	LogLevel   string
	LogFormat  config.LogFormat
}
