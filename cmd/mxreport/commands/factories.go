package commands

import (
	"fmt"
	"io"

	"github.com/Dynom/mxreport/cmd/mxreport/config"
	"github.com/Dynom/mxreport/resolver"
	"github.com/Dynom/mxreport/validator"
	"github.com/sirupsen/logrus"
)

func newResolver(conf config.Config) (validator.LookupMX, error) {
	switch conf.Resolver.Client {
	case config.CTSystem, "":
		return resolver.NewSystem(conf.Resolver.Address), nil

	case config.CTDirect:
		r, err := resolver.NewDirect(conf.Resolver.Address, conf.Resolver.Timeout.AsDuration())
		if err != nil {
			return nil, fmt.Errorf("unable to create the direct DNS client, reason: %w", err)
		}

		return r, nil
	}

	return nil, fmt.Errorf("unsupported resolver client %q", conf.Resolver.Client)
}

func newLogger(conf config.Config, out io.Writer) (*logrus.Logger, error) {
	var err error

	logger := logrus.New()
	logger.Out = out

	switch conf.Log.Format {
	case config.LFJSON:
		logger.Formatter = &logrus.JSONFormatter{}
	default:
		logger.Formatter = &logrus.TextFormatter{
			FullTimestamp: true,
		}
	}

	logger.Level, err = logrus.ParseLevel(conf.Log.Level)
	if err != nil {
		return nil, err
	}

	return logger, nil
}
