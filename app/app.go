package app

import (
	runtime "github.com/banzaicloud/logrus-runtime-formatter"
	"github.com/metal-toolbox/cookiejar/pkg/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// App holds attributes for running the cookiejar tooling
type App struct {
	// Viper loads configuration parameters.
	v *viper.Viper
	// App configuration.
	Config *Configuration
	// Logger is the app logger, it doubles as the diagnostic channel for
	// contained cookie store failures.
	Logger *logrus.Logger
	// Kind is the type of application - cookiejar
	Kind types.AppKind
}

// New returns a new cookiejar application object with the configuration loaded
func New(appKind types.AppKind, storeKind types.StoreKind, cfgFile, logLevel string) (*App, error) {
	if appKind != types.AppKindCookieJar {
		return nil, errors.Wrap(ErrConfig, "unexpected app kind: "+string(appKind))
	}

	app := &App{
		v:      viper.New(),
		Kind:   appKind,
		Config: &Configuration{},
		Logger: logrus.New(),
	}

	if err := app.LoadConfiguration(cfgFile); err != nil {
		return nil, err
	}

	// flags take precedence over file and env configuration
	if storeKind != "" {
		app.Config.StoreKind = storeKind
	}

	if logLevel != "" {
		app.Config.LogLevel = logLevel
	}

	if err := app.Config.validate(); err != nil {
		return nil, err
	}

	if err := app.setupLogger(); err != nil {
		return nil, err
	}

	return app, nil
}

// Settings returns the effective configuration as a nested map.
func (a *App) Settings() map[string]interface{} {
	settings := a.v.AllSettings()
	settings["store_kind"] = string(a.Config.StoreKind)
	settings["log_level"] = a.Config.LogLevel

	if nats, ok := settings["nats"].(map[string]interface{}); ok {
		if pass, _ := nats["stream_pass"].(string); pass != "" {
			nats["stream_pass"] = "[redacted]"
		}
	}

	return settings
}

func (a *App) setupLogger() error {
	level, err := logrus.ParseLevel(a.Config.LogLevel)
	if err != nil {
		return errors.Wrap(ErrConfig, err.Error())
	}

	a.Logger.SetLevel(level)

	var child logrus.Formatter = &logrus.TextFormatter{}
	if a.Config.LogFormat == "json" {
		child = &logrus.JSONFormatter{}
	}

	a.Logger.SetFormatter(&runtime.Formatter{
		ChildFormatter: child,
		File:           true,
		Line:           true,
		BaseNameOnly:   true,
	})

	return nil
}
