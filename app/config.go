package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/metal-toolbox/cookiejar/pkg/types"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.hollow.sh/toolbox/events"
)

var (
	ErrConfig = errors.New("configuration error")
)

// Configuration holds the application configuration, loaded from a YAML file
// and COOKIEJAR_ prefixed environment variables.
type Configuration struct {
	// LogLevel is one of the logrus level names.
	LogLevel string `mapstructure:"log_level"`

	// LogFormat is either "text" or "json".
	LogFormat string `mapstructure:"log_format"`

	// StoreKind selects the ambient cookie store.
	StoreKind types.StoreKind `mapstructure:"store_kind"`

	FileOptions *FileOptions `mapstructure:"file"`

	// NatsOptions are the toolbox event stream options, filled in from the
	// nats.* keys by loadNatsOptions.
	NatsOptions *events.NatsOptions `mapstructure:"-"`

	// KVOptions selects the bucket and key within the NATS KV store, decoded
	// from the same nats.* keys.
	KVOptions *KVOptions `mapstructure:"nats"`
}

// FileOptions configures the file backed store.
type FileOptions struct {
	Path string `mapstructure:"path"`
}

// KVOptions configures the NATS key/value backed store.
type KVOptions struct {
	Bucket   string `mapstructure:"bucket"`
	Key      string `mapstructure:"key"`
	Replicas int    `mapstructure:"replicas"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("store_kind", string(types.StoreKindFile))
	v.SetDefault("file.path", defaultFilePath())
	v.SetDefault("nats.url", "nats://127.0.0.1:4222")
	v.SetDefault("nats.app_name", string(types.AppKindCookieJar))
	v.SetDefault("nats.creds_file", "")
	v.SetDefault("nats.stream_user", "")
	v.SetDefault("nats.stream_pass", "")
	v.SetDefault("nats.bucket", "cookiejar")
	v.SetDefault("nats.key", "cookies")
	v.SetDefault("nats.replicas", 1)
	v.SetDefault("nats.connect_timeout", "5s")
}

func defaultFilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "cookies.txt"
	}

	return filepath.Join(dir, "cookiejar", "cookies.txt")
}

// LoadConfiguration reads the config file, when given, and the environment
// into cfg.
func (a *App) LoadConfiguration(cfgFile string) error {
	a.v.SetConfigType("yaml")
	a.v.SetEnvPrefix(string(types.AppKindCookieJar))
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	setDefaults(a.v)

	if cfgFile != "" {
		a.v.SetConfigFile(cfgFile)

		if err := a.v.ReadInConfig(); err != nil {
			return errors.Wrap(ErrConfig, "reading config file "+cfgFile+": "+err.Error())
		}
	}

	decodeHook := viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)

	if err := a.v.Unmarshal(a.Config, decodeHook); err != nil {
		return errors.Wrap(ErrConfig, err.Error())
	}

	a.loadNatsOptions()

	return nil
}

// loadNatsOptions sets the event stream options field by field from the
// nats.* keys.
func (a *App) loadNatsOptions() {
	a.Config.NatsOptions = &events.NatsOptions{
		URL:            a.v.GetString("nats.url"),
		AppName:        a.v.GetString("nats.app_name"),
		CredsFile:      a.v.GetString("nats.creds_file"),
		StreamUser:     a.v.GetString("nats.stream_user"),
		StreamPass:     a.v.GetString("nats.stream_pass"),
		ConnectTimeout: a.v.GetDuration("nats.connect_timeout"),
	}
}

func (c *Configuration) validate() error {
	if !c.StoreKind.Valid() {
		return errors.Wrap(ErrConfig, "unknown store kind: "+string(c.StoreKind))
	}

	switch c.StoreKind {
	case types.StoreKindFile:
		if c.FileOptions == nil || c.FileOptions.Path == "" {
			return errors.Wrap(ErrConfig, "file store requires file.path")
		}

	case types.StoreKindNats:
		if c.NatsOptions == nil || c.NatsOptions.URL == "" {
			return errors.Wrap(ErrConfig, "nats store requires nats.url")
		}

		if c.NatsOptions.CredsFile == "" && c.NatsOptions.StreamUser == "" {
			return errors.Wrap(ErrConfig, "nats store requires nats.creds_file or nats.stream_user")
		}

		if c.KVOptions == nil || c.KVOptions.Bucket == "" || c.KVOptions.Key == "" {
			return errors.Wrap(ErrConfig, "nats store requires nats.bucket and nats.key")
		}
	}

	return nil
}
