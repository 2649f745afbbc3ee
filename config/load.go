package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const ENV_PREFIX string = "LENSENS"

// NewViper returns a viper instance reading LENSENS_* env vars. Values from a
// .env file in the working directory are exported first, existing env vars win.
func NewViper(configFile string) (*viper.Viper, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, errors.Wrap(err, "failed to load .env")
		}
	}

	v := viper.New()
	v.SetEnvPrefix(ENV_PREFIX)
	v.AutomaticEnv()
	for _, key := range []string{"network", "profile_url", "registry", "rpc"} {
		if err := v.BindEnv(key); err != nil {
			return nil, errors.Wrapf(err, "failed to bind env for %s", key)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", configFile)
		}
	}
	return v, nil
}

// Load collects Options from v. It does not validate them, New does.
func Load(v *viper.Viper) (Options, error) {
	opts := Options{}
	if err := v.Unmarshal(&opts); err != nil {
		return Options{}, errors.Wrap(err, "failed to decode options")
	}
	return opts, nil
}
