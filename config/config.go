// Package config is for app wide parse settings that are unmarshalled
// from Viper (see: /internal/cmd)
package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config is the root-level settings struct, a mix of settings available
// in an optional refgenome.yaml and those given on the command line.
type Config struct {
	// characters besides whitespace and line ends that end a contig name
	Terminators string `mapstructure:"terminators"`

	// whether space and tab also end a contig name
	SpaceEndsName bool `mapstructure:"space-ends-name"`

	// the number of 'n' filler bases inserted around every contig
	Padding int `mapstructure:"padding"`

	// header tag holding the contig name; tag mode when non-empty
	Tag string `mapstructure:"tag"`

	// optional contig-name alias file (canonical name first per line)
	ChrMap string `mapstructure:"chrmap"`

	// optional alternate-locus map file (alt name TAB parent name)
	AltMap string `mapstructure:"altmap"`
}

// New returns a Config populated by Viper: flag bindings plus an
// optional refgenome.yaml in the working directory.
func New() (Config, error) {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "decode settings")
	}
	return c, nil
}
