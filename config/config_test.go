// Package config is for app wide parse settings that are unmarshalled
// from Viper (see: /internal/cmd)
package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestNew(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("terminators", "|")
	viper.Set("space-ends-name", true)
	viper.Set("padding", 100)
	viper.Set("tag", "ref")
	viper.Set("chrmap", "chrmap.tsv")

	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if c.Terminators != "|" || !c.SpaceEndsName || c.Padding != 100 {
		t.Fatalf("unexpected config: %+v", c)
	}
	if c.Tag != "ref" || c.ChrMap != "chrmap.tsv" || c.AltMap != "" {
		t.Fatalf("unexpected config: %+v", c)
	}
}

func TestNewEmpty(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c != (Config{}) {
		t.Fatalf("expected zero config, got %+v", c)
	}
}
