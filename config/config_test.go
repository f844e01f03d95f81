package config_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/dasguild/peerdas-kzg/config"
)

func TestLoadDefaults(t *testing.T) {
	c := qt.New(t)
	fs := config.FlagSet("peerdas-kzg")
	c.Assert(fs.Parse(nil), qt.IsNil)

	cfg, err := config.Load(fs)
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.TrustedSetup.Path, qt.Equals, "")
	c.Assert(cfg.TrustedSetup.CheckSubgroup, qt.IsFalse)
	c.Assert(cfg.Precompute.Width, qt.Equals, 8)
	c.Assert(cfg.Log.Level, qt.Equals, "info")
}

func TestLoadFlagsOverrideDefaults(t *testing.T) {
	c := qt.New(t)
	fs := config.FlagSet("peerdas-kzg")
	c.Assert(fs.Parse([]string{
		"--trustedsetup.path=/tmp/setup.json",
		"--trustedsetup.checkSubgroup",
		"--precompute.width=16",
		"--log.level=debug",
	}), qt.IsNil)

	cfg, err := config.Load(fs)
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.TrustedSetup.Path, qt.Equals, "/tmp/setup.json")
	c.Assert(cfg.TrustedSetup.CheckSubgroup, qt.IsTrue)
	c.Assert(cfg.Precompute.Width, qt.Equals, 16)
	c.Assert(cfg.Log.Level, qt.Equals, "debug")
}
