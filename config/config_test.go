package config_test

import (
	"testing"

	"github.com/TimothyAndrewChowles/Mortgage-Backed-Security/config"
)

func TestDefaults(t *testing.T) {
	c := config.GetConfig()
	if c.Epsilon != config.Epsilon {
		t.Fatalf("default Epsilon mismatch: got %v want %v", c.Epsilon, config.Epsilon)
	}
	if c.HorizonMonths != 360 {
		t.Fatalf("default HorizonMonths mismatch: got %d want 360", c.HorizonMonths)
	}
}

func TestSetConfig_RoundTrips(t *testing.T) {
	defer config.SetConfig(config.DefaultConfig)

	config.SetConfig(config.Config{Epsilon: 1e-6, HorizonMonths: 120})

	c := config.GetConfig()
	if c.Epsilon != 1e-6 {
		t.Fatalf("Epsilon not applied: got %v", c.Epsilon)
	}
	if c.HorizonMonths != 120 {
		t.Fatalf("HorizonMonths not applied: got %d", c.HorizonMonths)
	}
}
