package config

import (
	"testing"

	"github.com/san-kum/ferrosim/internal/ferro"
)

func TestPreset_KnownTags(t *testing.T) {
	for _, tag := range []string{"general", "sensor", "actuator", "memory", "energy_harvesting"} {
		cfg := Preset(tag)
		if cfg == nil {
			t.Fatalf("preset %s returned nil", tag)
		}
		if cfg.Coupling <= 0 {
			t.Errorf("preset %s has non-positive coupling", tag)
		}
	}
}

func TestPreset_UnknownFallsBackToGeneral(t *testing.T) {
	unknown := Preset("does-not-exist")
	general := Preset("general")

	if *unknown != *general {
		t.Errorf("unknown tag should return the general configuration, got %+v", unknown)
	}
}

func TestPreset_ReturnsClone(t *testing.T) {
	a := Preset("sensor")
	a.Coupling = 99.0

	b := Preset("sensor")
	if b.Coupling == 99.0 {
		t.Error("mutating a returned preset leaked into the table")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != 5 {
		t.Fatalf("expected 5 presets, got %d: %v", len(names), names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Error("preset names should be sorted")
		}
	}
}

func TestFromPreset(t *testing.T) {
	mat, err := FromPreset("memory", nil)
	if err != nil {
		t.Fatal(err)
	}
	if mat.Polarization() != Presets["memory"].InitPolarization {
		t.Error("material state not taken from preset")
	}
}

func TestFromPreset_CustomizePrivateCopy(t *testing.T) {
	mat, err := FromPreset("general", func(c *ferro.Config) {
		c.Coupling = 4e-8
	})
	if err != nil {
		t.Fatal(err)
	}

	if mat.Coupling() != 4e-8 {
		t.Errorf("customization not applied: coupling = %g", mat.Coupling())
	}
	if Presets["general"].Coupling == 4e-8 {
		t.Error("customization leaked into the preset table")
	}
}
