package factory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/attendance-engine/factory"
	"github.com/warp/attendance-engine/timesheet"
)

func TestParseRuleConfig_Defaults(t *testing.T) {
	// Empty settings resolve to the engine's stock configuration.
	cfg, err := factory.ParseRuleConfig(factory.RuleSettings{})
	require.NoError(t, err)
	assert.Equal(t, timesheet.DefaultRuleConfig(), cfg)

	// DefaultSettings spells the same configuration out in raw form.
	cfg2, err := factory.ParseRuleConfig(factory.DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, timesheet.DefaultRuleConfig(), cfg2)
}

func TestParseRuleConfig_CustomValues(t *testing.T) {
	cfg, err := factory.ParseRuleConfig(factory.RuleSettings{
		LateMarkTime:    "10:30 AM",
		EarlyLeaveTime:  "18:00",
		MinFullDayHours: "7.5",
		GraceLateDays:   "2",
	})
	require.NoError(t, err)

	assert.Equal(t, 10*60+30, cfg.LateMarkMinutes)
	assert.Equal(t, 18*60, cfg.EarlyLeaveMinutes)
	assert.True(t, cfg.MinFullDayHours.Equal(decimal.RequireFromString("7.5")))
	assert.Equal(t, 2, cfg.GraceLateDays)
	assert.Equal(t, 3, cfg.CycleLength())
}

func TestParseRuleConfig_PartialOverride(t *testing.T) {
	cfg, err := factory.ParseRuleConfig(factory.RuleSettings{GraceLateDays: "5"})
	require.NoError(t, err)

	// Only the named field moves off the default.
	assert.Equal(t, 5, cfg.GraceLateDays)
	assert.Equal(t, 11*60, cfg.LateMarkMinutes)
	assert.True(t, cfg.MinFullDayHours.Equal(decimal.NewFromInt(7)))
}

func TestParseRuleConfig_MalformedFieldsAreErrors(t *testing.T) {
	// Settings are configuration, not timesheet cells: a bad value is
	// reported, never silently defaulted.
	cases := []struct {
		name     string
		settings factory.RuleSettings
	}{
		{"bad late time", factory.RuleSettings{LateMarkTime: "noon-ish"}},
		{"bad early time", factory.RuleSettings{EarlyLeaveTime: "evening"}},
		{"bad hours", factory.RuleSettings{MinFullDayHours: "seven"}},
		{"negative hours", factory.RuleSettings{MinFullDayHours: "-1"}},
		{"bad grace days", factory.RuleSettings{GraceLateDays: "3.5"}},
		{"negative grace days", factory.RuleSettings{GraceLateDays: "-2"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := factory.ParseRuleConfig(tc.settings)
			assert.Error(t, err)
		})
	}
}

func TestParseRuleConfig_WhitespaceTrimmed(t *testing.T) {
	cfg, err := factory.ParseRuleConfig(factory.RuleSettings{
		LateMarkTime:  "  11:30  ",
		GraceLateDays: " 4 ",
	})
	require.NoError(t, err)
	assert.Equal(t, 11*60+30, cfg.LateMarkMinutes)
	assert.Equal(t, 4, cfg.GraceLateDays)
}
