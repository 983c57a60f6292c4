// Package config provides YAML-based world tuning and preset management
// for the game.
package config

// WorldConfig contains all tunable constants for the simulation.
// The defaults reproduce the reference balance; every value can be
// overridden from a YAML file.
type WorldConfig struct {
	World     WorldSize     `yaml:"world"`
	Player    PlayerTuning  `yaml:"player"`
	Items     ItemTuning    `yaml:"items"`
	Workbench BenchTuning   `yaml:"workbench"`
	Trade     TradeTuning   `yaml:"trade"`
	Storm     StormTuning   `yaml:"storm"`
	Day       DayTuning     `yaml:"day"`
	Effects   EffectsTuning `yaml:"effects"`
}

// WorldSize defines the world bounds and generation density.
type WorldSize struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	EdgeMargin  float64 `yaml:"edge_margin"`  // Spawn margin from world edges
	CenterClear float64 `yaml:"center_clear"` // Half-size of the no-spawn square at center
	DecorCount  int     `yaml:"decor_count"`
}

// PlayerTuning defines movement parameters.
type PlayerTuning struct {
	Speed       float64 `yaml:"speed"`        // World px/s
	CameraBlend float64 `yaml:"camera_blend"` // Lerp factor per frame
	WalkRate    float64 `yaml:"walk_rate"`    // Walk-cycle phase per second of movement
}

// ItemTuning defines the scavenge item lifecycle.
type ItemTuning struct {
	Count         int     `yaml:"count"`
	PickupRadius  float64 `yaml:"pickup_radius"`
	RespawnMin    float64 `yaml:"respawn_min"`    // Seconds
	RespawnJitter float64 `yaml:"respawn_jitter"` // Added uniform seconds
	ConditionMin  float64 `yaml:"condition_min"`
	ConditionSpan float64 `yaml:"condition_span"`
	BaseCapacity  int     `yaml:"base_capacity"`
	FullMsgTime   float64 `yaml:"full_msg_time"` // Inventory-full banner seconds
}

// BenchTuning defines the workbench repair interaction.
type BenchTuning struct {
	Radius        float64 `yaml:"radius"`
	RepairTime    float64 `yaml:"repair_time"`
	BaseBonus     float64 `yaml:"base_bonus"`
	UpgradedBonus float64 `yaml:"upgraded_bonus"`
	MatchBonus    float64 `yaml:"match_bonus"` // Extra when categories match
	FlashTime     float64 `yaml:"flash_time"`
}

// TradeTuning defines the gate economy.
type TradeTuning struct {
	Radius           float64 `yaml:"radius"`
	TradeableMin     float64 `yaml:"tradeable_min"` // Minimum condition to sell
	LogBaseCost      int     `yaml:"log_base_cost"`
	LogCount         int     `yaml:"log_count"`
	ToolCost         int     `yaml:"tool_cost"`
	CapacityCost     int     `yaml:"capacity_cost"`
	UpgradedCapacity int     `yaml:"upgraded_capacity"`
	TokenAnimTime    float64 `yaml:"token_anim_time"`
}

// StormTuning defines the sandstorm cycle.
type StormTuning struct {
	Enabled     bool    `yaml:"enabled"`
	CalmMin     float64 `yaml:"calm_min"`
	CalmMax     float64 `yaml:"calm_max"`
	BuildTime   float64 `yaml:"build_time"`
	ActiveMin   float64 `yaml:"active_min"`
	ActiveMax   float64 `yaml:"active_max"`
	FadeTime    float64 `yaml:"fade_time"`
	SpeedFactor float64 `yaml:"speed_factor"` // Player speed multiplier while active
}

// DayTuning defines the day/night cycle.
type DayTuning struct {
	Length     float64 `yaml:"length"`      // Full day in seconds
	NightAfter float64 `yaml:"night_after"` // Phase above which it is night
	NightUntil float64 `yaml:"night_until"` // Phase below which it is still night
}

// EffectsTuning defines ambient effect spawn rules.
type EffectsTuning struct {
	FootprintSpacing float64 `yaml:"footprint_spacing"` // World px between footprints
	FootprintLife    float64 `yaml:"footprint_life"`
	DustInterval     float64 `yaml:"dust_interval"`
	DustLife         float64 `yaml:"dust_life"`
	WindMin          float64 `yaml:"wind_min"` // Seconds between wind lines
	WindMax          float64 `yaml:"wind_max"`
	WindLife         float64 `yaml:"wind_life"`
	ShimmerLife      float64 `yaml:"shimmer_life"`
}

// Preset represents a named balance preset.
type Preset string

const (
	PresetMild   Preset = "mild"   // Longer calms, gentler storms
	PresetNormal Preset = "normal" // Reference balance
	PresetHarsh  Preset = "harsh"  // Short calms, slower storm movement
)

// ApplyPreset adjusts storm pacing for a named preset. Unknown presets
// (including the empty string) leave the config untouched.
func ApplyPreset(cfg *WorldConfig, preset Preset) {
	switch preset {
	case PresetMild:
		cfg.Storm.CalmMin = 120
		cfg.Storm.CalmMax = 240
		cfg.Storm.SpeedFactor = 0.8
	case PresetHarsh:
		cfg.Storm.CalmMin = 30
		cfg.Storm.CalmMax = 75
		cfg.Storm.ActiveMin = 30
		cfg.Storm.ActiveMax = 45
		cfg.Storm.SpeedFactor = 0.6
	}
}
