package config

import (
	_ "embed"
)

//go:embed defaults/world.yaml
var defaultWorldYAML []byte

// DefaultWorldConfig returns the reference world configuration.
// Kept in sync with defaults/world.yaml; used as the last-resort fallback
// if the embedded YAML fails to parse.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{
		World: WorldSize{
			Width:       4000,
			Height:      4000,
			EdgeMargin:  100,
			CenterClear: 200,
			DecorCount:  140,
		},
		Player: PlayerTuning{
			Speed:       175,
			CameraBlend: 0.1,
			WalkRate:    10,
		},
		Items: ItemTuning{
			Count:         18,
			PickupRadius:  50,
			RespawnMin:    60,
			RespawnJitter: 30,
			ConditionMin:  0.3,
			ConditionSpan: 0.6,
			BaseCapacity:  8,
			FullMsgTime:   2,
		},
		Workbench: BenchTuning{
			Radius:        60,
			RepairTime:    2,
			BaseBonus:     0.2,
			UpgradedBonus: 0.25,
			MatchBonus:    0.1,
			FlashTime:     0.4,
		},
		Trade: TradeTuning{
			Radius:           70,
			TradeableMin:     0.8,
			LogBaseCost:      2,
			LogCount:         5,
			ToolCost:         3,
			CapacityCost:     4,
			UpgradedCapacity: 10,
			TokenAnimTime:    1,
		},
		Storm: StormTuning{
			Enabled:     true,
			CalmMin:     60,
			CalmMax:     120,
			BuildTime:   5,
			ActiveMin:   20,
			ActiveMax:   30,
			FadeTime:    5,
			SpeedFactor: 0.7,
		},
		Day: DayTuning{
			Length:     180,
			NightAfter: 0.75,
			NightUntil: 0.05,
		},
		Effects: EffectsTuning{
			FootprintSpacing: 15,
			FootprintLife:    10,
			DustInterval:     0.15,
			DustLife:         0.5,
			WindMin:          2,
			WindMax:          8,
			WindLife:         2.5,
			ShimmerLife:      0.8,
		},
	}
}
