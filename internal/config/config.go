package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/engine"
	"github.com/carpediemzzsssww-cpu/delay-the-end/internal/game"
)

// Bounds for the rebellion extreme-choice gate K. The documented design
// allows relaxing the default of 1 up to 2 when the simulated hidden-ending
// rate comes out too low; anything else is a configuration error.
const (
	MinExtremeChoices = 1
	MaxExtremeChoices = 2
)

type rawConfig struct {
	Rounds         int   `json:"rounds"`
	PressureGrowth []int `json:"pressure_growth"`
	Initial        *struct {
		Heaven    *int `json:"heaven"`
		Hell      *int `json:"hell"`
		Stability *int `json:"stability"`
		Pressure  *int `json:"pressure"`
	} `json:"initial"`
	Record *struct {
		TruthStreakTarget   *int     `json:"truth_streak_target"`
		TruthStabilityBonus *int     `json:"truth_stability_bonus"`
		PolishHeavenBonus   *int     `json:"polish_heaven_bonus"`
		BlurHellBonus       *int     `json:"blur_hell_bonus"`
		SealPressureDelta   *int     `json:"seal_pressure_delta"`
		SealPenaltyChance   *float64 `json:"seal_penalty_chance"`
		SealPenalty         *struct {
			Stability *int `json:"stability"`
			Heaven    *int `json:"heaven"`
		} `json:"seal_penalty"`
	} `json:"record"`
	Rebellion *struct {
		BalanceDiffMax      *int `json:"balance_diff_max"`
		StabilityMin        *int `json:"stability_min"`
		ConsecutiveRequired *int `json:"consecutive_required"`
		MaxExtremeChoices   *int `json:"max_extreme_choices"`
	} `json:"rebellion"`
	Endings *struct {
		StabilityCollapseLT *int `json:"stability_collapse_lt"`
		HeavenDominanceGTE  *int `json:"heaven_dominance_gte"`
		HellDominanceGTE    *int `json:"hell_dominance_gte"`
		RebellionPressureLT *int `json:"rebellion_pressure_lt"`
	} `json:"endings"`
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
}

// LoadedConfig contains the validated engine tuning and the server address
// to bind to.
type LoadedConfig struct {
	Rules         engine.Rules
	ServerAddress string
}

// LoadConfig reads game-config.json at path. Keys omitted from the file
// keep their shipped defaults; every provided value is validated. An
// invalid tunable is fatal at startup.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	rules := engine.DefaultRules()

	if rc.Rounds != 0 && rc.Rounds != game.TotalRounds {
		return nil, fmt.Errorf("config file %s: rounds must be %d, got %d", path, game.TotalRounds, rc.Rounds)
	}
	if rc.PressureGrowth != nil {
		if len(rc.PressureGrowth) != game.TotalRounds {
			return nil, fmt.Errorf("config file %s: pressure_growth must list %d values, got %d", path, game.TotalRounds, len(rc.PressureGrowth))
		}
		rules.PressureRamp = append([]int(nil), rc.PressureGrowth...)
	}

	if ini := rc.Initial; ini != nil {
		setInt(&rules.InitialHeaven, ini.Heaven)
		setInt(&rules.InitialHell, ini.Hell)
		setInt(&rules.InitialStability, ini.Stability)
		setInt(&rules.InitialPressure, ini.Pressure)
		for _, v := range []int{rules.InitialHeaven, rules.InitialHell, rules.InitialStability, rules.InitialPressure} {
			if v < game.MeterMin || v > game.MeterMax {
				return nil, fmt.Errorf("config file %s: initial meter value %d outside [%d,%d]", path, v, game.MeterMin, game.MeterMax)
			}
		}
	}

	if rec := rc.Record; rec != nil {
		setInt(&rules.TruthStreakTarget, rec.TruthStreakTarget)
		setInt(&rules.TruthStabilityBonus, rec.TruthStabilityBonus)
		setInt(&rules.EmbellishHeavenBonus, rec.PolishHeavenBonus)
		setInt(&rules.ObscureHellBonus, rec.BlurHellBonus)
		setInt(&rules.SealPressureDelta, rec.SealPressureDelta)
		if rec.SealPenaltyChance != nil {
			rules.SealPenaltyChance = *rec.SealPenaltyChance
		}
		if rec.SealPenalty != nil {
			setInt(&rules.SealPenaltyStability, rec.SealPenalty.Stability)
			setInt(&rules.SealPenaltyHeaven, rec.SealPenalty.Heaven)
		}
		if rules.TruthStreakTarget < 1 {
			return nil, fmt.Errorf("config file %s: record.truth_streak_target must be >= 1", path)
		}
		if rules.SealPenaltyChance < 0 || rules.SealPenaltyChance > 1 {
			return nil, fmt.Errorf("config file %s: record.seal_penalty_chance must be within [0,1], got %v", path, rules.SealPenaltyChance)
		}
	}

	if reb := rc.Rebellion; reb != nil {
		setInt(&rules.BalanceDiffMax, reb.BalanceDiffMax)
		setInt(&rules.BalanceStabilityMin, reb.StabilityMin)
		setInt(&rules.ConsecutiveRequired, reb.ConsecutiveRequired)
		setInt(&rules.MaxExtremeChoices, reb.MaxExtremeChoices)
		if rules.ConsecutiveRequired < 1 {
			return nil, fmt.Errorf("config file %s: rebellion.consecutive_required must be >= 1", path)
		}
	}
	if rules.MaxExtremeChoices < MinExtremeChoices || rules.MaxExtremeChoices > MaxExtremeChoices {
		return nil, fmt.Errorf("config file %s: rebellion.max_extreme_choices must be within [%d,%d], got %d",
			path, MinExtremeChoices, MaxExtremeChoices, rules.MaxExtremeChoices)
	}

	if end := rc.Endings; end != nil {
		setInt(&rules.CollapseStabilityBelow, end.StabilityCollapseLT)
		setInt(&rules.HeavenDominanceAt, end.HeavenDominanceGTE)
		setInt(&rules.HellDominanceAt, end.HellDominanceGTE)
		setInt(&rules.RebellionPressureBelow, end.RebellionPressureLT)
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}

	return &LoadedConfig{Rules: rules, ServerAddress: addr}, nil
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
