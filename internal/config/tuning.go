// internal/config/tuning.go
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Tuning — параметры баланса раунда. Загружаются из файла и окружения,
// всё, что не задано, берётся из DefaultTuning.
type Tuning struct {
	Seed    int64        `mapstructure:"seed"`
	Profile string       `mapstructure:"profile"`
	Player  PlayerTuning `mapstructure:"player"`
	Enemy   EnemyTuning  `mapstructure:"enemy"`
	Weapon  WeaponTuning `mapstructure:"weapon"`
	Map     MapTuning    `mapstructure:"map"`
}

type PlayerTuning struct {
	Speed         float64       `mapstructure:"speed"`
	MaxHP         int           `mapstructure:"max_hp"`
	RegenDelay    time.Duration `mapstructure:"regen_delay"`
	RegenInterval time.Duration `mapstructure:"regen_interval"`
}

type EnemyTuning struct {
	Count          int           `mapstructure:"count"`
	HPMin          int           `mapstructure:"hp_min"`
	HPMax          int           `mapstructure:"hp_max"`
	Speed          float64       `mapstructure:"speed"`
	AttackCooldown time.Duration `mapstructure:"attack_cooldown"`
	DamageMin      int           `mapstructure:"damage_min"`
	DamageMax      int           `mapstructure:"damage_max"`
	MaxHitDamage   int           `mapstructure:"max_hit_damage"`
}

type WeaponTuning struct {
	FireInterval    time.Duration `mapstructure:"fire_interval"`
	ProjectileSpeed float64       `mapstructure:"projectile_speed"`
	ChipDamage      int           `mapstructure:"chip_damage"`
}

type MapTuning struct {
	PlacementRetries int     `mapstructure:"placement_retries"`
	SpawnRetries     int     `mapstructure:"spawn_retries"`
	SafeZone         float64 `mapstructure:"safe_zone"`
}

// DefaultTuning returns the stock balance values.
func DefaultTuning() Tuning {
	return Tuning{
		Player: PlayerTuning{
			Speed:         2,
			MaxHP:         100,
			RegenDelay:    5 * time.Second,
			RegenInterval: time.Second,
		},
		Enemy: EnemyTuning{
			Count:          10,
			HPMin:          1,
			HPMax:          10,
			Speed:          1,
			AttackCooldown: time.Second,
			DamageMin:      4,
			DamageMax:      14,
			MaxHitDamage:   15,
		},
		Weapon: WeaponTuning{
			FireInterval:    200 * time.Millisecond,
			ProjectileSpeed: 5,
			ChipDamage:      2,
		},
		Map: MapTuning{
			PlacementRetries: 50,
			SpawnRetries:     200,
			SafeZone:         160,
		},
	}
}

// LoadTuning reads tuning from an optional config file (any format viper
// understands) and ARENA_* environment variables, e.g. ARENA_ENEMY_COUNT.
func LoadTuning(path string) (Tuning, error) {
	v := viper.New()
	setDefaults(v, DefaultTuning())

	v.SetEnvPrefix("ARENA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Tuning{}, fmt.Errorf("failed to read tuning file: %w", err)
		}
	}

	var t Tuning
	if err := v.Unmarshal(&t); err != nil {
		return Tuning{}, fmt.Errorf("failed to unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

func setDefaults(v *viper.Viper, d Tuning) {
	v.SetDefault("seed", d.Seed)
	v.SetDefault("profile", d.Profile)

	v.SetDefault("player.speed", d.Player.Speed)
	v.SetDefault("player.max_hp", d.Player.MaxHP)
	v.SetDefault("player.regen_delay", d.Player.RegenDelay)
	v.SetDefault("player.regen_interval", d.Player.RegenInterval)

	v.SetDefault("enemy.count", d.Enemy.Count)
	v.SetDefault("enemy.hp_min", d.Enemy.HPMin)
	v.SetDefault("enemy.hp_max", d.Enemy.HPMax)
	v.SetDefault("enemy.speed", d.Enemy.Speed)
	v.SetDefault("enemy.attack_cooldown", d.Enemy.AttackCooldown)
	v.SetDefault("enemy.damage_min", d.Enemy.DamageMin)
	v.SetDefault("enemy.damage_max", d.Enemy.DamageMax)
	v.SetDefault("enemy.max_hit_damage", d.Enemy.MaxHitDamage)

	v.SetDefault("weapon.fire_interval", d.Weapon.FireInterval)
	v.SetDefault("weapon.projectile_speed", d.Weapon.ProjectileSpeed)
	v.SetDefault("weapon.chip_damage", d.Weapon.ChipDamage)

	v.SetDefault("map.placement_retries", d.Map.PlacementRetries)
	v.SetDefault("map.spawn_retries", d.Map.SpawnRetries)
	v.SetDefault("map.safe_zone", d.Map.SafeZone)
}

// Validate checks that every value is usable by the simulation.
func (t Tuning) Validate() error {
	var errs []error
	if t.Player.Speed <= 0 {
		errs = append(errs, errors.New("player.speed must be positive"))
	}
	if t.Player.MaxHP <= 0 {
		errs = append(errs, errors.New("player.max_hp must be positive"))
	}
	if t.Enemy.Count < 1 {
		errs = append(errs, errors.New("enemy.count must be at least 1"))
	}
	if t.Enemy.HPMin < 1 || t.Enemy.HPMax < t.Enemy.HPMin {
		errs = append(errs, fmt.Errorf("enemy hp range [%d, %d] is invalid", t.Enemy.HPMin, t.Enemy.HPMax))
	}
	if t.Enemy.DamageMin < 0 || t.Enemy.DamageMax < t.Enemy.DamageMin {
		errs = append(errs, fmt.Errorf("enemy damage range [%d, %d] is invalid", t.Enemy.DamageMin, t.Enemy.DamageMax))
	}
	if t.Enemy.MaxHitDamage < t.Enemy.DamageMax {
		errs = append(errs, errors.New("enemy.max_hit_damage must not be below enemy.damage_max"))
	}
	if t.Weapon.ProjectileSpeed <= 0 {
		errs = append(errs, errors.New("weapon.projectile_speed must be positive"))
	}
	if t.Weapon.ChipDamage < 1 {
		errs = append(errs, errors.New("weapon.chip_damage must be at least 1"))
	}
	if t.Map.PlacementRetries < 1 || t.Map.SpawnRetries < 1 {
		errs = append(errs, errors.New("map retry budgets must be at least 1"))
	}
	if t.Map.SafeZone < PlayerSize {
		errs = append(errs, fmt.Errorf("map.safe_zone %v must be at least the player size %v", t.Map.SafeZone, PlayerSize))
	}
	return errors.Join(errs...)
}
