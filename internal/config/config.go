package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
)

// 可运行的演示场景
const (
	ScenarioCafe    = "cafe"
	ScenarioHouse   = "house"
	ScenarioLibrary = "library"
)

// KnownScenarios 默认按此顺序运行
var KnownScenarios = []string{ScenarioCafe, ScenarioHouse, ScenarioLibrary}

// BuildingConfig 单个建筑的构造参数
type BuildingConfig struct {
	Name          string
	Address       string
	Floors        int
	HasElevator   bool
	HasDiningRoom bool
}

// Config campus-map 配置
type Config struct {
	ServiceName string

	Campus struct {
		// 按顺序运行的场景，来自 CAMPUS_SCENARIOS（逗号分隔）
		Scenarios []string

		Cafe    BuildingConfig
		House   BuildingConfig
		Library BuildingConfig
	}

	Log struct {
		Level  string
		Format string
	}
}

// Load 从环境变量加载配置（带默认值）
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.ServiceName = getEnv("SERVICE_NAME", "campus-map")

	scenarios, err := parseScenarios(getEnv("CAMPUS_SCENARIOS", strings.Join(KnownScenarios, ",")))
	if err != nil {
		return nil, err
	}
	cfg.Campus.Scenarios = scenarios

	cfg.Campus.Cafe = BuildingConfig{
		Name:    getEnv("CAFE_NAME", "Grace's Cafe"),
		Address: getEnv("CAFE_ADDRESS", "228 Random Street"),
		Floors:  getEnvInt("CAFE_FLOORS", 3),
	}
	cfg.Campus.House = BuildingConfig{
		Name:          getEnv("HOUSE_NAME", "Grace's House"),
		Address:       getEnv("HOUSE_ADDRESS", "102 Lake St"),
		Floors:        getEnvInt("HOUSE_FLOORS", 2),
		HasDiningRoom: getEnvBool("HOUSE_DINING_ROOM", true),
		HasElevator:   getEnvBool("HOUSE_ELEVATOR", false),
	}
	cfg.Campus.Library = BuildingConfig{
		Name:        getEnv("LIBRARY_NAME", "Neilson"),
		Address:     getEnv("LIBRARY_ADDRESS", "7 Neilson Drive"),
		Floors:      getEnvInt("LIBRARY_FLOORS", 4),
		HasElevator: getEnvBool("LIBRARY_ELEVATOR", true),
	}

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "console")

	return cfg, nil
}

func parseScenarios(raw string) ([]string, error) {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		if !slices.Contains(KnownScenarios, name) {
			return nil, fmt.Errorf("unknown scenario %q (known: %s)", name, strings.Join(KnownScenarios, ", "))
		}
		out = append(out, name)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no scenarios configured")
	}
	return out, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt 解析失败或小于 1 时使用默认值
func getEnvInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil && v > 0 {
		return v
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}
