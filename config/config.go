package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"cpu-scheduling-simulator/internal/generator"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	// MaxTotalBurstTime caps the summed burst time of a submitted workload.
	MaxTotalBurstTime int
	Generator         generator.Options
}

var ErrInvalidConfig = errors.New("invalid config")

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads config.yaml from the working directory once.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		var err error
		config, err = LoadSchedulerConfig("./")
		if err != nil {
			log.Fatalln(err)
		}
	})

	return config
}

// LoadSchedulerConfig reads config.yaml from the given directories. A missing
// file falls back to defaults; SCHEDULER_* environment variables override
// both, e.g. SCHEDULER_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM.
func LoadSchedulerConfig(paths ...string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}
	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := generator.DefaultOptions()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.max_total_burst_time", 100000)
	v.SetDefault("generator.min_processes", defaults.MinProcesses)
	v.SetDefault("generator.max_processes", defaults.MaxProcesses)
	v.SetDefault("generator.max_arrival_time", defaults.MaxArrivalTime)
	v.SetDefault("generator.max_burst_time", defaults.MaxBurstTime)
	v.SetDefault("generator.max_priority", defaults.MaxPriority)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Println("config file not found, using defaults")
	}

	c := &SchedulerConfig{}
	c.Port = v.GetInt("port")
	c.RoundRobinTimeQuantum = v.GetInt("scheduler.round_robin.time_quantum")
	c.MaxTotalBurstTime = v.GetInt("scheduler.max_total_burst_time")
	c.Generator = generator.Options{
		MinProcesses:   v.GetInt("generator.min_processes"),
		MaxProcesses:   v.GetInt("generator.max_processes"),
		MaxArrivalTime: v.GetInt("generator.max_arrival_time"),
		MaxBurstTime:   v.GetInt("generator.max_burst_time"),
		MaxPriority:    v.GetInt("generator.max_priority"),
	}

	if c.RoundRobinTimeQuantum < 1 {
		return nil, fmt.Errorf("%w: scheduler.round_robin.time_quantum must be >= 1, got %d", ErrInvalidConfig, c.RoundRobinTimeQuantum)
	}
	if c.MaxTotalBurstTime < 1 {
		return nil, fmt.Errorf("%w: scheduler.max_total_burst_time must be >= 1, got %d", ErrInvalidConfig, c.MaxTotalBurstTime)
	}
	if c.Port < 1 || c.Port > 65535 {
		return nil, fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}
	if err := c.Generator.Validate(); err != nil {
		return nil, fmt.Errorf("%w: generator: %v", ErrInvalidConfig, err)
	}
	return c, nil
}
