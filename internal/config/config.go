/*

  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved

  Licensed under the Apache License, Version 2.0 (the "License");
  you may not use this file except in compliance with the License.
  You may obtain a copy of the License at

      http://www.apache.org/licenses/LICENSE-2.0

  Unless required by applicable law or agreed to in writing, software
  distributed under the License is distributed on an "AS IS" BASIS,
  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
  See the License for the specific language governing permissions and
  limitations under the License.

*/

// Package config loads generator location from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/fogfish/snowflake"
)

// EnvPrefix of environment variables, e.g. SNOWFLAKE_DATACENTER
const EnvPrefix = "SNOWFLAKE"

// Config of generator
type Config struct {
	Datacenter int           `mapstructure:"datacenter"`
	Machine    int           `mapstructure:"machine"`
	Spin       time.Duration `mapstructure:"spin"`
}

// Default config, location ⟨0, 0⟩ with busy-wait
func Default() Config {
	return Config{}
}

// New creates viper instance. The file is optional, snowflake.yaml is
// looked up at working directory and /etc/snowflake if it is empty.
func New(file string) *viper.Viper {
	def := Default()

	v := viper.New()
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("snowflake")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/snowflake")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("datacenter", def.Datacenter)
	v.SetDefault("machine", def.Machine)
	v.SetDefault("spin", def.Spin)

	return v
}

// Load reads configuration, precedence is flag > env > file > default.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate location of generator
func (c Config) Validate() error {
	if c.Datacenter < 0 || c.Datacenter > snowflake.MaxDatacenter {
		return fmt.Errorf("%w: datacenter %d is out of range [0, %d]",
			snowflake.ErrInvalidConfiguration, c.Datacenter, snowflake.MaxDatacenter)
	}

	if c.Machine < 0 || c.Machine > snowflake.MaxMachine {
		return fmt.Errorf("%w: machine %d is out of range [0, %d]",
			snowflake.ErrInvalidConfiguration, c.Machine, snowflake.MaxMachine)
	}

	if c.Spin < 0 {
		return fmt.Errorf("%w: spin %s is negative",
			snowflake.ErrInvalidConfiguration, c.Spin)
	}

	return nil
}

// Generator creates generator for the configured location
func (c Config) Generator(opts ...snowflake.Config) (*snowflake.Generator, error) {
	return snowflake.New(c.Datacenter, c.Machine,
		append([]snowflake.Config{snowflake.WithSpin(c.Spin)}, opts...)...,
	)
}
