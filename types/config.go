/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

// Config 引擎配置
type Config struct {
	SchemaVersion string          `koanf:"schema_version" json:"schemaVersion"`
	Log           LogConfig       `koanf:"log" json:"log"`
	Metrics       MetricsConfig   `koanf:"metrics" json:"metrics"`
	Functions     FunctionsConfig `koanf:"functions" json:"functions"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `koanf:"level" json:"level"`   // debug|info|warn|error|off
	Output string `koanf:"output" json:"output"` // stdout|stderr|discard
}

// MetricsConfig 监控配置
type MetricsConfig struct {
	Enabled   bool   `koanf:"enabled" json:"enabled"`
	Namespace string `koanf:"namespace" json:"namespace"`
}

// FunctionsConfig controls which registered functions an engine exposes.
type FunctionsConfig struct {
	Disabled []string `koanf:"disabled" json:"disabled"`
}

const (
	DefaultSchemaVersion    = "v1"
	DefaultLogLevel         = "info"
	DefaultLogOutput        = "stdout"
	DefaultMetricsNamespace = "tableudf"
)

// NewConfig returns a Config with defaults applied.
func NewConfig() Config {
	cfg := Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills zero fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.SchemaVersion == "" {
		c.SchemaVersion = DefaultSchemaVersion
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Output == "" {
		c.Log.Output = DefaultLogOutput
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultMetricsNamespace
	}
}
