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

// Package config loads engine configuration from YAML and environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/rulego/tableudf/types"
)

// EnvPrefix 环境变量前缀，层级分隔符为 "__"，例如 TABLEUDF__LOG__LEVEL=debug
const EnvPrefix = "TABLEUDF__"

// Load merges YAML (if present) with env-vars and applies defaults.
// A missing file is not an error; an empty path skips the file entirely.
func Load(path string) (types.Config, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return types.Config{}, err
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return types.Config{}, err
	}

	var cfg types.Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, err
	}
	if cfg.SchemaVersion != "" && cfg.SchemaVersion != types.DefaultSchemaVersion {
		return cfg, fmt.Errorf("schema_version %q not supported (want %s)", cfg.SchemaVersion, types.DefaultSchemaVersion)
	}
	// 逗号分隔的环境变量，例如 TABLEUDF__FUNCTIONS__DISABLED=lead,startstop
	if raw, ok := k.Get("functions.disabled").(string); ok {
		cfg.Functions.Disabled = splitList(raw)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// envKey maps TABLEUDF__LOG__LEVEL to log.level.
func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ToLower(strings.ReplaceAll(s, "__", "."))
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
