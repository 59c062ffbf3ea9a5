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

import (
	"github.com/spf13/cast"
)

// Params 宿主传入的位置参数和命名参数，均可为空
type Params struct {
	Args   []any
	KwArgs map[string]any
}

// NewParams builds Params from the host's args and kvargs.
func NewParams(args []any, kwargs map[string]any) *Params {
	return &Params{Args: args, KwArgs: kwargs}
}

// Has reports whether a named argument is present. Safe on a nil receiver.
func (p *Params) Has(key string) bool {
	if p == nil || p.KwArgs == nil {
		return false
	}
	_, ok := p.KwArgs[key]
	return ok
}

// Lookup returns the named argument, falling back to positional index pos when pos >= 0.
func (p *Params) Lookup(key string, pos int) (any, bool) {
	if p == nil {
		return nil, false
	}
	if v, ok := p.KwArgs[key]; ok && v != nil {
		return v, true
	}
	if pos >= 0 && pos < len(p.Args) && p.Args[pos] != nil {
		return p.Args[pos], true
	}
	return nil, false
}

func (p *Params) Int64(key string, def int64) (int64, error) {
	v, ok := p.Lookup(key, -1)
	if !ok {
		return def, nil
	}
	i, err := cast.ToInt64E(v)
	if err != nil {
		return 0, MalformedInput("", "parameter %s is not an integer", key).WithCause(err)
	}
	return i, nil
}

func (p *Params) Float64(key string, def float64) (float64, error) {
	v, ok := p.Lookup(key, -1)
	if !ok {
		return def, nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, MalformedInput("", "parameter %s is not a number", key).WithCause(err)
	}
	return f, nil
}

func (p *Params) String(key string, def string) (string, error) {
	v, ok := p.Lookup(key, -1)
	if !ok {
		return def, nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", MalformedInput("", "parameter %s is not a string", key).WithCause(err)
	}
	return s, nil
}

func (p *Params) Bool(key string, def bool) (bool, error) {
	v, ok := p.Lookup(key, -1)
	if !ok {
		return def, nil
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, MalformedInput("", "parameter %s is not a boolean", key).WithCause(err)
	}
	return b, nil
}
