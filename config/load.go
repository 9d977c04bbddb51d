// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package config // import "go.opentelemetry.io/dataflow/config"

import (
	"fmt"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/mitchellh/mapstructure"
)

// delimiter for nested keys, matching the collector's configuration trees.
const keyDelimiter = "::"

// LoadReceiverConfig decodes a receiver configuration from YAML bytes.
// Missing keys keep their defaults, unknown keys are an error, and the
// result is validated before being returned.
func LoadReceiverConfig(b []byte) (*ReceiverConfig, error) {
	k := koanf.New(keyDelimiter)
	if err := k.Load(rawbytes.Provider(b), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("parse receiver config: %w", err)
	}

	cfg := NewDefault("")
	dc := &mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          "mapstructure",
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "mapstructure", DecoderConfig: dc}); err != nil {
		return nil, fmt.Errorf("decode receiver config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid receiver config: %w", err)
	}
	return cfg, nil
}
