package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// fileConfig is the HCL layout. Every field is optional; nil leaves the current value.
//
//	log_level = "debug"
//
//	session {
//	  strategy            = "qlearning"
//	  max_rounds          = 1000
//	  reshuffle_threshold = 13
//	}
//
//	learning {
//	  exploration         = 0.1
//	  checkpoint_interval = "1m"
//	}
//
//	store {
//	  type     = "sqlite"
//	  data_dir = "data"
//	}
type fileConfig struct {
	LogLevel    *string        `hcl:"log_level,optional"`
	Environment *string        `hcl:"environment,optional"`
	Session     *sessionBlock  `hcl:"session,block"`
	Learning    *learningBlock `hcl:"learning,block"`
	Store       *storeBlock    `hcl:"store,block"`
}

type sessionBlock struct {
	Strategy           *string `hcl:"strategy,optional"`
	MaxRounds          *int    `hcl:"max_rounds,optional"`
	ReshuffleThreshold *int    `hcl:"reshuffle_threshold,optional"`
	Reshuffle          *bool   `hcl:"reshuffle,optional"`
	Seed               *int64  `hcl:"seed,optional"`
}

type learningBlock struct {
	LearningRate       *float64 `hcl:"learning_rate,optional"`
	Discount           *float64 `hcl:"discount,optional"`
	Exploration        *float64 `hcl:"exploration,optional"`
	CheckpointInterval *string  `hcl:"checkpoint_interval,optional"`
}

type storeBlock struct {
	Type    *string `hcl:"type,optional"`
	DataDir *string `hcl:"data_dir,optional"`
}

// applyFile overlays the HCL file at path. A missing file is an error because it was asked for.
func (c *Config) applyFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var fc fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &fc)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	return c.merge(fc)
}

func (c *Config) merge(fc fileConfig) error {
	setString(&c.LogLevel, fc.LogLevel)
	setString(&c.Environment, fc.Environment)

	if s := fc.Session; s != nil {
		setString(&c.Strategy, s.Strategy)
		setValue(&c.MaxRounds, s.MaxRounds)
		setValue(&c.ReshuffleThreshold, s.ReshuffleThreshold)
		setValue(&c.Reshuffle, s.Reshuffle)
		setValue(&c.Seed, s.Seed)
	}

	if l := fc.Learning; l != nil {
		setValue(&c.LearningRate, l.LearningRate)
		setValue(&c.Discount, l.Discount)
		setValue(&c.Exploration, l.Exploration)
		if l.CheckpointInterval != nil {
			d, err := time.ParseDuration(*l.CheckpointInterval)
			if err != nil {
				return fmt.Errorf("invalid checkpoint_interval: %w", err)
			}
			c.CheckpointInterval = d
		}
	}

	if st := fc.Store; st != nil {
		setString(&c.StoreType, st.Type)
		setString(&c.DataDir, st.DataDir)
	}
	return nil
}

func setString(dst *string, src *string) {
	if src != nil && *src != "" {
		*dst = *src
	}
}

func setValue[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
