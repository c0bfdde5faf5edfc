// Package config defines the engine configuration: every recognized
// option, its default, and construction-time validation. An invalid
// configuration is rejected before any engine is built.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is the shared validator instance.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Config enumerates every option the engine recognizes.
//
// The four scoring weights are not normalized automatically: callers
// supplying custom weights own the sum. The composite trend score is
// clamped to [0,1] after summation, so scores stay in range even when
// weights do not sum to 1.
type Config struct {
	// Trending thresholds
	MinMentions int     `yaml:"minMentions" validate:"gte=1"`
	MinVelocity float64 `yaml:"minVelocity" validate:"gte=0,lte=1"`

	// Trailing windows, measured back from the moment of analysis
	ShortWindow  time.Duration `yaml:"shortWindow" validate:"gt=0,ltfield=MediumWindow"`
	MediumWindow time.Duration `yaml:"mediumWindow" validate:"gt=0,ltfield=LongWindow"`
	LongWindow   time.Duration `yaml:"longWindow" validate:"gt=0"`

	// Trend score weights
	VelocityWeight    float64 `yaml:"velocityWeight" validate:"gte=0,lte=1"`
	VolumeWeight      float64 `yaml:"volumeWeight" validate:"gte=0,lte=1"`
	RecencyWeight     float64 `yaml:"recencyWeight" validate:"gte=0,lte=1"`
	CredibilityWeight float64 `yaml:"credibilityWeight" validate:"gte=0,lte=1"`

	// Clustering
	SimilarityThreshold float64 `yaml:"similarityThreshold" validate:"gte=0,lte=1"`
	MaxClusterSize      int     `yaml:"maxClusterSize" validate:"gte=1"`

	// Keyword extraction
	MinKeywordLength int `yaml:"minKeywordLength" validate:"gte=1"`
	MaxKeywordLength int `yaml:"maxKeywordLength" validate:"gtefield=MinKeywordLength"`

	// Stopwords replaces the built-in stopword list when non-empty.
	Stopwords []string `yaml:"stopwords,omitempty"`

	// Result shaping
	IncludeClusters  bool `yaml:"includeClusters"`
	IncludeLifecycle bool `yaml:"includeLifecycle"`
	Limit            int  `yaml:"limit" validate:"gte=0"` // 0 = unrestricted
}

// Default returns the engine defaults.
func Default() *Config {
	return &Config{
		MinMentions:         3,
		MinVelocity:         0.5,
		ShortWindow:         time.Hour,
		MediumWindow:        4 * time.Hour,
		LongWindow:          24 * time.Hour,
		VelocityWeight:      0.4,
		VolumeWeight:        0.3,
		RecencyWeight:       0.2,
		CredibilityWeight:   0.1,
		SimilarityThreshold: 0.6,
		MaxClusterSize:      10,
		MinKeywordLength:    2,
		MaxKeywordLength:    20,
		IncludeClusters:     true,
		IncludeLifecycle:    true,
		Limit:               0,
	}
}

// Validate checks the configuration. Any violation is a construction
// error; no partial engine should be built from an invalid Config.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("config: field %s failed %q constraint", f.Field(), f.Tag())
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Load reads a YAML config file over the defaults. Unknown keys are
// rejected. An empty file yields the defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	cfg := Default()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
