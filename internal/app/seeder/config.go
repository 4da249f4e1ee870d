package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds seeder pipeline settings.
type Config struct {
	VocabularyPath string `yaml:"vocabulary_path" env:"SEEDER_VOCABULARY_PATH"`
	BatchSize      int    `yaml:"batch_size"      env:"SEEDER_BATCH_SIZE"      env-default:"100"`
	DryRun         bool   `yaml:"dry_run"         env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("seeder config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	return &cfg, nil
}

// Vocabulary lists the display names of both tag vocabularies.
type Vocabulary struct {
	Industries     []string `yaml:"industries"`
	ExpertiseAreas []string `yaml:"expertise_areas"`
}

// LoadVocabulary returns DefaultVocabulary when path is empty and the
// YAML file's lists otherwise.
func LoadVocabulary(path string) (Vocabulary, error) {
	if path == "" {
		return DefaultVocabulary(), nil
	}

	var v Vocabulary
	if err := cleanenv.ReadConfig(path, &v); err != nil {
		return Vocabulary{}, fmt.Errorf("seeder vocabulary: read %s: %w", path, err)
	}
	if len(v.Industries) == 0 && len(v.ExpertiseAreas) == 0 {
		return Vocabulary{}, fmt.Errorf("seeder vocabulary: %s lists no tags", path)
	}
	return v, nil
}

// DefaultVocabulary is the vocabulary the site launched with.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Industries: []string{
			"Technology",
			"Healthcare",
			"Finance",
			"Education",
			"Marketing",
			"Legal",
			"Real Estate",
			"Non-Profit",
			"Consulting",
			"Manufacturing",
			"Retail",
			"Media & Entertainment",
			"Government",
			"Other",
		},
		ExpertiseAreas: []string{
			"Software Engineering",
			"Product Management",
			"Data Science",
			"UX/UI Design",
			"Project Management",
			"Business Development",
			"Human Resources",
			"Operations",
			"Career Transitions",
			"Leadership",
			"Entrepreneurship",
			"Work-Life Balance",
			"Networking",
			"Interview Preparation",
			"Resume Review",
			"Salary Negotiation",
			"Other",
		},
	}
}
