package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging     LoggingConfig `yaml:"logging"`
	Server      ServerConfig  `yaml:"server"`
	Mongo       MongoConfig   `yaml:"mongo"`
	GeminiModel string        `yaml:"gemini_model"`
	AI          AIConfig      `yaml:"ai"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

// MongoConfig holds connection defaults. The URI may be overridden by the
// MONGODB_URI environment variable at connect time.
type MongoConfig struct {
	URI    string `yaml:"uri"`
	DBName string `yaml:"db_name"`
}

// AIConfig tunes the assistant and scent finder behavior.
type AIConfig struct {
	// RequestTimeoutSec bounds a single model call. 0 or less falls back
	// to the default of 15 seconds.
	RequestTimeoutSec int `yaml:"request_timeout_sec"`

	// MaxTranscriptTurns caps how many trailing conversation turns are
	// included in the model prompt. 0 or less means no cap.
	MaxTranscriptTurns int `yaml:"max_transcript_turns"`

	// FuzzyMatchRatio is the minimum token overlap ratio for matching a
	// model-suggested product name against the catalog. 0 or less falls
	// back to the default of 0.6.
	FuzzyMatchRatio float64 `yaml:"fuzzy_match_ratio"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
