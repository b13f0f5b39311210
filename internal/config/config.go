package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// PricingInfo holds cost details per token for a specific model.
type PricingInfo struct {
	InputPerToken  float64 `mapstructure:"input_per_token"`
	OutputPerToken float64 `mapstructure:"output_per_token"`
}

type Config struct {
	Taxonomy struct {
		Path string `mapstructure:"path"` // Empty loads the embedded default taxonomy
	} `mapstructure:"taxonomy"`

	Keywords struct {
		MaxKeywords int `mapstructure:"max_keywords"`
		MaxNgram    int `mapstructure:"max_ngram"`
	} `mapstructure:"keywords"`

	Augmenter struct {
		Provider       string  `mapstructure:"provider"` // "none", "openai" or "gemini"
		BaseURL        string  `mapstructure:"base_url"`
		APIKey         string  `mapstructure:"api_key"`
		Model          string  `mapstructure:"model"`
		PromptTemplate string  `mapstructure:"prompt_template"` // Path to prompt template file
		MaxTokens      int     `mapstructure:"max_tokens"`
		Temperature    float32 `mapstructure:"temperature"`
	} `mapstructure:"augmenter"`

	Database struct {
		DSN string `mapstructure:"dsn"` // postgres://..., sqlite://path, or empty to disable history
	} `mapstructure:"database"`

	Redis struct {
		Address  string `mapstructure:"address"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`

	Worker struct {
		Concurrency int            `mapstructure:"concurrency"`
		Queues      map[string]int `mapstructure:"queues"`
	} `mapstructure:"worker"`

	Server struct {
		Addr string `mapstructure:"addr"`
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`

	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"` // "text" or "json"
	} `mapstructure:"logging"`

	// Pricing: map[model] = struct{input_per_token, output_per_token}
	Pricing map[string]PricingInfo `mapstructure:"pricing"`
}

// keyDelim replaces viper's "." so model names such as quen-3.4b can be used
// as pricing keys.
const keyDelim = "::"

func setDefaults(v *viper.Viper) {
	v.SetDefault("taxonomy::path", "")
	v.SetDefault("keywords::max_keywords", 12)
	v.SetDefault("keywords::max_ngram", 3)
	v.SetDefault("augmenter::provider", "none")
	v.SetDefault("augmenter::base_url", "http://localhost:8080/v1")
	v.SetDefault("augmenter::api_key", "")
	v.SetDefault("augmenter::model", "quen-3.4b")
	v.SetDefault("augmenter::prompt_template", "")
	v.SetDefault("augmenter::max_tokens", 512)
	v.SetDefault("augmenter::temperature", 0.6)
	v.SetDefault("database::dsn", "")
	v.SetDefault("redis::address", "")
	v.SetDefault("redis::password", "")
	v.SetDefault("redis::db", 0)
	v.SetDefault("worker::concurrency", 4)
	v.SetDefault("worker::queues", map[string]interface{}{"compose": 1})
	v.SetDefault("server::addr", "localhost")
	v.SetDefault("server::port", "8080")
	v.SetDefault("logging::level", "info")
	v.SetDefault("logging::format", "text")
}

// LoadConfig reads bubble.yaml from cfgFile, or from the working directory or
// ~/.config/bubble when cfgFile is empty. A missing file is not an error;
// defaults and BUBBLE_* environment variables still apply.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelim))
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("bubble")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "bubble"))
		}
	}

	// BUBBLE_AUGMENTER_PROVIDER overrides augmenter.provider, and so on.
	v.SetEnvPrefix("BUBBLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(keyDelim, "_"))
	v.AutomaticEnv()
	// Also accept the provider's conventional variable for the API key.
	_ = v.BindEnv("augmenter::api_key", "BUBBLE_AUGMENTER_API_KEY", "OPENAI_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		// It's okay if the config file doesn't exist when none was named explicitly.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	return &config, nil
}
