package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	GeminiApiKey string
	Quiz         Quiz
	Analyzer     Analyzer
	Materials    Materials
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Quiz struct {
	DefaultQuestions int
}

type Analyzer struct {
	// SampleBudget bounds how many characters of a document are sent to the
	// model for complexity assessment.
	SampleBudget int
	// MinTextLength is the threshold below which analysis short-circuits to a
	// fixed default instead of calling the model.
	MinTextLength int
}

type Materials struct {
	// ComplexityTolerance is the maximum |candidate - target| complexity
	// distance for a candidate to be accepted.
	ComplexityTolerance int
	// RequestDelay is the minimum pacing interval between fetches of
	// consecutive candidates.
	RequestDelay   time.Duration
	FetchTimeout   time.Duration
	DefaultResults int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("QUIZ_DEFAULT_QUESTIONS", 5)
	viper.SetDefault("ANALYZER_SAMPLE_BUDGET", 2000)
	viper.SetDefault("ANALYZER_MIN_TEXT_LENGTH", 100)
	viper.SetDefault("MATERIALS_COMPLEXITY_TOLERANCE", 1)
	viper.SetDefault("MATERIALS_REQUEST_DELAY_MS", 1000)
	viper.SetDefault("MATERIALS_FETCH_TIMEOUT_SECONDS", 10)
	viper.SetDefault("MATERIALS_DEFAULT_RESULTS", 5)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")

	config.Quiz.DefaultQuestions = viper.GetInt("QUIZ_DEFAULT_QUESTIONS")
	config.Analyzer.SampleBudget = viper.GetInt("ANALYZER_SAMPLE_BUDGET")
	config.Analyzer.MinTextLength = viper.GetInt("ANALYZER_MIN_TEXT_LENGTH")
	config.Materials.ComplexityTolerance = viper.GetInt("MATERIALS_COMPLEXITY_TOLERANCE")
	config.Materials.RequestDelay = time.Duration(viper.GetInt("MATERIALS_REQUEST_DELAY_MS")) * time.Millisecond
	config.Materials.FetchTimeout = time.Duration(viper.GetInt("MATERIALS_FETCH_TIMEOUT_SECONDS")) * time.Second
	config.Materials.DefaultResults = viper.GetInt("MATERIALS_DEFAULT_RESULTS")

	log.Info().Str("port", config.Server.Port).Msg("Config loaded")
	return &config, nil
}
