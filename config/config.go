package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	ML       ML
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

// ML holds settings for the performance prediction pipeline.
type ML struct {
	// ModelDir is where the trained model and scaler artifacts live.
	ModelDir string
	// VersionPrefix is prepended to the generated model version tag.
	VersionPrefix string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("ML_MODEL_DIR", "ml/models")
	viper.SetDefault("ML_VERSION_PREFIX", "v1.0")

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

	config.ML.ModelDir = viper.GetString("ML_MODEL_DIR")
	config.ML.VersionPrefix = viper.GetString("ML_VERSION_PREFIX")

	log.Info().Str("port", config.Server.Port).Str("model_dir", config.ML.ModelDir).Msg("Config loaded")
	return &config, nil
}
