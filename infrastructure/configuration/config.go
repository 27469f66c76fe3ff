package configuration

import (
	"fmt"
	"os"
	"strconv"

	"walkingtube/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App         App         `json:"app"`
	Database    Database    `json:"database"`
	RedisClient RedisClient `json:"redisClient"`
	Mapbox      Mapbox      `json:"mapbox"`
	Pubsub      Pubsub      `json:"pubsub"`
	ServiceBus  ServiceBus  `json:"serviceBus"`
}

type App struct {
	Port      int    `json:"port"`
	SecretKey string `json:"secretKey"`
}

type Database struct {
	Psql Db `json:"psql"`
}

type Db struct {
	Name     string `json:"name"`
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	SSLMode  string `json:"sslMode"`
}

type RedisClient struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Mapbox configures the basemap style handed to clients and the forward
// geocoding lookup.
type Mapbox struct {
	AccessToken string `json:"accessToken"`
	Style       string `json:"style"`
	Language    string `json:"language"`
	SearchLimit int    `json:"searchLimit"`
}

type Pubsub struct {
	ProjectID string `json:"projectID"`
	Topic     string `json:"topic"`
}

type ServiceBus struct {
	Namespace string `json:"namespace"`
	Queue     string `json:"queue"`
}

var C Config

func init() {
	LoadConfig()
	Refresh()
}

// Refresh re-applies environment fallbacks on top of the loaded config.
// Call it again after loading env files at startup, since package init runs
// before main gets the chance to load them.
func Refresh() {
	initDatabase(&C)
	initApp(&C)
	initMapbox(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initDatabase(C *Config) {
	if C.Database.Psql.Name == "" {
		C.Database.Psql.Name = os.Getenv("DB_NAME")
	}
	if C.Database.Psql.Host == "" {
		C.Database.Psql.Host = os.Getenv("DB_HOST")
	}
	if C.Database.Psql.Port == "" {
		C.Database.Psql.Port = os.Getenv("DB_PORT")
	}
	if C.Database.Psql.User == "" {
		C.Database.Psql.User = os.Getenv("DB_USER")
	}
	if C.Database.Psql.Password == "" {
		C.Database.Psql.Password = os.Getenv("DB_PASSWORD")
	}
	if C.Database.Psql.Port == "" {
		C.Database.Psql.Port = "5432"
	}
	if C.Database.Psql.SSLMode == "" {
		C.Database.Psql.SSLMode = "disable"
	}
}

func initApp(C *Config) {
	// SECRET_KEY from environment overrides the config file when provided.
	if v := os.Getenv("SECRET_KEY"); v != "" {
		C.App.SecretKey = v
	}
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 10010
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 10010
	}
}

func initMapbox(C *Config) {
	if v := os.Getenv("MAPBOX_TOKEN"); v != "" {
		C.Mapbox.AccessToken = v
	}
	if C.Mapbox.Style == "" {
		C.Mapbox.Style = "mapbox://styles/mapbox/dark-v11"
	}
	if C.Mapbox.Language == "" {
		C.Mapbox.Language = "en"
	}
	if C.Mapbox.SearchLimit == 0 {
		C.Mapbox.SearchLimit = 5
	}
}

// MissingRequired lists the required settings that resolved to nothing from
// both the config file and the environment. A non-empty result is a blocking
// operator error, not a per-request condition.
func MissingRequired() []string {
	var missing []string
	if C.Database.Psql.Host == "" {
		missing = append(missing, "DB_HOST")
	}
	if C.Database.Psql.Name == "" {
		missing = append(missing, "DB_NAME")
	}
	if C.Database.Psql.User == "" {
		missing = append(missing, "DB_USER")
	}
	if C.App.SecretKey == "" {
		missing = append(missing, "SECRET_KEY")
	}
	if C.Mapbox.AccessToken == "" {
		missing = append(missing, "MAPBOX_TOKEN")
	}
	return missing
}
