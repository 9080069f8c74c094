package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverDynamoDB = "dynamodb"
)

type DatabaseConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

type DynamoConfig struct {
	Region         string
	Endpoint       string
	EmployeeTable  string
	MealTable      string
	SalaryTable    string
	DeductionTable string
}

type ReportConfig struct {
	CompanyName    string
	CurrencySymbol string
	Locale         string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

type Config struct {
	AppEnv      string
	Port        string
	StoreDriver string
	MaxRetries  int

	Database    DatabaseConfig
	Dynamo      DynamoConfig
	RedisAddr   string
	KafkaBroker string

	Report    ReportConfig
	RateLimit RateLimitConfig
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "8080")
	v.SetDefault("STORE_DRIVER", DriverPostgres)
	v.SetDefault("CONNECT_MAX_RETRIES", 5)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "messbill")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")

	v.SetDefault("DYNAMODB_REGION", "ap-south-1")
	v.SetDefault("DYNAMODB_EMPLOYEE_TABLE", "Employees")
	v.SetDefault("DYNAMODB_MEAL_TABLE", "Attendance")
	v.SetDefault("DYNAMODB_SALARY_TABLE", "SalaryDetails")
	v.SetDefault("DYNAMODB_DEDUCTION_TABLE", "Deductions")

	v.SetDefault("REDIS_ADDR", "localhost:6379")

	v.SetDefault("COMPANY_NAME", "Sri Jayajothi and Company Private Limited")
	v.SetDefault("CURRENCY_SYMBOL", "₹")
	v.SetDefault("REPORT_LOCALE", "en-IN")

	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("RATE_LIMIT_BURST", 40)
}

// Load reads configuration from the environment. Call godotenv before it
// when a .env file should be honoured.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := Config{
		AppEnv:      v.GetString("APP_ENV"),
		Port:        v.GetString("PORT"),
		StoreDriver: strings.ToLower(v.GetString("STORE_DRIVER")),
		MaxRetries:  v.GetInt("CONNECT_MAX_RETRIES"),
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			Port:     v.GetString("DB_PORT"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Dynamo: DynamoConfig{
			Region:         v.GetString("DYNAMODB_REGION"),
			Endpoint:       v.GetString("DYNAMODB_ENDPOINT"),
			EmployeeTable:  v.GetString("DYNAMODB_EMPLOYEE_TABLE"),
			MealTable:      v.GetString("DYNAMODB_MEAL_TABLE"),
			SalaryTable:    v.GetString("DYNAMODB_SALARY_TABLE"),
			DeductionTable: v.GetString("DYNAMODB_DEDUCTION_TABLE"),
		},
		RedisAddr:   v.GetString("REDIS_ADDR"),
		KafkaBroker: v.GetString("KAFKA_BROKER"),
		Report: ReportConfig{
			CompanyName:    v.GetString("COMPANY_NAME"),
			CurrencySymbol: v.GetString("CURRENCY_SYMBOL"),
			Locale:         v.GetString("REPORT_LOCALE"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	if cfg.StoreDriver != DriverPostgres && cfg.StoreDriver != DriverDynamoDB {
		return Config{}, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = 1
	}

	return cfg, nil
}
