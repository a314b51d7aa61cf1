package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Store drivers accepted by store.driver.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverDynamoDB = "dynamodb"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Log      LogConfig
	Store    StoreConfig
	Database DatabaseConfig
	DynamoDB DynamoDBConfig
}

type AppConfig struct {
	Name string
	Env  string
	Port string
}

type LogConfig struct {
	Level    string // debug, info, warn, error
	Format   string // json, console
	Output   string // stdout, stderr, or file path
	SQLLevel string // silent, error, warn, info
}

type StoreConfig struct {
	Driver      string
	AutoMigrate bool
}

// DatabaseConfig holds the relational store settings. Path is only used by
// the sqlite driver.
type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	SSLMode      string
	Path         string
	MaxOpenConns int
	MaxIdleConns int
}

// DSN returns the postgres connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Tables          TableNames
}

type TableNames struct {
	Orders       string
	OrderItems   string
	Transactions string
	Contacts     string
	SavedEmails  string
}

// Load reads config.toml (optional) and environment overrides.
// Priority (highest to lowest):
//  1. PAINEL_ prefixed variables (e.g. PAINEL_STORE_DRIVER)
//  2. the plain AWS / table variables kept for local DynamoDB setups
//  3. config.toml
//  4. built-in defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("PAINEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindLegacyEnv(v); err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Log: LogConfig{
			Level:    v.GetString("log.level"),
			Format:   v.GetString("log.format"),
			Output:   v.GetString("log.output"),
			SQLLevel: v.GetString("log.sql_level"),
		},
		Store: StoreConfig{
			Driver:      strings.ToLower(v.GetString("store.driver")),
			AutoMigrate: v.GetBool("store.auto_migrate"),
		},
		Database: DatabaseConfig{
			Host:         v.GetString("database.host"),
			Port:         v.GetInt("database.port"),
			User:         v.GetString("database.user"),
			Password:     v.GetString("database.password"),
			DBName:       v.GetString("database.dbname"),
			SSLMode:      v.GetString("database.sslmode"),
			Path:         v.GetString("database.path"),
			MaxOpenConns: v.GetInt("database.max_open_conns"),
			MaxIdleConns: v.GetInt("database.max_idle_conns"),
		},
		DynamoDB: DynamoDBConfig{
			Region:          v.GetString("dynamodb.region"),
			Endpoint:        v.GetString("dynamodb.endpoint"),
			AccessKeyID:     v.GetString("dynamodb.access_key_id"),
			SecretAccessKey: v.GetString("dynamodb.secret_access_key"),
			Tables: TableNames{
				Orders:       v.GetString("dynamodb.tables.orders"),
				OrderItems:   v.GetString("dynamodb.tables.order_items"),
				Transactions: v.GetString("dynamodb.tables.transactions"),
				Contacts:     v.GetString("dynamodb.tables.contacts"),
				SavedEmails:  v.GetString("dynamodb.tables.saved_emails"),
			},
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "painel-pedidos")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.sql_level", "warn")

	v.SetDefault("store.driver", DriverPostgres)
	v.SetDefault("store.auto_migrate", false)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "painel")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.path", "painel.db")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)

	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.access_key_id", "local")
	v.SetDefault("dynamodb.secret_access_key", "local")
	v.SetDefault("dynamodb.tables.orders", "pedidos")
	v.SetDefault("dynamodb.tables.order_items", "itens_pedido")
	v.SetDefault("dynamodb.tables.transactions", "financeiro")
	v.SetDefault("dynamodb.tables.contacts", "contatos")
	v.SetDefault("dynamodb.tables.saved_emails", "emails_salvos")
}

// bindLegacyEnv keeps the unprefixed variables of local DynamoDB setups
// working. Prefixed variables still win.
func bindLegacyEnv(v *viper.Viper) error {
	bindings := map[string]string{
		"dynamodb.region":              "AWS_REGION",
		"dynamodb.endpoint":            "DYNAMODB_ENDPOINT",
		"dynamodb.access_key_id":       "AWS_ACCESS_KEY_ID",
		"dynamodb.secret_access_key":   "AWS_SECRET_ACCESS_KEY",
		"dynamodb.tables.orders":       "ORDERS_TABLE",
		"dynamodb.tables.order_items":  "ORDER_ITEMS_TABLE",
		"dynamodb.tables.transactions": "TRANSACTIONS_TABLE",
		"dynamodb.tables.contacts":     "CONTACTS_TABLE",
		"dynamodb.tables.saved_emails": "SAVED_EMAILS_TABLE",
		"app.port":                     "PORT",
	}
	for key, legacy := range bindings {
		prefixed := "PAINEL_" + strings.ToUpper(strings.NewReplacer(".", "_").Replace(key))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the settings that would otherwise fail late.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverPostgres, DriverSQLite, DriverDynamoDB:
	default:
		return fmt.Errorf("unsupported store.driver %q", c.Store.Driver)
	}
	if c.App.Port == "" {
		return errors.New("app.port is required")
	}
	if c.Store.Driver == DriverSQLite && c.Database.Path == "" {
		return errors.New("database.path is required for the sqlite driver")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
