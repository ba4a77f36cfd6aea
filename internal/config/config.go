package config

import (
	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type AWSConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

type TablesConfig struct {
	Quotes         string
	Sales          string
	SaleServices   string
	Authorizations string
}

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	From       string
	// FollowUpTo is the operator number that receives negotiation requests.
	FollowUpTo string
}

type AuthConfig struct {
	// AccessSecret enables actor stamping from bearer tokens when set.
	AccessSecret string
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	AWS         AWSConfig
	Tables      TablesConfig
	Twilio      TwilioConfig
	Auth        AuthConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		AWS: AWSConfig{
			Region:          v.GetString("AWS_REGION"),
			Endpoint:        v.GetString("DYNAMODB_ENDPOINT"),
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
		},
		Tables: TablesConfig{
			Quotes:         v.GetString("QUOTES_TABLE"),
			Sales:          v.GetString("SALES_TABLE"),
			SaleServices:   v.GetString("SALE_SERVICES_TABLE"),
			Authorizations: v.GetString("AUTHORIZATIONS_TABLE"),
		},
		Twilio: TwilioConfig{
			AccountSID: v.GetString("TWILIO_ACCOUNT_SID"),
			AuthToken:  v.GetString("TWILIO_AUTH_TOKEN"),
			From:       v.GetString("TWILIO_FROM"),
			FollowUpTo: v.GetString("TWILIO_FOLLOWUP_TO"),
		},
		Auth: AuthConfig{
			AccessSecret: v.GetString("JWT_ACCESS_SECRET"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}
	if cfg.AWS.Region == "" {
		cfg.AWS.Region = "us-east-1"
	}
	// Local DynamoDB does not validate credentials, but the SDK requires them.
	if cfg.AWS.AccessKeyID == "" {
		cfg.AWS.AccessKeyID = "local"
	}
	if cfg.AWS.SecretAccessKey == "" {
		cfg.AWS.SecretAccessKey = "local"
	}
	if cfg.Tables.Quotes == "" {
		cfg.Tables.Quotes = "quotes"
	}
	if cfg.Tables.Sales == "" {
		cfg.Tables.Sales = "sales"
	}
	if cfg.Tables.SaleServices == "" {
		cfg.Tables.SaleServices = "sale_services"
	}
	if cfg.Tables.Authorizations == "" {
		cfg.Tables.Authorizations = "authorizations"
	}

	return cfg, nil
}
