package run

import (
	"fmt"
	"strconv"

	"github.com/jiaming2012/etrade-orders/src/orderservices"
	"github.com/jiaming2012/etrade-orders/src/utils"
)

type Config struct {
	AccountID   int
	Env         string
	BaseURL     string
	Credentials orderservices.Credentials
}

// LoadConfig reads the ETRADE_* variables. OAuth1 keys win over a bare
// access token.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Env:     utils.GetEnvOrDefault("ETRADE_ENV", "sandbox"),
		BaseURL: utils.GetEnvOrDefault("ETRADE_BASE_URL", ""),
	}

	if v := utils.GetEnvOrDefault("ETRADE_ACCOUNT_ID", ""); v != "" {
		accountID, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("LoadConfig: invalid ETRADE_ACCOUNT_ID: %w", err)
		}
		cfg.AccountID = accountID
	}

	accessToken, err := utils.GetEnv("ETRADE_ACCESS_TOKEN")
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}

	consumerKey := utils.GetEnvOrDefault("ETRADE_CONSUMER_KEY", "")
	if consumerKey == "" {
		cfg.Credentials = orderservices.NewTokenCredentials(accessToken)
		return cfg, nil
	}

	consumerSecret, err := utils.GetEnv("ETRADE_CONSUMER_SECRET")
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}

	accessTokenSecret, err := utils.GetEnv("ETRADE_ACCESS_TOKEN_SECRET")
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}

	cfg.Credentials = orderservices.NewOAuth1Credentials(consumerKey, consumerSecret, accessToken, accessTokenSecret)
	return cfg, nil
}

func (c *Config) RequireAccountID(flagValue int) (int, error) {
	if flagValue > 0 {
		return flagValue, nil
	}

	if c.AccountID > 0 {
		return c.AccountID, nil
	}

	return 0, fmt.Errorf("account id is required: pass --account-id or set ETRADE_ACCOUNT_ID")
}
