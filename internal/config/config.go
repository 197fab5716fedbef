// Package config loads the backend configuration from the environment.
//
// A .env file in the working directory is read first if it exists. Variables
// that are already set in the environment take precedence over the file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// BillPolicy selects how the current bill of a credit card is computed.
type BillPolicy string

const (
	// BillPolicyWindow sums expenses in the active billing cycle.
	BillPolicyWindow BillPolicy = "window"

	// BillPolicyPending sums all pending expenses on the card.
	BillPolicyPending BillPolicy = "pending"
)

type Config struct {
	APIURL *url.URL
	Port   string

	// Directory for the SQLite database file
	DataDir string

	LogFormat   string // "human" or "json", empty selects by GinMode
	GinMode     string
	CORSOrigins []string
	EnablePprof bool

	BillPolicy              BillPolicy
	RecentTransactionsLimit int
	TopCategoriesLimit      int
	ReminderDays            int
}

var ErrAPIURLNotSet = errors.New("the API_URL environment variable must be set")

// Load reads the configuration. It returns an error listing every invalid
// value that was found.
func Load() (*Config, error) {
	// A missing .env file is fine, all values can come from the environment
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DataDir:     getEnv("DATA_DIR", "data"),
		LogFormat:   os.Getenv("LOG_FORMAT"),
		GinMode:     getEnv("GIN_MODE", "release"),
		CORSOrigins: strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof: os.Getenv("ENABLE_PPROF") == "true",
		BillPolicy:  BillPolicy(getEnv("CREDIT_CARD_BILL_POLICY", string(BillPolicyWindow))),
	}

	var problems []string

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		problems = append(problems, ErrAPIURLNotSet.Error())
	} else {
		u, err := url.Parse(strings.TrimSuffix(apiURL, "/"))
		if err != nil {
			problems = append(problems, fmt.Sprintf("invalid API_URL '%s': %s", apiURL, err))
		}
		cfg.APIURL = u
	}

	ints := []struct {
		key    string
		target *int
		def    int
	}{
		{"RECENT_TRANSACTIONS_LIMIT", &cfg.RecentTransactionsLimit, 5},
		{"TOP_CATEGORIES_LIMIT", &cfg.TopCategoriesLimit, 5},
		{"REMINDER_DAYS", &cfg.ReminderDays, 7},
	}

	for _, i := range ints {
		v, err := getEnvInt(i.key, i.def)
		if err != nil {
			problems = append(problems, err.Error())
			continue
		}
		*i.target = v
	}

	if err := cfg.Validate(); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("configuration is invalid: %s", strings.Join(problems, "; "))
	}

	return cfg, nil
}

// Validate checks the values that are not verified while parsing.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number between 1 and 65535", c.Port))
	}

	if c.BillPolicy != BillPolicyWindow && c.BillPolicy != BillPolicyPending {
		problems = append(problems, fmt.Sprintf("invalid CREDIT_CARD_BILL_POLICY '%s': must be one of window, pending", c.BillPolicy))
	}

	if c.LogFormat != "" && c.LogFormat != "human" && c.LogFormat != "json" {
		problems = append(problems, fmt.Sprintf("invalid LOG_FORMAT '%s': must be one of human, json", c.LogFormat))
	}

	for name, v := range map[string]int{
		"RECENT_TRANSACTIONS_LIMIT": c.RecentTransactionsLimit,
		"TOP_CATEGORIES_LIMIT":      c.TopCategoriesLimit,
		"REMINDER_DAYS":             c.ReminderDays,
	} {
		if v < 1 {
			problems = append(problems, fmt.Sprintf("%s must be at least 1", name))
		}
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}

	return nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}

	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s '%s': must be a number", key, v)
	}
	return i, nil
}
