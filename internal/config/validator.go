package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the loaded configuration against its struct tags
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fields []string
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
	}
	return fmt.Errorf("invalid configuration: %w", err)
}

// Warnings reports non-fatal issues such as example credentials left in place
func (c *Config) Warnings() []string {
	var warnings []string

	if c.UsesPostgres() && c.DBPassword == ExamplePassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.UsesPostgres() && c.DBPassword == "" {
		warnings = append(warnings, "DB_PASSWORD is empty")
	}
	if c.RecipeSeedPath == "" && !c.UsesPostgres() {
		warnings = append(warnings, "in-memory storage without RECIPE_SEED_PATH starts with an empty recipe catalog")
	}
	if c.RecipeReloadInterval > 0 && c.RecipeSeedPath == "" {
		warnings = append(warnings, "RECIPE_RELOAD_INTERVAL is ignored without RECIPE_SEED_PATH")
	}

	return warnings
}
