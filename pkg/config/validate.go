package config

import "fmt"

// Validate checks the config for structural correctness.
func Validate(c *Config) []error {
	var errs []error

	if c.Version != 1 {
		errs = append(errs, fmt.Errorf("version must be 1, got %d", c.Version))
	}

	if c.Limit < 1 {
		errs = append(errs, fmt.Errorf("limit must be positive, got %d", c.Limit))
	}

	switch c.Output {
	case OutputTable, OutputJSON:
	case "":
		errs = append(errs, fmt.Errorf("output is required"))
	default:
		errs = append(errs, fmt.Errorf("output must be table or json; got %q", c.Output))
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	return errs
}
