package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// fieldEnv maps struct fields to the variable that sets them
var fieldEnv = map[string]string{
	"Port":          EnvPort,
	"LogLevel":      EnvLogLevel,
	"LogFormat":     EnvLogFormat,
	"Environment":   EnvEnvironment,
	"ServiceName":   EnvServiceName,
	"Version":       EnvVersion,
	"StorageDriver": EnvStorageDriver,
	"StoragePath":   EnvStoragePath,
	"TimeMode":      EnvTimeMode,
	"PollInterval":  EnvPollInterval,
	"CacheTTL":      EnvCacheTTL,
}

var validate = validator.New()

// Validate checks the loaded values and names the offending variable
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf(ErrMsgInvalidConfig, err)
	}

	fe := verrs[0]
	name, ok := fieldEnv[fe.Field()]
	if !ok {
		name = fe.Field()
	}
	rule := fe.Tag()
	if fe.Param() != "" {
		rule += "=" + fe.Param()
	}
	return fmt.Errorf(ErrMsgInvalidField, name, fmt.Sprint(fe.Value()), rule)
}

// Warnings returns non-fatal remarks about a valid configuration
func Warnings(cfg *Config) []string {
	var warnings []string
	if cfg.StorageDriver == "memory" {
		warnings = append(warnings, WarnMsgMemoryStorage)
	}
	if cfg.TimeMode == DefaultTimeMode && cfg.Environment == "prod" {
		warnings = append(warnings, WarnMsgDemoInProd)
	}
	return warnings
}
