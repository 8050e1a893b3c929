// Package validation provides input validation for logkit configuration.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation is
// used by the appender, filter, and formatter config types.
//
// # Struct Tag Validation
//
//	type MySQLConfig struct {
//	    Host string `mapstructure:"host" validate:"required"`
//	    User string `mapstructure:"user" validate:"required"`
//	}
//	err := validation.ValidateStruct(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("name", name)
//	err := v.Validate()
package validation
