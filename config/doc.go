// Package config loads declarative logging configuration.
//
// It uses Viper to read a JSON or YAML document describing loggers,
// appenders, filters, and formatters by `type`-discriminated maps, and
// builds the object graph through the package registries. A .env file
// can be preloaded, and LOGKIT_-prefixed environment variables override
// document values.
//
// # Document shape
//
//	{
//	  "loggers": [
//	    {
//	      "name": "app",
//	      "level": "INFO",
//	      "appenders": [
//	        {"type": "console", "formatter": {"type": "json"},
//	         "filters": [{"type": "level", "level": "WARNING"}]}
//	      ]
//	    }
//	  ]
//	}
package config
