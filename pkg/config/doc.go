// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Parsing is delegated to github.com/caarlos0/env, so any struct with
// `env` tags works:
//
//	type AppConfig struct {
//		Capacity int  `env:"TOAST_CAPACITY" envDefault:"1"`
//		Debug    bool `env:"DEBUG" envDefault:"false"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Load is stateless: every call re-reads the environment, which keeps
// tests with t.Setenv predictable.
package config
