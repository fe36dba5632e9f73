// Package main generates docs/config_schema.json for the animations configuration file.
package main

import (
	"os"

	"github.com/yeisme/animations/pkg/utils/schema"
)

//go:generate go run github.com/yeisme/animations/cmd/schema
func main() {
	if err := os.MkdirAll("../../docs", 0755); err != nil {
		panic(err)
	}

	configSchemaFile, err := os.Create("../../docs/config_schema.json")
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = configSchemaFile.Close()
	}()

	if err := schema.GenConfigSchema(configSchemaFile); err != nil {
		panic(err)
	}
}
