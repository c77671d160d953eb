// schema writes the JSON schema of the readlist config, used by go:generate in pkg/config
package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/umputun/readlist/pkg/config"
)

func main() {
	outputPath := "schema.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	schema, err := config.GenerateSchema()
	if err != nil {
		log.Fatalf("[ERROR] can't generate readlist config schema: %v", err)
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("[ERROR] can't marshal readlist config schema: %v", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(outputPath, data, 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		log.Fatalf("[ERROR] can't write schema to %s: %v", outputPath, err)
	}
	log.Printf("[INFO] readlist config schema written to %s", outputPath)
}
