package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [StructuredConfig] with json tags for the
// optional configuration file.
type StructuredJSONConfig struct {
	Socket struct {
		Path       string `json:"path"`
		Mode       string `json:"mode"`
		Backlog    int    `json:"backlog"`
		Concurrent bool   `json:"concurrent"`
	} `json:"socket,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Socket: Socket{
			Path:       jsonCfg.Socket.Path,
			Mode:       jsonCfg.Socket.Mode,
			Backlog:    jsonCfg.Socket.Backlog,
			Concurrent: jsonCfg.Socket.Concurrent,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
