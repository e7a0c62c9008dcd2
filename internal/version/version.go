package version

import (
	"encoding/json"
	"log/slog"
	"os"
)

type Info struct {
	Version string `json:"version"`
}

func Load() Info {
	data, err := os.ReadFile("version.json")
	if err != nil {
		slog.Warn("could not read version.json", "error", err)
		return Info{Version: "0.0.0"}
	}
	var info Info
	if err := json.Unmarshal(data, &info); err != nil {
		slog.Warn("could not parse version.json", "error", err)
		return Info{Version: "0.0.0"}
	}
	return info
}
