package cmd

import (
	"os"

	"github.com/spf13/viper"

	"github.com/foxtail/fxt/internal/node"
)

// buildNodeFromFile reads a Node JSON document (spec §6) from path and
// constructs a *node.Node via the standard factory registry. Arena sizes
// come from host config (spec SPEC_FULL.md A: "host-level settings that
// are NOT part of the Node JSON document itself"), defaulting generously
// for the mock-hardware/demo scale this CLI targets.
func buildNodeFromFile(path string) (*node.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	pointCapacity := viper.GetInt("point.capacity")
	if pointCapacity == 0 {
		pointCapacity = 4096
	}
	generalBytes := viper.GetInt("arena.general_bytes")
	if generalBytes == 0 {
		generalBytes = 1 << 16
	}
	cardBytes := viper.GetInt("arena.card_bytes")
	if cardBytes == 0 {
		cardBytes = 1 << 16
	}
	haBytes := viper.GetInt("arena.ha_bytes")
	if haBytes == 0 {
		haBytes = 1 << 16
	}

	b := node.NewBuilder(pointCapacity, generalBytes, cardBytes, haBytes)
	node.RegisterStandardFactories(b)
	return b.Build(data)
}
