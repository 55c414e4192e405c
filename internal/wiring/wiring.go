// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.rok.dev/rok/internal/adapters/config"
	_ "go.rok.dev/rok/internal/adapters/installer"
	_ "go.rok.dev/rok/internal/adapters/logger"
	_ "go.rok.dev/rok/internal/adapters/prompt"
	_ "go.rok.dev/rok/internal/adapters/registry"
	_ "go.rok.dev/rok/internal/adapters/telemetry"
	_ "go.rok.dev/rok/internal/adapters/tree"
	// Register application nodes.
	_ "go.rok.dev/rok/internal/app"
	_ "go.rok.dev/rok/internal/exec"
	_ "go.rok.dev/rok/internal/resolve"
	_ "go.rok.dev/rok/internal/scaffold"
)
