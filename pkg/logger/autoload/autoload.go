// Package autoload initializes the global logger from the environment when
// imported for side effect.
package autoload

import (
	configx "github.com/Maadhav/rental-ai-agent/pkg/config"
	logx "github.com/Maadhav/rental-ai-agent/pkg/logger"
)

func init() {
	logx.Init(*configx.MustNew[logx.Config]("LOG"))
}
