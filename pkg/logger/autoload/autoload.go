// Package autoload initializes the global logger from LOGGER_* environment
// variables on import.
package autoload

import (
	configx "github.com/tanpawarit/EvoAI-Commerce-Agent/pkg/config"
	logx "github.com/tanpawarit/EvoAI-Commerce-Agent/pkg/logger"
)

func init() {
	cfg, err := configx.New[logx.Config]("LOGGER")
	if err != nil {
		logx.Init()
		return
	}
	logx.Init(*cfg)
}
