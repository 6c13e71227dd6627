// Package config provides configuration management for compose-mode.
//
// Settings are loaded from up to three layers, later layers overriding
// earlier ones field by field:
//
//  1. Built-in defaults (see GetDefaultSettings)
//  2. User configuration (~/.config/compose-mode/config.yaml)
//  3. Project configuration (./.compose-mode/config.yaml in the working directory)
//
// A configuration file looks like:
//
//	modesFile: compose-modes.yml
//	output: docker-compose.yml
//	stateFile: .compose-mode.state
//	composeCommand: ["docker", "compose"]
//	stopAtGit: true
//
// Command line flags are applied on top by the cmd package.
package config
