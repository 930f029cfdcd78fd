// Package config manages user-level settings stored at ~/.create-workspace/config.yaml.
// Every key can also be supplied through a CREATE_WORKSPACE_* environment
// variable, which takes precedence over the file.
package config
