// Package config manages user-level settings stored at ~/.kfrc/config.yaml.
// Values can be overridden with KFRC_-prefixed environment variables, e.g.
// KFRC_GRADLERIO_VERSION.
package config
