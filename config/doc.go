// Package config loads the layered runtime configuration for ContentForge:
// built-in defaults, an optional YAML file, and CONTENTFORGE_* environment
// variables, with later layers overriding earlier ones.
package config
