// Package config manages user-level settings stored at ~/.ymp/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the log level and the locale used when rendering repository names.
package config
