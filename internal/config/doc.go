// Package config defines the alarm clock settings and provides helpers to
// load, validate and save them in YAML format.
//
// The Config type holds the scheduler poll interval and the log level. The
// settings file is optional: a missing file yields the defaults.
package config
