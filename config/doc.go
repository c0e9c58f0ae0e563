// Package config loads pamsum settings from TOML and builds the logger.
//
// Example file:
//
//	[log]
//	level = "info"
//
//	[swap]
//	iterations = 10000
//	target_swaps = 0
//	max_tries_without_swap = 1000000
//
//	[splotch]
//	workers = 4
//
//	[runs]
//	workers = 2
//	seed = 42
//
//	[store]
//	driver = "sqlite"
//	path = "pamsum.db"
//
// Missing keys keep their Default values.
package config
