// Package confloader loads layered configuration with koanf.
//
// Layers, lowest priority first:
//
//  1. Values already present in the target struct
//  2. YAML configuration files, in the order given
//  3. Environment variables (MERGINGTON_ prefix, "__" separates levels)
//  4. Overrides passed with WithOverrides, usually from command-line flags
//
// Watcher is an fsnotify based notifier that runs per-file handlers, used
// to hot reload the teacher credentials and the TLS key pair.
package confloader
