// Package output renders CLI results as a table, JSON or YAML.
//
// Values that know how to lay themselves out implement Tabular; everything
// else falls back to indented JSON in table mode.
package output
