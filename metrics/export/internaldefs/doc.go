// Package internaldefs holds the shared metric name and help-text table
// consumed by the exporter bindings. It carries no behavior.
package internaldefs
