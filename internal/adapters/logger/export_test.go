// export_test.go exports private functions for white-box testing.
package logger

var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)

// Entry accessors for tests.
func (e errorEntry) Message() string          { return e.message }
func (e errorEntry) Metadata() map[string]any { return e.metadata }
