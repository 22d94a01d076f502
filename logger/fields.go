package logger

import "time"

// Field keys shared by every package.
const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldOperation = "operation"
	FieldStatus    = "status"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
	FieldDomain    = "domain"
	FieldPath      = "path"
	FieldVerb      = "verb"
	FieldURL       = "url"
	FieldSchema    = "schema"
)

// Fields builds a field map from alternating keys and values. Pairs with a
// non-string key and a trailing key without value are dropped.
//
//	log.Debug("dispatch", logger.Fields(logger.FieldDomain, "user", logger.FieldPath, "show"))
func Fields(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// AddError sets the error field of fields, allocating the map when nil.
func AddError(fields map[string]any, err error) map[string]any {
	if fields == nil {
		fields = make(map[string]any, 1)
	}
	fields[FieldError] = err.Error()
	return fields
}

// AddDuration sets the duration field of fields in milliseconds.
func AddDuration(fields map[string]any, d time.Duration) map[string]any {
	if fields == nil {
		fields = make(map[string]any, 1)
	}
	fields[FieldDuration] = d.Milliseconds()
	return fields
}
