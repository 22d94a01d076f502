// Package schema declares the shape of GitHub v2 records and converts them
// between wire values and native Go values.
//
// A Schema is an explicit, ordered list of fields, each described by an
// Attribute. Schemas are built once, usually at package init, and are
// immutable afterwards:
//
//	var userSchema = schema.MustRegister(schema.MustNew("user", "A GitHub user",
//	    schema.Attr("login", "Login name"),
//	    schema.DateAttr("created_at", "Account creation time", datecodec.User),
//	))
//
// Records are built from decoded JSON maps. Declared keys run the attribute's
// ToNative conversion; undeclared keys are kept verbatim in an auxiliary map
// so fields the API adds later survive the round trip:
//
//	rec, err := userSchema.New(map[string]any{"login": "octocat", "created_at": "2011/01/25 18:44:36 -0800"})
//	for name, value := range rec.All() {
//	    fmt.Println(name, value)
//	}
package schema
