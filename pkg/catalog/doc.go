// Package catalog provides the message table used by the Ketchup form
// validation plugin: an immutable, ordered mapping from validation rule names
// to human-readable message templates.
//
// Templates may reference positional arguments supplied by the validation
// rule, written as $arg1, $arg2 and so on. The catalog only stores and
// renders them; deciding which rule applies to a field is left to the
// validation engine.
//
// # Basic Usage
//
// The built-in English table is available without configuration:
//
//	tmpl, ok := catalog.Default().Lookup(catalog.RuleMinLength)
//	// "This field must have a minimal length of $arg1.", true
//
//	msg, _ := catalog.Default().Message(catalog.RuleRange, 1, 10)
//	// "Must be between 1 and 10."
//
// Unknown rules are reported through the boolean result, never as an error:
//
//	_, ok := catalog.Default().Lookup("not_a_real_rule") // ok == false
//
// # Custom Catalogs
//
// A catalog is built once with New and never changes afterwards. Start from
// the defaults and override individual messages, or load a whole translated
// table from a file:
//
//	c, err := catalog.New(
//		catalog.WithBase(catalog.Default()),
//		catalog.WithMessage(catalog.RuleEmail, "Please enter a valid email address."),
//		catalog.WithFile(os.DirFS("config"), "messages.de.yaml"),
//	)
//
// Files are flat rule -> template objects in JSON, YAML or TOML. Overriding a
// rule keeps its position; new rules are appended in alphabetical order.
//
// # Placeholders
//
// Format leaves placeholders without a matching argument untouched and
// ignores surplus arguments. FormatStrict returns ErrMissingArgument instead.
// CheckArity verifies a catalog against the argument count of each rule:
//
//	if err := c.CheckArity(catalog.DefaultArity()); err != nil {
//		// a translated template dropped or added a placeholder
//	}
//
// # Export
//
// WriteJS renders the catalog as the script the browser plugin expects:
//
//	_ = c.WriteJS(w, catalog.DefaultJSTarget)
//	// $.fn.ketchup.messages = { "required": "This field is required.", ... };
//
// # Thread Safety
//
// A *Catalog has no mutating methods and is safe for concurrent use.
package catalog
