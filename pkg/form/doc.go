// Package form validates a registration form.
//
// A Form reads input values from a Source, checks each field with the rules
// package, records per-field validity in a field.Registry and sends one
// message per field back to the Source. Cross-field checks tie the birth date
// to the stated age and the country to its dialing code; an optional file
// upload becomes mandatory when the secrets checkbox is ticked.
//
// Basic usage:
//
//	src := source.NewMemory().
//		Set(field.FirstName, "John").
//		Set(field.Surname, "Doe")
//	f := form.New(src, form.WithLogger(log))
//	if !f.Submit() {
//		for id, msg := range src.Messages() {
//			fmt.Println(id, msg)
//		}
//	}
//
// Field checks run before the cross-field checks, so a date of birth message
// is never overwritten by the check of an individual date part.
package form
