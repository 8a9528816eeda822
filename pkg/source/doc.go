// Package source provides form collaborators for the validation engine.
//
// A collaborator supplies input values and checkbox states and receives the
// messages produced by validation. Memory is the in-memory implementation;
// FromRequest, FromValues and FromMap fill one from an HTTP form submission,
// url.Values or decoded YAML/JSON data respectively.
//
//	src, err := source.FromRequest(r)
//	if err != nil {
//		return err
//	}
//	f := form.New(src)
//	if !f.Submit() {
//		render(src.Messages())
//	}
package source
