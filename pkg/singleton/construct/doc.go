// Package construct provides the construction and type-resolution
// collaborators consumed by the singleton registry.
//
// A Catalog maps Go types to Builder functions and indexes enrolled types by
// name. It plays the role reflection-driven construction plays in dynamic
// languages, without requiring reflection at the call site: applications
// enroll the types they want constructible, optionally with a builder that
// accepts construction parameters.
//
// # Enrolling Types
//
// Enroll a type with a builder:
//
//	catalog := construct.NewCatalog()
//	construct.Register(catalog, func(params ...any) (*Client, error) {
//	    return NewClient(fmt.Sprint(params...))
//	})
//
// Or enroll a type without a builder, in which case parameterless
// construction yields a zero instance:
//
//	construct.EnrollType[*Config](catalog)
//
// # Construction and Resolution
//
//	v, err := catalog.New(construct.TypeOf[*Client](), "host:1234")
//	t, err := catalog.Resolve("*mypkg.Client")
//
// New falls back to zero-instance construction for types without a builder,
// but only when no parameters are given; parameterized construction requires
// a builder. Resolve only knows enrolled types.
//
// Catalog satisfies both the singleton.Constructor and singleton.Resolver
// interfaces.
package construct
