package ports

// Resolver maps between module specifiers, filesystem paths, and the request
// paths the server can actually serve.
//
//go:generate mockgen -destination=mocks/resolver_mock.go -package=mocks -source=resolver.go
type Resolver interface {
	// RequestForPackage resolves a bare package id to a servable request
	// path. The second return is false when the package cannot be resolved.
	RequestForPackage(id string) (string, bool)

	// RequestForFile converts an absolute file path under the project root
	// to its server-visible request path.
	RequestForFile(path string) string

	// FileForModule locates the file backing a module-namespace id.
	FileForModule(id string) (string, bool)
}
