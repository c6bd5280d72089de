package opengate

import "context"

// Opener launches external resources with the operating system. The Gate
// only ever calls it after the scope has permitted the resource (except
// Reveal, which is ungated).
//
// All launches are detached: implementations hand off the process and return
// without waiting for it to exit. Once launched, an open is not retractable.
//
// Implementations must be safe for concurrent use by multiple goroutines.
type Opener interface {
	// Open hands the resource to the system default handler.
	Open(ctx context.Context, resource string) error

	// OpenWith launches the named program with the resource as its argument.
	OpenWith(ctx context.Context, resource, program string) error

	// Reveal shows the path in the system file manager.
	Reveal(ctx context.Context, path string) error
}
