// Package empty contains no calls at all.
package empty

type Handle <-chan error
