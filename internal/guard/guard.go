// Package guard decides, per navigation, whether a requested path may render
// or must redirect. The decision depends only on its inputs so it can be
// evaluated without any request or browsing context.
package guard

// LandingPath is the default destination for authenticated users.
const LandingPath = "/"

// Decision is the outcome of evaluating a navigation.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Evaluate applies the access rules:
//
//  1. authenticated and requesting the public path -> redirect to landing
//  2. not authenticated and requesting anything else -> redirect to the public path
//  3. otherwise -> allow
func Evaluate(isAuthenticated bool, path, publicPath string) Decision {
	if isAuthenticated && path == publicPath {
		return Decision{RedirectTo: LandingPath}
	}
	if !isAuthenticated && path != publicPath {
		return Decision{RedirectTo: publicPath}
	}
	return Decision{Allow: true}
}
