// Package registry resolves the latest published version of a package.
//
// The Client interface is the seam services depend on; HTTPClient is the
// production implementation speaking the npm registry's "latest" dist-tag
// endpoint. Requests honor the caller's context but enforce no timeout of
// their own.
package registry
