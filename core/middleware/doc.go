// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation protecting every route registered after it.
//   - rayid: a request id (RayID) for every incoming request, stored in the
//     context locals and echoed in the response headers for tracing.
package middleware
