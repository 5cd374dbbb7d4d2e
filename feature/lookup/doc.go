// Package lookup exposes the division resolver over HTTP.
//
// # HTTP Endpoints
//
//   - GET /divisions/revisions : known revisions, newest first, and the current one.
//   - GET /divisions/:code : the division in the current revision. Supports
//     ?revision=<id> for a specific revision and ?search=true to pick the most
//     recent revision that contains the code.
//   - GET /divisions/:code/stack : only the province -> prefecture -> county chain.
//
// Unknown codes and revisions return 404. A division whose parent rows are
// missing from the dataset returns 500, since that is a dataset defect.
package lookup
