// Package connection is the request dispatcher for beagle-cli.
//
// Every command funnels through one code path here: build an
// authenticated HTTP request (bearer token, per-invocation request ID,
// user agent), issue it synchronously, and hand back a Result carrying
// the raw JSON body plus the status context needed for diagnostics.
// Non-success statuses are not exceptions: Result records them and
// StatusError renders the reason phrase together with the originally
// sent request body.
package connection
