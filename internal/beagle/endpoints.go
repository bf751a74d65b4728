package beagle

// Endpoint paths, relative to the configured base URL.
//
// The catalog is read-only: commands substitute identifiers into item paths
// via Item, never by editing these constants.
const (
	PathAuth    = "api-token-auth/"
	PathVerify  = "api-token-verify/"
	PathRefresh = "api-token-refresh/"

	PathStorage         = "v0/fs/storage/"
	PathFileTypes       = "v0/fs/file-types/"
	PathFiles           = "v0/fs/files/"
	PathFileGroups      = "v0/fs/file-groups/"
	PathPipelines       = "v0/run/pipelines/"
	PathRun             = "v0/run/api/"
	PathETLJobs         = "v0/etl/jobs/"
	PathImportRequests  = "v0/etl/import-requests/"
	PathOperatorRequest = "v0/run/operator/request/"
	PathPairing         = "v0/run/api/pairing/"
)

// Item returns the path addressing a single resource under a collection
// path, e.g. Item(PathFiles, "123") == "v0/fs/files/123/".
func Item(collection, id string) string {
	return collection + id + "/"
}
