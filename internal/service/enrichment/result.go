package enrichment

// Result reports what the pipeline accomplished for one post.
//
// NotificationsCreated is the attempted fan-out size. When the bulk insert
// fails the count is kept and NotificationsConfirmed is false, so callers
// can tell a confirmed fan-out from an uncertain one.
type Result struct {
	Success                bool
	GeneratedDescription   string
	NotificationsCreated   int
	NotificationsConfirmed bool
}
