package jobs

// Job name constants, kept together for reference.
const (
	JobSnapshotPurge = "snapshot.purge"
	JobArchiveSweep  = "archive.sweep"
)

// Fallback cron expressions. The snapshot purge schedule normally comes from
// configuration (organizer.purge_cron).
const (
	CronSnapshotPurgeDefault = "0 3 * * *"
	CronArchiveSweep         = "30 4 * * 0"
)

// archiveMaxAgeDays is how long exported zip archives are kept in the bucket.
const archiveMaxAgeDays = 7
