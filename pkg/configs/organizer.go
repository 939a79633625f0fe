package configs

import (
	"github.com/spf13/viper"
)

const (
	DefaultSnapshotRetentionDays = 30          // soft-deleted batches older than this are purged
	DefaultPurgeCron             = "0 3 * * *" // nightly purge schedule
)

// OrganizerConfig holds file organization engine settings.
type OrganizerConfig struct {
	SnapshotRetentionDays int    `mapstructure:"snapshot_retention_days" rule:"min=1,max=3650"`
	PurgeCron             string `mapstructure:"purge_cron"`
	DefaultOrganizeByDate bool   `mapstructure:"default_organize_by_date"`
	DefaultOrganizeByType bool   `mapstructure:"default_organize_by_type"`
	DefaultOrganizeBySize bool   `mapstructure:"default_organize_by_size"`
}

// setDefaults registers organizer config defaults.
func (c *OrganizerConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("organizer.snapshot_retention_days", DefaultSnapshotRetentionDays)
	v.SetDefault("organizer.purge_cron", DefaultPurgeCron)
	v.SetDefault("organizer.default_organize_by_date", true)
	v.SetDefault("organizer.default_organize_by_type", true)
	v.SetDefault("organizer.default_organize_by_size", false)
}
