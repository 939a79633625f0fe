// Package storage aggregates the storage backends: S3 object storage,
// the relational database, the KV store and the message queue.
//
// Example:
//
//	ctx := context.Background()
//	mgr, err := storage.Init(ctx)
//	if err != nil {
//	    // handle error
//	}
//
//	s3Client := mgr.GetS3Client()
//	dbClient := mgr.GetDBClient()
package storage

import (
	"context"
	"sync"

	"github.com/Himan2899/SmartFileOrganizer/pkg/configs"
	dbc "github.com/Himan2899/SmartFileOrganizer/pkg/internal/storage/db"
	kvc "github.com/Himan2899/SmartFileOrganizer/pkg/internal/storage/kv"
	mqc "github.com/Himan2899/SmartFileOrganizer/pkg/internal/storage/mq"
	s3c "github.com/Himan2899/SmartFileOrganizer/pkg/internal/storage/s3"
	nlog "github.com/Himan2899/SmartFileOrganizer/pkg/log"
)

// Manager aggregates all storage resources.
type Manager struct {
	S3 *s3c.Client
	DB *dbc.Client
	KV kvc.KVStore
	MQ *mqc.Client
}

var (
	mgr     *Manager
	mgrOnce sync.Once
)

// Init initializes the default storage manager from the global config.
// Repeated calls return the already initialized instance.
func Init(ctx context.Context) (*Manager, error) {
	var err error

	mgrOnce.Do(func() {
		cfg := configs.GetConfig()
		m := &Manager{}

		// DB
		dbi, e := dbc.New(ctx, &cfg.DB)
		if e != nil {
			err = e

			return
		}

		m.DB = dbi

		// S3
		s3i, e := s3c.New(ctx, &cfg.S3)
		if e != nil {
			err = e

			return
		}

		m.S3 = s3i

		// KV
		kvi, e := kvc.New(ctx, &cfg.KV)
		if e != nil {
			err = e

			return
		}

		m.KV = kvi

		// MQ
		mqi, e := mqc.New(ctx, &cfg.MQ)
		if e != nil {
			err = e

			return
		}

		m.MQ = mqi

		mgr = m

		nlog.Logger().Info().Msg("storage manager initialized")
	})

	return mgr, err
}

// GetS3Client returns the S3 client.
func (m *Manager) GetS3Client() *s3c.Client {
	return m.S3
}

// GetDBClient returns the DB client.
func (m *Manager) GetDBClient() *dbc.Client {
	return m.DB
}

// GetKVClient returns the KV store.
func (m *Manager) GetKVClient() kvc.KVStore {
	return m.KV
}

// GetMQClient returns the MQ client.
func (m *Manager) GetMQClient() *mqc.Client {
	return m.MQ
}
