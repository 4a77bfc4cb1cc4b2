package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/vmedia/showreel/internal/logger"
	"github.com/vmedia/showreel/internal/persist"
)

// Exporter produces the full dataset document for backup.
type Exporter interface {
	Export() ([]byte, error)
}

// BackupWriter periodically snapshots the full dataset to a local file, as
// an offline safety net on top of whatever the persistence backend does.
type BackupWriter struct {
	exporter      Exporter
	path          string
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewBackupWriter creates a backup writer targeting path.
func NewBackupWriter(
	exporter Exporter,
	path string,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *BackupWriter {
	return &BackupWriter{
		exporter:      exporter,
		path:          path,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start writes one snapshot immediately and begins the periodic loop.
func (bw *BackupWriter) Start(ctx context.Context) error {
	if err := bw.Write(); err != nil {
		return fmt.Errorf("initial backup failed: %w", err)
	}

	ticker := time.NewTicker(bw.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := bw.Write(); err != nil {
					bw.logger.Error("failed to write backup",
						logger.Error(err))
				}
			case <-bw.manualTrigger:
				bw.logger.Info("manual backup triggered")
				if err := bw.Write(); err != nil {
					bw.logger.Error("failed to write backup",
						logger.Error(err))
				}
			case <-bw.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop ends the periodic loop.
func (bw *BackupWriter) Stop() {
	close(bw.stopCh)
}

// Write snapshots the dataset to the backup file atomically.
func (bw *BackupWriter) Write() error {
	data, err := bw.exporter.Export()
	if err != nil {
		return err
	}
	if err := persist.WriteFileAtomic(bw.path, data); err != nil {
		return err
	}
	bw.logger.Debug("backup written",
		logger.String("path", bw.path),
		logger.Int("bytes", len(data)))
	return nil
}
