// workers/snapshot_worker.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"partidas-service/models"
	"partidas-service/repository"

	"github.com/go-co-op/gocron/v2"
	"github.com/gosimple/slug"
	log "github.com/sirupsen/logrus"
)

const snapshotPageSize = 500

// Uploader is the part of the object store the snapshot worker needs.
type Uploader interface {
	PutObject(ctx context.Context, key string, body []byte, contentType string) error
}

// SnapshotWorker periodically exports every partida as one JSON document.
type SnapshotWorker struct {
	repo     repository.PartidaRepository
	uploader Uploader
	prefix   string
	interval time.Duration
	now      func() time.Time

	sched gocron.Scheduler
}

func NewSnapshotWorker(repo repository.PartidaRepository, uploader Uploader, appName string, interval time.Duration) *SnapshotWorker {
	return &SnapshotWorker{
		repo:     repo,
		uploader: uploader,
		prefix:   "snapshots/" + slug.Make(appName),
		interval: interval,
		now:      time.Now,
	}
}

// Start schedules the export. The first run happens after one interval.
func (w *SnapshotWorker) Start(ctx context.Context) error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("create snapshot scheduler: %w", err)
	}

	_, err = sched.NewJob(
		gocron.DurationJob(w.interval),
		gocron.NewTask(func() {
			key, n, err := w.RunOnce(ctx)
			if err != nil {
				log.Errorf("[SNAPSHOT] export failed: %v", err)
				return
			}
			log.Infof("[SNAPSHOT] exported %d partida(s) to %s", n, key)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = sched.Shutdown()
		return fmt.Errorf("schedule snapshot job: %w", err)
	}

	sched.Start()
	w.sched = sched
	log.Infof("[SNAPSHOT] exporting every %s to %s/", w.interval, w.prefix)
	return nil
}

func (w *SnapshotWorker) Stop() {
	if w.sched == nil {
		return
	}
	if err := w.sched.Shutdown(); err != nil {
		log.Warnf("[SNAPSHOT] scheduler shutdown: %v", err)
	}
}

// RunOnce reads all partidas page by page and uploads them. It returns the
// object key and the number of exported records.
func (w *SnapshotWorker) RunOnce(ctx context.Context) (string, int, error) {
	all := make([]models.Partida, 0)
	pageable := models.Pageable{Size: snapshotPageSize, Sort: []models.SortOrder{{Field: "id"}}}
	for {
		page, err := w.repo.FindAll(ctx, models.PartidaCriteria{}, pageable)
		if err != nil {
			return "", 0, fmt.Errorf("read page %d: %w", pageable.Page, err)
		}
		all = append(all, page.Content...)
		if !page.HasNext() {
			break
		}
		pageable.Page++
	}

	body, err := json.Marshal(all)
	if err != nil {
		return "", 0, fmt.Errorf("marshal snapshot: %w", err)
	}

	key := fmt.Sprintf("%s/%s.json", w.prefix, w.now().UTC().Format(time.RFC3339))
	if err := w.uploader.PutObject(ctx, key, body, "application/json"); err != nil {
		return "", 0, err
	}
	return key, len(all), nil
}
