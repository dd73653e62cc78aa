// Package watcher monitors the policy text document and schedules index
// rebuilds when it changes on disk.
package watcher

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"hr-chatbot-be/internal/pkg/logger"
	"hr-chatbot-be/internal/service"
)

// PolicyWatcher publishes a reindex event whenever policy.txt is written
// or recreated. The consumer service does the actual rebuild.
type PolicyWatcher struct {
	watcher   *fsnotify.Watcher
	dir       string
	filename  string
	publisher service.IPublisherService
	log       logger.ILogger
}

func NewPolicyWatcher(policyPath string, publisher service.IPublisherService, log logger.ILogger) (*PolicyWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &PolicyWatcher{
		watcher:   w,
		dir:       filepath.Dir(policyPath),
		filename:  filepath.Base(policyPath),
		publisher: publisher,
		log:       log,
	}, nil
}

// Run blocks until ctx is cancelled. The whole data directory is watched
// because editors and atomic renames replace the file rather than write
// it in place.
func (w *PolicyWatcher) Run(ctx context.Context) error {
	if err := w.watcher.Add(w.dir); err != nil {
		return err
	}
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != w.filename {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if err := w.publisher.PublishReindex("policy.txt changed"); err != nil {
				w.log.Warn("watcher", "failed to publish reindex event", map[string]interface{}{"error": err.Error()})
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watcher", "file watcher error", map[string]interface{}{"error": err.Error()})
		}
	}
}
