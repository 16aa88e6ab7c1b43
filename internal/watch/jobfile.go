// Package watch follows a job snapshot stored in a local file and emits a
// fresh Job each time the file is rewritten. It stands in for the live
// socket feed when replaying or developing offline.
package watch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/sfdo-tooling/metadeploy-tui/internal/logging"
	"github.com/sfdo-tooling/metadeploy-tui/internal/model"
)

// Event is one delivery from the watcher. Exactly one of Job or Err is set.
type Event struct {
	Job *model.Job
	Err error
}

type JobFile struct {
	path    string
	watcher *fsnotify.Watcher
	events  chan Event
	logger  *logging.Logger

	closeOnce sync.Once
	done      chan struct{}
}

// ReadJob decodes a job file. Files ending in .yaml or .yml are YAML, .toml
// is TOML, everything else is JSON.
func ReadJob(path string) (*model.Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job file: %w", err)
	}
	var job model.Job
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &job)
	case ".toml":
		err = toml.Unmarshal(data, &job)
	default:
		err = json.Unmarshal(data, &job)
	}
	if err != nil {
		return nil, fmt.Errorf("decode job file %s: %w", path, err)
	}
	return &job, nil
}

// NewJobFile starts watching path. The directory is watched rather than the
// file so editors that replace the file on save keep working.
func NewJobFile(path string, logger *logging.Logger) (*JobFile, error) {
	if logger == nil {
		logger = logging.NopLogger()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve job file: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	jf := &JobFile{
		path:    abs,
		watcher: w,
		events:  make(chan Event, 1),
		logger:  logger.With("job_file", abs),
		done:    make(chan struct{}),
	}
	go jf.loop()
	return jf, nil
}

// Events delivers decoded snapshots. It is closed after Close.
func (jf *JobFile) Events() <-chan Event {
	return jf.events
}

func (jf *JobFile) Path() string {
	return jf.path
}

func (jf *JobFile) loop() {
	defer close(jf.events)
	for {
		select {
		case <-jf.done:
			return
		case ev, ok := <-jf.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != jf.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			job, err := ReadJob(jf.path)
			if err != nil {
				// Writers often truncate before writing; the next event
				// carries the full file.
				jf.logger.Debug("skipping unreadable job file", "error", err)
				continue
			}
			jf.logger.Debug("job file changed", "job_id", job.ID, "status", job.Status)
			jf.send(Event{Job: job})
		case err, ok := <-jf.watcher.Errors:
			if !ok {
				return
			}
			jf.logger.Warn("watcher error", "error", err)
			jf.send(Event{Err: err})
		}
	}
}

// send replaces any undelivered event with a newer job snapshot. Errors
// never displace a pending event; they are dropped instead.
func (jf *JobFile) send(ev Event) {
	if ev.Err != nil {
		select {
		case jf.events <- ev:
		case <-jf.done:
		default:
		}
		return
	}
	for {
		select {
		case jf.events <- ev:
			return
		case <-jf.done:
			return
		default:
		}
		select {
		case <-jf.events:
		default:
		}
	}
}

func (jf *JobFile) Close() error {
	var err error
	jf.closeOnce.Do(func() {
		close(jf.done)
		err = jf.watcher.Close()
	})
	return err
}
