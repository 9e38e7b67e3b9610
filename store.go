package lingo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/iamwavecut/tool"
	log "github.com/sirupsen/logrus"
)

const (
	defaultPollInterval = 5 * time.Second
	reloadDebounce      = 200 * time.Millisecond
)

var errNoDir = errors.New("store was not opened from a directory")

// Store publishes the current Catalog behind an atomic pointer, so a reload
// swaps the whole catalog at once: concurrent readers observe either the old
// or the new catalog in full, never a mixed view.
type Store struct {
	dir  string
	opts []Option
	cur  atomic.Pointer[Catalog]
}

// NewStore wraps an already loaded catalog, e.g. one embedded in the binary.
// Reload, Watch and Poll need a directory, use Open for those.
func NewStore(c *Catalog) *Store {
	s := &Store{}
	s.cur.Store(c)
	return s
}

// Open loads the catalog from a directory on disk and returns a Store that
// can reload it.
func Open(dir string, opts ...Option) (*Store, error) {
	c, err := Load(os.DirFS(dir), ".", opts...)
	if err != nil {
		return nil, err
	}
	s := &Store{dir: dir, opts: opts}
	s.cur.Store(c)
	return s, nil
}

// Catalog returns the currently published catalog.
func (s *Store) Catalog() *Catalog {
	return s.cur.Load()
}

// Swap publishes c and returns the catalog it replaced.
func (s *Store) Swap(c *Catalog) *Catalog {
	return s.cur.Swap(c)
}

// Reload re-reads the whole directory, validates it and swaps the catalog
// in. On failure the previous catalog stays published.
func (s *Store) Reload() error {
	if s.dir == "" {
		return errNoDir
	}
	c, err := Load(os.DirFS(s.dir), ".", s.opts...)
	if err != nil {
		return err
	}
	s.Swap(c)
	return nil
}

// Watch reloads the catalog whenever a catalog file under the store's
// directory changes. It blocks until ctx is done. A failed reload is logged
// and the previous catalog stays live.
func (s *Store) Watch(ctx context.Context) error {
	if s.dir == "" {
		return errNoDir
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(s.dir); err != nil {
		return err
	}

	// Editors fire several events per save, collapse them into one reload.
	debounce := time.NewTimer(reloadDebounce)
	if !debounce.Stop() {
		<-debounce.C
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ext := path.Ext(event.Name); ext != ".yml" && ext != ".yaml" {
				continue
			}
			debounce.Reset(reloadDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Errorln("catalog watcher error")
		case <-debounce.C:
			if err := s.Reload(); err != nil {
				log.WithError(err).Errorln("catalog reload failed, keeping previous catalog")
				continue
			}
			log.Traceln("catalog reloaded")
		}
	}
}

// Poll is a Watch fallback for filesystems where change notifications are
// unreliable. It compares catalog file stamps every interval and reloads on
// any difference. It blocks until ctx is done.
func (s *Store) Poll(ctx context.Context, interval time.Duration) error {
	if s.dir == "" {
		return errNoDir
	}
	interval = tool.NonZero(interval, defaultPollInterval)
	last, _ := s.stamp()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			stamp, err := s.stamp()
			if err != nil {
				log.WithError(err).Errorln("catalog poll failed")
				continue
			}
			if stamp == last {
				continue
			}
			last = stamp
			if err := s.Reload(); err != nil {
				log.WithError(err).Errorln("catalog reload failed, keeping previous catalog")
				continue
			}
			log.Traceln("catalog reloaded")
		}
	}
}

// stamp folds the names, sizes and mtimes of the catalog files into one
// comparable value.
func (s *Store) stamp() (string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, entry := range entries {
		if ext := path.Ext(entry.Name()); entry.IsDir() || (ext != ".yml" && ext != ".yaml") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%s|%d|%d;", entry.Name(), info.Size(), info.ModTime().UnixNano())
	}
	return b.String(), nil
}
