package service

import (
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/lakesidedc/club-server/internal/domain/common/errorz"
	"github.com/lakesidedc/club-server/pkg/logger/types"
)

// slideExtensions are the file types the image picker will serve.
var slideExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

const slideDebounce = 500 * time.Millisecond

// SlideService keeps a cached, sorted list of image filenames from one
// directory. Filesystem events reset a single debounce timer, so a burst of
// changes causes exactly one rescan. If watching fails the service keeps
// serving the last snapshot.
type SlideService struct {
	logger *types.Logger

	dir     string
	watcher *fsnotify.Watcher

	mu      sync.Mutex
	slides  []string
	pending *time.Timer
	done    chan struct{}
}

func NewSlideService(logger *types.Logger, dir string) *SlideService {
	s := &SlideService{
		logger: logger,
		dir:    dir,
		done:   make(chan struct{}),
	}

	if err := s.rescan(); err != nil {
		logger.Warnf("initial slide scan failed: %v", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warnf("slide watcher disabled: %v", err)
		return s
	}
	if err = watcher.Add(dir); err != nil {
		logger.Warnf("slide watcher disabled, cannot watch %s: %v", dir, err)
		_ = watcher.Close()
		return s
	}

	s.watcher = watcher
	go s.watch()
	return s
}

// watch consumes filesystem events until Close. Each event cancels the
// pending rescan and schedules a fresh one, so at most one scan runs per
// debounce window.
func (s *SlideService) watch() {
	for {
		select {
		case <-s.done:
			return
		case _, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			s.scheduleRescan()
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warnf("slide watcher error, serving cached list: %v", err)
		}
	}
}

func (s *SlideService) scheduleRescan() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil {
		s.pending.Stop()
	}
	s.pending = time.AfterFunc(slideDebounce, func() {
		if err := s.rescan(); err != nil {
			s.logger.Warnf("slide rescan failed, serving cached list: %v", err)
		}
	})
}

// rescan rebuilds the slide snapshot from the directory contents.
func (s *SlideService) rescan() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return err
	}

	var slides []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if slideExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			slides = append(slides, filepath.Join(s.dir, entry.Name()))
		}
	}
	sort.Strings(slides)

	s.mu.Lock()
	s.slides = slides
	s.mu.Unlock()

	s.logger.Debugf("slide list refreshed, %d files", len(slides))
	return nil
}

// Count returns the number of cached slides.
func (s *SlideService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.slides)
}

// List returns a copy of the cached slide paths.
func (s *SlideService) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.slides...)
}

// At returns the slide at the given zero-based index.
func (s *SlideService) At(index int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.slides) == 0 {
		return "", errorz.NoSlides
	}
	if index < 0 || index >= len(s.slides) {
		return "", errorz.SlideOutOfRange
	}
	return s.slides[index], nil
}

// Random returns a uniformly random slide.
func (s *SlideService) Random() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.slides) == 0 {
		return "", errorz.NoSlides
	}
	return s.slides[rand.Intn(len(s.slides))], nil
}

// Close stops the watcher and cancels any pending rescan.
func (s *SlideService) Close() {
	close(s.done)
	s.mu.Lock()
	if s.pending != nil {
		s.pending.Stop()
	}
	s.mu.Unlock()
	if s.watcher != nil {
		_ = s.watcher.Close()
	}
}
