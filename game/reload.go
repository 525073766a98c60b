package game

import (
	"log"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/aadium/TriyamiRender/shaders"
)

// editors emit several events per save, wait for them to settle
const reloadDelay = 100 * time.Millisecond

// ShaderWatcher rebuilds the renderer program whenever a shader source in
// dir changes. Sources are read on the watcher goroutine, compilation is
// handed to the render thread.
type ShaderWatcher struct {
	dir      string
	watcher  *fsnotify.Watcher
	window   *Window
	renderer *Renderer
	done     chan struct{}
}

func WatchShaders(dir string, w *Window, r *Renderer) (*ShaderWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "shader watcher")
	}

	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, errors.Wrapf(err, "watch %s", dir)
	}

	s := &ShaderWatcher{
		dir:      dir,
		watcher:  watcher,
		window:   w,
		renderer: r,
		done:     make(chan struct{}),
	}

	go s.run()
	log.Printf("watching %s for shader changes", dir)

	return s, nil
}

func (s *ShaderWatcher) run() {
	defer close(s.done)

	var pending <-chan time.Time

	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if !shaders.IsSourceFile(event.Name) {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.After(reloadDelay)
			}

		case <-pending:
			pending = nil
			s.reload()

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			log.Println("shader watcher:", err)
		}
	}
}

func (s *ShaderWatcher) reload() {
	src, err := shaders.Load(s.dir)
	if err != nil {
		log.Println("could not reload shaders:", err)
		return
	}

	s.window.MainThread(func() {
		p, err := NewProgram(src)
		if err != nil {
			// keep drawing with the previous program
			log.Println("could not rebuild program:", err)
			return
		}

		s.renderer.SetProgram(p)
		log.Printf("reloaded shaders from %s", p.Origin())
	})
}

func (s *ShaderWatcher) Close() error {
	err := s.watcher.Close()
	<-s.done
	return err
}
