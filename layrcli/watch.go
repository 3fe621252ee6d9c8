package layrcli

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/layr-arb/layr/layrcompose"
	"github.com/layr-arb/layr/lib/xmain"
)

type watcher struct {
	ms        *xmain.State
	c         *layrcompose.Composer
	inputPath string
	open      bool

	fw        *fsnotify.Watcher
	compileCh chan struct{}
}

func newWatcher(ms *xmain.State, c *layrcompose.Composer, inputPath string, open bool) (*watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &watcher{
		ms:        ms,
		c:         c,
		inputPath: inputPath,
		open:      open,

		fw:        fw,
		compileCh: make(chan struct{}, 1),
	}, nil
}

// run renders on start and on every change until ctx is done.
func (w *watcher) run(ctx context.Context) error {
	defer w.fw.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errs := make(chan error, 2)
	go func() {
		errs <- w.watchLoop(ctx)
	}()
	go func() {
		errs <- w.compileLoop(ctx)
	}()

	err := <-errs
	cancel()
	<-errs
	return err
}

/*
 * Editors often save with a burst of events: a chmod, a write and another
 * chmod, or several writes for one large file. Events are batched until 16ms
 * pass without one so a burst renders once. Watches are re-added on every
 * event because a rename or delete drops them, and the file is polled in case
 * an event is missed altogether.
 */
func (w *watcher) watchLoop(ctx context.Context) error {
	mt, err := w.ensureAddWatch(ctx)
	if err != nil {
		return err
	}
	lastModified := mt
	w.ms.Log.Info.Printf("rendering %v...", w.ms.HumanPath(w.inputPath))
	w.requestCompile()

	eatBurstTimer := time.NewTimer(0)
	<-eatBurstTimer.C
	pollTicker := time.NewTicker(time.Second * 10)
	defer pollTicker.Stop()

	changed := false
	for {
		select {
		case <-pollTicker.C:
			mt, err := w.ensureAddWatch(ctx)
			if err != nil {
				return err
			}
			if !mt.Equal(lastModified) {
				lastModified = mt
				w.requestCompile()
			}
		case ev, ok := <-w.fw.Events:
			if !ok {
				return errors.New("fsnotify watcher closed")
			}
			w.ms.Log.Debug.Printf("received file system event %v", ev)
			mt, err := w.ensureAddWatch(ctx)
			if err != nil {
				return err
			}
			if ev.Op == fsnotify.Chmod && mt.Equal(lastModified) {
				continue
			}
			lastModified = mt
			changed = true
			eatBurstTimer.Reset(time.Millisecond * 16)
		case <-eatBurstTimer.C:
			if !changed {
				continue
			}
			changed = false
			w.ms.Log.Info.Printf("detected change in %s: re-rendering...", w.ms.HumanPath(w.inputPath))
			w.requestCompile()
		case err, ok := <-w.fw.Errors:
			if !ok {
				return errors.New("fsnotify watcher closed")
			}
			w.ms.Log.Error.Printf("fsnotify error: %v", err)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *watcher) requestCompile() {
	select {
	case w.compileCh <- struct{}{}:
	default:
	}
}

// ensureAddWatch retries adding the watch with backoff until the file exists.
func (w *watcher) ensureAddWatch(ctx context.Context) (time.Time, error) {
	interval := time.Millisecond * 16
	tc := time.NewTimer(0)
	<-tc.C
	for {
		mt, err := w.addWatch()
		if err == nil {
			return mt, nil
		}
		if interval >= time.Second {
			w.ms.Log.Error.Printf("failed to watch %q: %v (retrying in %v)", w.ms.HumanPath(w.inputPath), err, interval)
		}

		tc.Reset(interval)
		select {
		case <-tc.C:
			if interval < time.Second {
				interval = time.Second
			}
			if interval < time.Second*16 {
				interval *= 2
			}
		case <-ctx.Done():
			return time.Time{}, ctx.Err()
		}
	}
}

func (w *watcher) addWatch() (time.Time, error) {
	err := w.fw.Add(w.inputPath)
	if err != nil {
		return time.Time{}, err
	}
	d, err := os.Stat(w.inputPath)
	if err != nil {
		return time.Time{}, err
	}
	return d.ModTime(), nil
}

func (w *watcher) compileLoop(ctx context.Context) error {
	first := true
	for {
		select {
		case <-w.compileCh:
		case <-ctx.Done():
			return ctx.Err()
		}

		resp, err := renderFile(ctx, w.ms, w.c, w.inputPath)
		switch {
		case err != nil:
			w.ms.Log.Error.Print(err)
		case !resp.Success():
			w.ms.Log.Error.Printf("failed to render %s", w.ms.HumanPath(w.inputPath))
		case first && w.open:
			openFiles(ctx, w.ms, resp)
		}
		if err == nil {
			first = false
		}
	}
}
