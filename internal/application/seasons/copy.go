package seasons

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// copyChunkSize is how many entities one locked write carries. Chunking
// keeps the store lock short so reads interleave with a long copy.
const copyChunkSize = 50

// CopyTask is the background forward copy started by Manager.Create. It
// duplicates the source season's members and activities into the target
// season: fresh ids, the target season name, enrollments dropped.
// Each chunk is one collection write, so an interrupted copy leaves only
// whole entities behind.
type CopyTask struct {
	lock       sync.Locker
	members    MemberStore
	activities ActivityStore
	newID      func() string
	now        func() time.Time
	source     string
	target     string

	done chan struct{}
	err  error
}

// Done is closed when the copy has finished, successfully or not.
func (t *CopyTask) Done() <-chan struct{} { return t.done }

// Err returns the copy failure, if any.
// PRE: Done has been closed
func (t *CopyTask) Err() error { return t.err }

// Wait blocks until the copy finishes or ctx is cancelled.
func (t *CopyTask) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *CopyTask) run(ctx context.Context) {
	defer close(t.done)
	t.err = t.copyMembers(ctx)
	if t.err == nil {
		t.err = t.copyActivities(ctx)
	}
	if t.err != nil {
		slog.Error("season copy failed", "source", t.source, "target", t.target, "error", t.err)
		return
	}
	slog.Info("season copy finished", "source", t.source, "target", t.target)
}

func (t *CopyTask) copyMembers(ctx context.Context) error {
	t.lock.Lock()
	all, err := t.members.List(ctx)
	t.lock.Unlock()
	if err != nil {
		return err
	}
	src := all[:0:0]
	for _, m := range all {
		if m.Season == t.source {
			src = append(src, m)
		}
	}
	for start := 0; start < len(src); start += copyChunkSize {
		end := min(start+copyChunkSize, len(src))
		chunk := src[start:end]

		t.lock.Lock()
		current, err := t.members.List(ctx)
		if err == nil {
			for _, m := range chunk {
				m.ID = t.newID()
				m.Season = t.target
				m.ActivityIDs = nil
				m.CreatedAt = t.now()
				current = append(current, m)
			}
			err = t.members.ReplaceAll(ctx, current)
		}
		t.lock.Unlock()
		if err != nil {
			return err
		}
	}
	return nil
}

func (t *CopyTask) copyActivities(ctx context.Context) error {
	t.lock.Lock()
	all, err := t.activities.List(ctx)
	t.lock.Unlock()
	if err != nil {
		return err
	}
	src := all[:0:0]
	for _, a := range all {
		if a.Season == t.source {
			src = append(src, a)
		}
	}
	for start := 0; start < len(src); start += copyChunkSize {
		end := min(start+copyChunkSize, len(src))
		chunk := src[start:end]

		t.lock.Lock()
		current, err := t.activities.List(ctx)
		if err == nil {
			for _, a := range chunk {
				a.ID = t.newID()
				a.Season = t.target
				a.MemberIDs = nil
				a.CreatedAt = t.now()
				current = append(current, a)
			}
			err = t.activities.ReplaceAll(ctx, current)
		}
		t.lock.Unlock()
		if err != nil {
			return err
		}
	}
	return nil
}
