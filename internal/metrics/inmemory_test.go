package metrics

import (
	"sync"
	"testing"
	"time"
)

func TestInMemoryRecorder_Counters(t *testing.T) {
	t.Parallel()

	r := NewInMemory()

	r.IncUserRegistered()
	r.IncLoginSuccess()
	r.IncLoginFailure()
	r.IncLoginFailure()
	r.IncBookCreated()
	r.IncBookUpdated()
	r.IncBookDeleted()
	r.IncBookSearch()
	r.ObserveSearchDuration(5 * time.Millisecond)

	snap := r.Snapshot()

	if snap.UsersRegistered != 1 {
		t.Errorf("UsersRegistered = %d, want 1", snap.UsersRegistered)
	}
	if snap.LoginSuccesses != 1 || snap.LoginFailures != 2 {
		t.Errorf("logins = %d/%d, want 1/2", snap.LoginSuccesses, snap.LoginFailures)
	}
	if snap.BooksCreated != 1 || snap.BooksUpdated != 1 || snap.BooksDeleted != 1 {
		t.Errorf("book counters = %d/%d/%d, want 1/1/1", snap.BooksCreated, snap.BooksUpdated, snap.BooksDeleted)
	}
	if snap.BookSearches != 1 {
		t.Errorf("BookSearches = %d, want 1", snap.BookSearches)
	}
	if snap.SearchDurationCount != 1 {
		t.Errorf("SearchDurationCount = %d, want 1", snap.SearchDurationCount)
	}
	if snap.SearchDurationTotalNs != int64(5*time.Millisecond) {
		t.Errorf("SearchDurationTotalNs = %d", snap.SearchDurationTotalNs)
	}
}

func TestInMemoryRecorder_ConcurrentUse(t *testing.T) {
	t.Parallel()

	r := NewInMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.IncBookCreated()
			r.IncBookSearch()
		}()
	}
	wg.Wait()

	snap := r.Snapshot()
	if snap.BooksCreated != 50 {
		t.Errorf("BooksCreated = %d, want 50", snap.BooksCreated)
	}
	if snap.BookSearches != 50 {
		t.Errorf("BookSearches = %d, want 50", snap.BookSearches)
	}
}

func TestNoopRecorder(t *testing.T) {
	t.Parallel()

	r := NewNoop()

	// All methods are safe no-ops
	r.IncUserRegistered()
	r.IncLoginSuccess()
	r.IncLoginFailure()
	r.IncBookCreated()
	r.IncBookUpdated()
	r.IncBookDeleted()
	r.IncBookSearch()
	r.ObserveSearchDuration(time.Second)
}
