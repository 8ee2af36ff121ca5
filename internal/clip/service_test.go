package clip_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"clipsync/internal/clip"
	"clipsync/internal/testutil"
)

var fixedTime = time.Date(2021, 6, 13, 21, 4, 5, 0, time.UTC)

// newService wires a SyncService against mocks. The destination is a real
// temp directory because Sync enters it via os.Chdir.
func newService(t *testing.T, store *testutil.MockStore, fsmgr *testutil.MockFilesystemManager, src string) (*clip.SyncService, *bytes.Buffer, string) {
	t.Helper()

	dest := t.TempDir()
	out := &bytes.Buffer{}
	svc := clip.NewSyncService(
		clip.SyncConfig{
			SourcePath:     src,
			DestinationDir: dest,
			RemoteName:     "nuc",
			BranchName:     "mainline",
		},
		store, fsmgr, clip.NewNopLogger(), &testutil.MockClock{T: fixedTime}, out,
	)
	return svc, out, dest
}

func TestSyncService_Sync(t *testing.T) {
	t.Run("source absent prints diagnostic and succeeds", func(t *testing.T) {
		store := testutil.NewMockStore()
		fsmgr := testutil.NewMockFilesystemManager()
		svc, out, _ := newService(t, store, fsmgr, "/mnt/kindle/My Clippings.txt")

		res, err := svc.Sync()
		if err != nil {
			t.Fatalf("Sync() error = %v", err)
		}
		if res.Mounted {
			t.Error("Sync() Mounted = true, want false")
		}
		if !strings.Contains(out.String(), "does not seem to be mounted") {
			t.Errorf("diagnostic not printed, got %q", out.String())
		}
		if store.StageCalls != 0 || len(store.Commits) != 0 || len(store.PushedRemotes) != 0 {
			t.Error("store was touched on the not-mounted branch")
		}
	})

	t.Run("copies, commits with timestamp, and pushes", func(t *testing.T) {
		store := testutil.NewMockStore()
		store.Changes = true
		fsmgr := testutil.NewMockFilesystemManager()
		fsmgr.AddFile("/mnt/kindle/My Clippings.txt", []byte("highlight one"))

		svc, out, dest := newService(t, store, fsmgr, "/mnt/kindle/My Clippings.txt")

		res, err := svc.Sync()
		if err != nil {
			t.Fatalf("Sync() error = %v", err)
		}
		if !res.Mounted || !res.Changed {
			t.Errorf("Sync() = %+v, want mounted and changed", res)
		}
		if res.BytesCopied != int64(len("highlight one")) {
			t.Errorf("BytesCopied = %d, want %d", res.BytesCopied, len("highlight one"))
		}

		// Copy is byte-for-byte into the destination, same name as source.
		dst := filepath.Join(dest, "My Clippings.txt")
		if got := fsmgr.Content(dst); string(got) != "highlight one" {
			t.Errorf("copied content = %q, want %q", got, "highlight one")
		}

		// Exactly one commit, message is the wall-clock timestamp.
		if len(store.Commits) != 1 {
			t.Fatalf("commits = %d, want 1", len(store.Commits))
		}
		want := fixedTime.Format(time.UnixDate)
		if store.Commits[0] != want {
			t.Errorf("commit message = %q, want %q", store.Commits[0], want)
		}
		if res.CommitMessage != want {
			t.Errorf("CommitMessage = %q, want %q", res.CommitMessage, want)
		}

		// Pushed to the configured remote and branch.
		if len(store.PushedRemotes) != 1 || store.PushedRemotes[0] != "nuc" || store.PushedRefs[0] != "mainline" {
			t.Errorf("push = %v/%v, want nuc/mainline", store.PushedRemotes, store.PushedRefs)
		}

		if out.Len() != 0 {
			t.Errorf("unexpected output: %q", out.String())
		}
	})

	t.Run("unchanged source commits nothing", func(t *testing.T) {
		store := testutil.NewMockStore()
		store.Changes = false
		fsmgr := testutil.NewMockFilesystemManager()
		fsmgr.AddFile("/mnt/kindle/My Clippings.txt", []byte("same content"))

		svc, _, _ := newService(t, store, fsmgr, "/mnt/kindle/My Clippings.txt")

		res, err := svc.Sync()
		if err != nil {
			t.Fatalf("Sync() error = %v", err)
		}
		if !res.Mounted || res.Changed {
			t.Errorf("Sync() = %+v, want mounted and unchanged", res)
		}
		if store.StageCalls != 1 {
			t.Errorf("StageCalls = %d, want 1", store.StageCalls)
		}
		if len(store.Commits) != 0 || len(store.PushedRemotes) != 0 {
			t.Error("no-op run should not commit or push")
		}
	})

	t.Run("push failure keeps the local commit", func(t *testing.T) {
		store := testutil.NewMockStore()
		store.Changes = true
		store.PushErr = errors.New("remote unreachable")
		fsmgr := testutil.NewMockFilesystemManager()
		fsmgr.AddFile("/mnt/kindle/My Clippings.txt", []byte("x"))

		svc, _, _ := newService(t, store, fsmgr, "/mnt/kindle/My Clippings.txt")

		res, err := svc.Sync()
		if err == nil {
			t.Fatal("Sync() expected error on push failure")
		}
		if !errors.Is(err, store.PushErr) {
			t.Errorf("Sync() error = %v, want wrapped push error", err)
		}
		if res == nil || !res.Changed {
			t.Error("commit should have happened before the failed push")
		}
		if len(store.Commits) != 1 {
			t.Errorf("commits = %d, want 1", len(store.Commits))
		}
	})

	t.Run("copy failure propagates", func(t *testing.T) {
		store := testutil.NewMockStore()
		fsmgr := testutil.NewMockFilesystemManager()
		fsmgr.AddFile("/mnt/kindle/My Clippings.txt", []byte("x"))
		fsmgr.CopyErr = errors.New("disk full")

		svc, _, _ := newService(t, store, fsmgr, "/mnt/kindle/My Clippings.txt")

		if _, err := svc.Sync(); !errors.Is(err, fsmgr.CopyErr) {
			t.Errorf("Sync() error = %v, want wrapped copy error", err)
		}
		if len(store.Commits) != 0 {
			t.Error("copy failure should not reach the commit step")
		}
	})

	t.Run("missing destination directory fails", func(t *testing.T) {
		store := testutil.NewMockStore()
		fsmgr := testutil.NewMockFilesystemManager()
		out := &bytes.Buffer{}
		svc := clip.NewSyncService(
			clip.SyncConfig{
				SourcePath:     "/mnt/kindle/My Clippings.txt",
				DestinationDir: filepath.Join(t.TempDir(), "missing"),
				RemoteName:     "nuc",
				BranchName:     "mainline",
			},
			store, fsmgr, clip.NewNopLogger(), &testutil.MockClock{T: fixedTime}, out,
		)

		if _, err := svc.Sync(); err == nil {
			t.Error("Sync() expected error for missing destination")
		}
	})
}

func TestSyncService_Sync_RestoresWorkingDirectory(t *testing.T) {
	check := func(t *testing.T, store *testutil.MockStore, fsmgr *testutil.MockFilesystemManager) {
		t.Helper()

		before, err := os.Getwd()
		if err != nil {
			t.Fatalf("Getwd() error = %v", err)
		}

		svc, _, _ := newService(t, store, fsmgr, "/mnt/kindle/My Clippings.txt")
		svc.Sync()

		after, err := os.Getwd()
		if err != nil {
			t.Fatalf("Getwd() error = %v", err)
		}
		if before != after {
			t.Errorf("working directory leaked: before=%q after=%q", before, after)
		}
	}

	t.Run("after a not-mounted run", func(t *testing.T) {
		check(t, testutil.NewMockStore(), testutil.NewMockFilesystemManager())
	})

	t.Run("after a full run", func(t *testing.T) {
		store := testutil.NewMockStore()
		store.Changes = true
		fsmgr := testutil.NewMockFilesystemManager()
		fsmgr.AddFile("/mnt/kindle/My Clippings.txt", []byte("x"))
		check(t, store, fsmgr)
	})

	t.Run("after a failed stage", func(t *testing.T) {
		store := testutil.NewMockStore()
		store.StageErr = errors.New("not a repository")
		fsmgr := testutil.NewMockFilesystemManager()
		fsmgr.AddFile("/mnt/kindle/My Clippings.txt", []byte("x"))
		check(t, store, fsmgr)
	})
}

func TestSyncService_Status(t *testing.T) {
	t.Run("reports mounted source and dirty tree", func(t *testing.T) {
		store := testutil.NewMockStore()
		store.Changes = true
		fsmgr := testutil.NewMockFilesystemManager()
		fsmgr.AddFile("/mnt/kindle/My Clippings.txt", []byte("x"))

		svc, _, _ := newService(t, store, fsmgr, "/mnt/kindle/My Clippings.txt")

		st, err := svc.Status()
		if err != nil {
			t.Fatalf("Status() error = %v", err)
		}
		if !st.SourceMounted || !st.DirtyWorkingTree {
			t.Errorf("Status() = %+v, want mounted and dirty", st)
		}
	})

	t.Run("reports absent source and clean tree", func(t *testing.T) {
		store := testutil.NewMockStore()
		fsmgr := testutil.NewMockFilesystemManager()

		svc, _, _ := newService(t, store, fsmgr, "/mnt/kindle/My Clippings.txt")

		st, err := svc.Status()
		if err != nil {
			t.Fatalf("Status() error = %v", err)
		}
		if st.SourceMounted || st.DirtyWorkingTree {
			t.Errorf("Status() = %+v, want unmounted and clean", st)
		}
	})
}
