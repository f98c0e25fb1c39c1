package store

import (
	"testing"

	"revenueplatform/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := NewMemory()
	if err != nil {
		t.Fatalf("init store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestReplaceAndListRecords(t *testing.T) {
	st := newTestStore(t)

	if err := st.ReplaceRecords(model.SampleRecords()); err != nil {
		t.Fatalf("ReplaceRecords failed: %v", err)
	}

	got, err := st.ListRecords()
	if err != nil {
		t.Fatalf("ListRecords failed: %v", err)
	}
	want := model.SampleRecords()
	if len(got) != len(want) {
		t.Fatalf("len=%d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("records[%d] mismatch:\n got: %+v\nwant: %+v", i, got[i], want[i])
		}
	}
}

func TestReplaceRecordsIsWholesale(t *testing.T) {
	st := newTestStore(t)

	if err := st.ReplaceRecords(model.SampleRecords()); err != nil {
		t.Fatalf("ReplaceRecords failed: %v", err)
	}
	if err := st.ReplaceRecords(model.SubstituteRecords()); err != nil {
		t.Fatalf("ReplaceRecords failed: %v", err)
	}

	n, err := st.CountRecords()
	if err != nil {
		t.Fatalf("CountRecords failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("count=%d, want 1", n)
	}

	got, _ := st.ListRecords()
	if got[0].Period != "Q4 2024" {
		t.Fatalf("period=%q, want Q4 2024", got[0].Period)
	}
}

func TestReplaceRecordsDuplicatePeriodRollsBack(t *testing.T) {
	st := newTestStore(t)

	if err := st.ReplaceRecords(model.SampleRecords()); err != nil {
		t.Fatalf("ReplaceRecords failed: %v", err)
	}

	dup := model.SampleRecords()
	dup[2].Period = dup[0].Period
	if err := st.ReplaceRecords(dup); err == nil {
		t.Fatalf("expected unique constraint error")
	}

	n, _ := st.CountRecords()
	if n != 3 {
		t.Fatalf("count=%d after failed replace, want 3", n)
	}
}

func TestListRecordsEmpty(t *testing.T) {
	st := newTestStore(t)

	got, err := st.ListRecords()
	if err != nil {
		t.Fatalf("ListRecords failed: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestMemoryStoresAreIsolated(t *testing.T) {
	a := newTestStore(t)
	b := newTestStore(t)

	if err := a.ReplaceRecords(model.SampleRecords()); err != nil {
		t.Fatalf("ReplaceRecords failed: %v", err)
	}
	n, _ := b.CountRecords()
	if n != 0 {
		t.Fatalf("second store sees %d records, want 0", n)
	}
}

func TestUploadLogLifecycle(t *testing.T) {
	st := newTestStore(t)

	id, err := st.CreateUploadLog("report.csv", 128, UploadStatusProcessing, "Processing file...")
	if err != nil {
		t.Fatalf("CreateUploadLog failed: %v", err)
	}
	if err := st.CompleteUploadLog(id, UploadStatusSucceeded, "Successfully processed report.csv"); err != nil {
		t.Fatalf("CompleteUploadLog failed: %v", err)
	}

	logs, err := st.ListUploadLogs(10)
	if err != nil {
		t.Fatalf("ListUploadLogs failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("len=%d, want 1", len(logs))
	}
	it := logs[0]
	if it.ID != id || it.Status != UploadStatusSucceeded || it.FileSize != 128 {
		t.Fatalf("unexpected log: %+v", it)
	}
	if it.CompletedAt == nil {
		t.Fatalf("completedAt should be set")
	}
}

func TestCompleteUploadLogUnknownID(t *testing.T) {
	st := newTestStore(t)
	if err := st.CompleteUploadLog("missing", UploadStatusFailed, ""); err == nil {
		t.Fatalf("expected error for unknown id")
	}
}
