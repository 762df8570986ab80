package store

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"praetordesk/internal/models"
)

func createDailyTask(t *testing.T, store *SQLiteStore, airdropID int64, title string) *models.DailyTask {
	t.Helper()
	task := &models.DailyTask{AirdropID: airdropID, Title: title}
	if err := store.CreateDailyTask(context.Background(), task); err != nil {
		t.Fatalf("CreateDailyTask(%s) failed: %v", title, err)
	}
	return task
}

func taskPositions(t *testing.T, store *SQLiteStore, airdropID int64) map[string]int {
	t.Helper()
	tasks, err := store.ListDailyTasks(context.Background(), airdropID)
	if err != nil {
		t.Fatalf("ListDailyTasks failed: %v", err)
	}
	got := make(map[string]int, len(tasks))
	for _, task := range tasks {
		got[task.Title] = task.Position
	}
	return got
}

func TestCreateDailyTask_PositionsScopedPerAirdrop(t *testing.T) {
	store := setupTestDB(t)

	first := createAirdrop(t, store, "first")
	second := createAirdrop(t, store, "second")

	a := createDailyTask(t, store, first.ID, "Swap")
	b := createDailyTask(t, store, first.ID, "Bridge")
	c := createDailyTask(t, store, second.ID, "Mint")

	if a.Position != 0 || b.Position != 1 {
		t.Errorf("expected positions 0 and 1, got %d and %d", a.Position, b.Position)
	}
	if c.Position != 0 {
		t.Errorf("expected first task of another airdrop at 0, got %d", c.Position)
	}
	if a.DoneDates == nil || len(a.DoneDates) != 0 {
		t.Errorf("expected empty completion set, got %v", a.DoneDates)
	}
}

func TestCreateDailyTask_Errors(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	if err := store.CreateDailyTask(ctx, &models.DailyTask{AirdropID: 99, Title: "Swap"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown airdrop, got %v", err)
	}

	a := createAirdrop(t, store, "A")
	if err := store.CreateDailyTask(ctx, &models.DailyTask{AirdropID: a.ID, Title: "  "}); !errors.Is(err, models.ErrInvalid) {
		t.Errorf("expected validation error for blank title, got %v", err)
	}
}

func TestReorderDailyTasks_IgnoresOtherAirdrops(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	first := createAirdrop(t, store, "first")
	second := createAirdrop(t, store, "second")

	a := createDailyTask(t, store, first.ID, "A")
	b := createDailyTask(t, store, first.ID, "B")
	foreign := createDailyTask(t, store, second.ID, "Foreign")

	err := store.ReorderDailyTasks(ctx, first.ID, []models.PositionUpdate{
		{ID: a.ID, Position: 1},
		{ID: b.ID, Position: 0},
		{ID: foreign.ID, Position: 5},
	})
	if err != nil {
		t.Fatalf("ReorderDailyTasks failed: %v", err)
	}

	if got, want := taskPositions(t, store, first.ID), map[string]int{"A": 1, "B": 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if got := taskPositions(t, store, second.ID); got["Foreign"] != 0 {
		t.Errorf("expected task of another airdrop to stay at 0, got %v", got)
	}
}

func TestDeleteDailyTask(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	a := createAirdrop(t, store, "A")
	createDailyTask(t, store, a.ID, "One")
	two := createDailyTask(t, store, a.ID, "Two")
	createDailyTask(t, store, a.ID, "Three")

	if err := store.DeleteDailyTask(ctx, two.ID); err != nil {
		t.Fatalf("DeleteDailyTask failed: %v", err)
	}
	if got, want := taskPositions(t, store, a.ID), map[string]int{"One": 0, "Three": 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if err := store.DeleteDailyTask(ctx, two.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestMarkDailyTaskDone_Idempotent(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	a := createAirdrop(t, store, "A")
	task := createDailyTask(t, store, a.ID, "Swap")

	for i := 0; i < 3; i++ {
		got, err := store.MarkDailyTaskDone(ctx, task.ID, "2024-06-01")
		if err != nil {
			t.Fatalf("MarkDailyTaskDone call %d failed: %v", i+1, err)
		}
		if len(got.DoneDates) != 1 {
			t.Fatalf("call %d: expected one date, got %v", i+1, got.DoneDates)
		}
	}

	stored, err := store.GetDailyTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetDailyTask failed: %v", err)
	}
	if want := (models.DoneDates{"2024-06-01"}); !reflect.DeepEqual(stored.DoneDates, want) {
		t.Fatalf("expected %v, got %v", want, stored.DoneDates)
	}
}

func TestMarkDailyTaskDone_DistinctDates(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	a := createAirdrop(t, store, "A")
	task := createDailyTask(t, store, a.ID, "Swap")

	for _, date := range []string{"2024-06-01", "2024-06-02", "2024-06-01"} {
		if _, err := store.MarkDailyTaskDone(ctx, task.ID, date); err != nil {
			t.Fatalf("MarkDailyTaskDone(%s) failed: %v", date, err)
		}
	}

	stored, _ := store.GetDailyTask(ctx, task.ID)
	if len(stored.DoneDates) != 2 {
		t.Fatalf("expected two dates, got %v", stored.DoneDates)
	}
	if !stored.DoneOn("2024-06-01") || !stored.DoneOn("2024-06-02") {
		t.Errorf("expected both dates recorded, got %v", stored.DoneDates)
	}
	if stored.DoneOn("2024-06-03") {
		t.Error("did not expect 2024-06-03 to be recorded")
	}
}

func TestMarkDailyTaskDone_Concurrent(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	a := createAirdrop(t, store, "A")
	task := createDailyTask(t, store, a.ID, "Swap")

	dates := []string{"2024-06-01", "2024-06-02", "2024-06-03", "2024-06-04"}
	var wg sync.WaitGroup
	errs := make(chan error, len(dates)*2)
	for _, date := range dates {
		for n := 0; n < 2; n++ {
			wg.Add(1)
			go func(date string) {
				defer wg.Done()
				if _, err := store.MarkDailyTaskDone(ctx, task.ID, date); err != nil {
					errs <- err
				}
			}(date)
		}
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatalf("concurrent MarkDailyTaskDone failed: %v", err)
	}

	stored, _ := store.GetDailyTask(ctx, task.ID)
	if len(stored.DoneDates) != len(dates) {
		t.Fatalf("expected %d dates, got %v", len(dates), stored.DoneDates)
	}
}

func TestMarkDailyTaskDone_Errors(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	if _, err := store.MarkDailyTaskDone(ctx, 404, "2024-06-01"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	a := createAirdrop(t, store, "A")
	task := createDailyTask(t, store, a.ID, "Swap")

	for _, date := range []string{"", "06/01/2024", "2024-13-01", "2024-6-1"} {
		if _, err := store.MarkDailyTaskDone(ctx, task.ID, date); !errors.Is(err, models.ErrInvalid) {
			t.Errorf("date %q: expected validation error, got %v", date, err)
		}
	}

	stored, _ := store.GetDailyTask(ctx, task.ID)
	if len(stored.DoneDates) != 0 {
		t.Errorf("expected rejected dates to leave the set empty, got %v", stored.DoneDates)
	}
}

func TestScanDailyTask_MalformedDoneDates(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	a := createAirdrop(t, store, "A")
	task := createDailyTask(t, store, a.ID, "Swap")

	if _, err := store.db.ExecContext(ctx, `UPDATE airdrop_daily_tasks SET done_dates = 'not json' WHERE id = ?`, task.ID); err != nil {
		t.Fatalf("failed to corrupt done_dates: %v", err)
	}

	got, err := store.MarkDailyTaskDone(ctx, task.ID, "2024-06-01")
	if err != nil {
		t.Fatalf("MarkDailyTaskDone failed: %v", err)
	}
	if want := (models.DoneDates{"2024-06-01"}); !reflect.DeepEqual(got.DoneDates, want) {
		t.Fatalf("expected malformed set to be treated as empty, got %v", got.DoneDates)
	}
}
