package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/simmi-91/freezer-storage-app/domain"
	"github.com/simmi-91/freezer-storage-app/entities"
	"github.com/simmi-91/freezer-storage-app/pkg/inventory"
)

var errStoreDown = errors.New("store down")

// stubRepo wraps the in-memory repository with switchable failures and an
// optional rendezvous on Replace for the in-flight conflict test.
type stubRepo struct {
	inner inventory.ItemRepository

	failList    bool
	failInsert  bool
	failReplace bool
	failRemove  bool

	insertCalls int

	replaceStarted chan struct{}
	replaceRelease chan struct{}
}

func newStubRepo() *stubRepo {
	return &stubRepo{inner: inventory.NewMemoryItemRepository()}
}

func (r *stubRepo) ListAll(ctx context.Context) ([]entities.FreezerItem, error) {
	if r.failList {
		return nil, errStoreDown
	}
	return r.inner.ListAll(ctx)
}

func (r *stubRepo) Insert(ctx context.Context, item *entities.FreezerItem) error {
	r.insertCalls++
	if r.failInsert {
		return errStoreDown
	}
	return r.inner.Insert(ctx, item)
}

func (r *stubRepo) Replace(ctx context.Context, item *entities.FreezerItem) error {
	if r.replaceStarted != nil {
		r.replaceStarted <- struct{}{}
		<-r.replaceRelease
	}
	if r.failReplace {
		return errStoreDown
	}
	return r.inner.Replace(ctx, item)
}

func (r *stubRepo) Remove(ctx context.Context, id uint) error {
	if r.failRemove {
		return errStoreDown
	}
	return r.inner.Remove(ctx, id)
}

func validDraft(name string) domain.AddItemRequest {
	return domain.AddItemRequest{
		Name:       name,
		Category:   "Meat",
		Quantity:   1,
		Unit:       "pcs",
		ExpiryDate: "2026-12-01",
	}
}

func newLoadedService(t *testing.T, repo inventory.ItemRepository) inventory.InventoryService {
	t.Helper()
	svc := inventory.NewInventoryService(repo)
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return svc
}

func TestAddItemAssignsUniqueIDs(t *testing.T) {
	svc := newLoadedService(t, newStubRepo())
	ctx := context.Background()

	first, err := svc.AddItem(ctx, validDraft("Chicken thighs"))
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	second, err := svc.AddItem(ctx, validDraft("Cod fillets"))
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	if first.ID == 0 || second.ID == 0 {
		t.Fatalf("expected nonzero ids, got %d and %d", first.ID, second.ID)
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct ids, both are %d", first.ID)
	}
	if got := len(svc.List()); got != 2 {
		t.Fatalf("List() has %d items, want 2", got)
	}
}

func TestAddItemValidatesBeforeStoreCall(t *testing.T) {
	repo := newStubRepo()
	svc := newLoadedService(t, repo)
	ctx := context.Background()

	cases := []struct {
		name  string
		draft domain.AddItemRequest
		want  error
	}{
		{"empty name", func() domain.AddItemRequest { d := validDraft("  "); return d }(), domain.ErrEmptyName},
		{"unknown category", func() domain.AddItemRequest { d := validDraft("x"); d.Category = "Snacks"; return d }(), domain.ErrInvalidCategory},
		{"zero quantity", func() domain.AddItemRequest { d := validDraft("x"); d.Quantity = 0; return d }(), domain.ErrInvalidQuantity},
		{"bad expiry", func() domain.AddItemRequest { d := validDraft("x"); d.ExpiryDate = "12/01/2026"; return d }(), domain.ErrInvalidExpiryDate},
		{"bad date added", func() domain.AddItemRequest { d := validDraft("x"); d.DateAdded = "soon"; return d }(), domain.ErrInvalidDateAdded},
	}

	for _, tc := range cases {
		if _, err := svc.AddItem(ctx, tc.draft); !errors.Is(err, tc.want) {
			t.Errorf("%s: got error %v, want %v", tc.name, err, tc.want)
		}
		if !domain.IsValidationError(tc.want) {
			t.Errorf("%s: %v not classified as validation error", tc.name, tc.want)
		}
	}

	if repo.insertCalls != 0 {
		t.Fatalf("store was called %d times for invalid drafts, want 0", repo.insertCalls)
	}
	if got := len(svc.List()); got != 0 {
		t.Fatalf("List() has %d items after failed creates, want 0", got)
	}
}

func TestAddItemPersistenceFailureLeavesListUnchanged(t *testing.T) {
	repo := newStubRepo()
	svc := newLoadedService(t, repo)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, validDraft("Peas")); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	repo.failInsert = true
	_, err := svc.AddItem(ctx, validDraft("Corn"))
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("got error %v, want %v", err, domain.ErrStoreUnavailable)
	}
	if got := len(svc.List()); got != 1 {
		t.Fatalf("List() has %d items after rejected create, want 1", got)
	}
}

func TestGetItem(t *testing.T) {
	svc := newLoadedService(t, newStubRepo())
	ctx := context.Background()

	created, err := svc.AddItem(ctx, validDraft("Peas"))
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	got, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID != created.ID || got.Name != "Peas" {
		t.Fatalf("Get returned %+v", got)
	}

	if _, err := svc.Get(999); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("Get missing id: got %v, want %v", err, domain.ErrItemNotFound)
	}
}

func TestUpdateMissingItem(t *testing.T) {
	svc := newLoadedService(t, newStubRepo())
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, validDraft("Peas")); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	before := svc.List()

	_, err := svc.UpdateItem(ctx, 999, domain.UpdateItemRequest{Name: "new name"})
	if !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("got error %v, want %v", err, domain.ErrItemNotFound)
	}

	after := svc.List()
	if len(after) != len(before) || after[0].Name != before[0].Name {
		t.Fatalf("collection changed by failed update: %+v vs %+v", after, before)
	}
}

func TestUpdatePersistenceFailureKeepsPriorValue(t *testing.T) {
	repo := newStubRepo()
	svc := newLoadedService(t, repo)
	ctx := context.Background()

	created, err := svc.AddItem(ctx, validDraft("Peas"))
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	repo.failReplace = true
	_, err = svc.UpdateItem(ctx, created.ID, domain.UpdateItemRequest{Name: "Snap peas", Quantity: 3})
	if !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("got error %v, want %v", err, domain.ErrStoreUnavailable)
	}

	items := svc.List()
	if items[0].Name != "Peas" || items[0].Quantity != 1 {
		t.Fatalf("failed update leaked into collection: %+v", items[0])
	}
}

func TestUpdateAppliesPartialChanges(t *testing.T) {
	svc := newLoadedService(t, newStubRepo())
	ctx := context.Background()

	draft := validDraft("Peas")
	draft.DateAdded = "2026-01-05"
	draft.Notes = "left drawer"
	created, err := svc.AddItem(ctx, draft)
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	unknown := ""
	updated, err := svc.UpdateItem(ctx, created.ID, domain.UpdateItemRequest{
		Quantity:  2.5,
		DateAdded: &unknown,
	})
	if err != nil {
		t.Fatalf("UpdateItem failed: %v", err)
	}

	if updated.Name != "Peas" || updated.Unit != "pcs" || updated.Notes != "left drawer" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if updated.Quantity != 2.5 {
		t.Fatalf("quantity = %v, want 2.5", updated.Quantity)
	}
	if updated.DateAdded != "" {
		t.Fatalf("date added = %q, want unknown", updated.DateAdded)
	}
}

func TestConcurrentUpdateSameItemConflicts(t *testing.T) {
	repo := newStubRepo()
	repo.replaceStarted = make(chan struct{})
	repo.replaceRelease = make(chan struct{})
	svc := newLoadedService(t, repo)
	ctx := context.Background()

	created, err := svc.AddItem(ctx, validDraft("Peas"))
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.UpdateItem(ctx, created.ID, domain.UpdateItemRequest{Name: "First"})
		firstDone <- err
	}()

	// Wait until the first update holds the item's mutation lock.
	<-repo.replaceStarted

	if _, err := svc.UpdateItem(ctx, created.ID, domain.UpdateItemRequest{Name: "Second"}); !errors.Is(err, domain.ErrMutationInFlight) {
		t.Fatalf("second update got %v, want %v", err, domain.ErrMutationInFlight)
	}

	repo.replaceStarted = nil
	close(repo.replaceRelease)
	if err := <-firstDone; err != nil {
		t.Fatalf("first update failed: %v", err)
	}

	// Lock released: a follow-up mutation succeeds.
	if _, err := svc.UpdateItem(ctx, created.ID, domain.UpdateItemRequest{Name: "Third"}); err != nil {
		t.Fatalf("follow-up update failed: %v", err)
	}
	if items := svc.List(); items[0].Name != "Third" {
		t.Fatalf("final name = %q, want Third", items[0].Name)
	}
}

func TestDelete(t *testing.T) {
	repo := newStubRepo()
	svc := newLoadedService(t, repo)
	ctx := context.Background()

	created, err := svc.AddItem(ctx, validDraft("Peas"))
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	if err := svc.DeleteItem(ctx, 999); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("delete missing got %v, want %v", err, domain.ErrItemNotFound)
	}

	repo.failRemove = true
	if err := svc.DeleteItem(ctx, created.ID); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("delete with store down got %v, want %v", err, domain.ErrStoreUnavailable)
	}
	if got := len(svc.List()); got != 1 {
		t.Fatalf("item vanished after failed delete, list has %d items", got)
	}

	repo.failRemove = false
	if err := svc.DeleteItem(ctx, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if got := len(svc.List()); got != 0 {
		t.Fatalf("List() has %d items after delete, want 0", got)
	}
	if svc.Has(created.ID) {
		t.Fatal("Has reports deleted item as present")
	}
}

func TestAddItemBatchPartialFailure(t *testing.T) {
	svc := newLoadedService(t, newStubRepo())
	ctx := context.Background()

	bad := validDraft("Mystery")
	bad.Quantity = -1

	res := svc.AddItemBatch(ctx, []domain.AddItemRequest{
		validDraft("Peas"),
		bad,
		validDraft("Corn"),
	})

	if len(res.Saved) != 2 {
		t.Fatalf("saved %d drafts, want 2", len(res.Saved))
	}
	if len(res.Failed) != 1 || res.Failed[0].Index != 1 || res.Failed[0].Name != "Mystery" {
		t.Fatalf("unexpected failure report: %+v", res.Failed)
	}
	if got := len(svc.List()); got != 2 {
		t.Fatalf("List() has %d items, want 2 (earlier successes stay committed)", got)
	}
}

func TestLoadFailure(t *testing.T) {
	repo := newStubRepo()
	repo.failList = true
	svc := inventory.NewInventoryService(repo)

	if err := svc.Load(context.Background()); !errors.Is(err, domain.ErrStoreUnavailable) {
		t.Fatalf("Load got %v, want %v", err, domain.ErrStoreUnavailable)
	}
	if status := svc.Status(); status.State != inventory.LoadFailed || status.Error == "" {
		t.Fatalf("status after failed load: %+v", status)
	}
	// list() still answers, just empty.
	if got := len(svc.List()); got != 0 {
		t.Fatalf("List() has %d items before successful load, want 0", got)
	}

	repo.failList = false
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if status := svc.Status(); status.State != inventory.LoadReady || status.Error != "" {
		t.Fatalf("status after reload: %+v", status)
	}
}
