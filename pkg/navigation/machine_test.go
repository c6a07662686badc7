package navigation_test

import (
	"errors"
	"testing"

	"github.com/simmi-91/freezer-storage-app/domain"
	"github.com/simmi-91/freezer-storage-app/pkg/navigation"
)

func alwaysHas(uint) bool { return true }

func svcAt(t *testing.T, hasItem navigation.ItemResolver, screens ...domain.NavigateRequest) navigation.NavigationService {
	t.Helper()
	svc := navigation.NewNavigationService(hasItem)
	for _, req := range screens {
		if _, err := svc.Navigate(req); err != nil {
			t.Fatalf("Navigate(%+v) failed: %v", req, err)
		}
	}
	return svc
}

func TestStartsOnDashboard(t *testing.T) {
	svc := navigation.NewNavigationService(alwaysHas)

	got := svc.Current()
	if got.Current.Screen != domain.ScreenDashboard {
		t.Fatalf("initial screen = %q, want dashboard", got.Current.Screen)
	}
	if got.Depth != 0 {
		t.Fatalf("initial history depth = %d, want 0", got.Depth)
	}
}

func TestNavigatePushesHistory(t *testing.T) {
	svc := svcAt(t, alwaysHas,
		domain.NavigateRequest{Screen: string(domain.ScreenBrowseList)},
		domain.NavigateRequest{Screen: string(domain.ScreenAddForm)},
	)

	got := svc.Current()
	if got.Current.Screen != domain.ScreenAddForm || got.Depth != 2 {
		t.Fatalf("after two navigations: %+v", got)
	}

	if got := svc.Back(); got.Current.Screen != domain.ScreenBrowseList || got.Depth != 1 {
		t.Fatalf("first back: %+v", got)
	}
	if got := svc.Back(); got.Current.Screen != domain.ScreenDashboard || got.Depth != 0 {
		t.Fatalf("second back: %+v", got)
	}
	// Empty stack: back stays on the dashboard.
	if got := svc.Back(); got.Current.Screen != domain.ScreenDashboard || got.Depth != 0 {
		t.Fatalf("back on empty stack: %+v", got)
	}
}

func TestNavigateValidation(t *testing.T) {
	svc := navigation.NewNavigationService(alwaysHas)

	if _, err := svc.Navigate(domain.NavigateRequest{Screen: "settings"}); !errors.Is(err, domain.ErrUnknownScreen) {
		t.Errorf("unknown screen: got %v, want %v", err, domain.ErrUnknownScreen)
	}
	if _, err := svc.Navigate(domain.NavigateRequest{Screen: string(domain.ScreenEditForm)}); !errors.Is(err, domain.ErrItemNotFound) {
		t.Errorf("edit without item id: got %v, want %v", err, domain.ErrItemNotFound)
	}
	if _, err := svc.Navigate(domain.NavigateRequest{Screen: string(domain.ScreenBrowseList), Category: "Snacks"}); !errors.Is(err, domain.ErrInvalidCategory) {
		t.Errorf("bad browse category: got %v, want %v", err, domain.ErrInvalidCategory)
	}
	if _, err := svc.Navigate(domain.NavigateRequest{Screen: string(domain.ScreenBrowseList), Sort: "color"}); !errors.Is(err, domain.ErrInvalidSortKey) {
		t.Errorf("bad browse sort: got %v, want %v", err, domain.ErrInvalidSortKey)
	}

	// Failed navigations leave the machine where it was.
	if got := svc.Current(); got.Current.Screen != domain.ScreenDashboard || got.Depth != 0 {
		t.Fatalf("state after rejected navigations: %+v", got)
	}
}

func TestBrowseModeCarriesFilterAndSort(t *testing.T) {
	svc := svcAt(t, alwaysHas, domain.NavigateRequest{
		Screen:   string(domain.ScreenBrowseList),
		Category: "Seafood",
		Sort:     "name",
	})

	got := svc.Current().Current
	if got.Category != domain.CategorySeafood || got.Sort != domain.SortByName {
		t.Fatalf("browse mode: %+v", got)
	}
}

func TestSaveFormGoesToBrowseList(t *testing.T) {
	svc := svcAt(t, alwaysHas, domain.NavigateRequest{Screen: string(domain.ScreenAddForm)})

	got, err := svc.SaveForm()
	if err != nil {
		t.Fatalf("SaveForm failed: %v", err)
	}
	if got.Current.Screen != domain.ScreenBrowseList {
		t.Fatalf("after save: %+v", got)
	}
	// Save is a forward transition, so back returns to the form itself.
	if got := svc.Back(); got.Current.Screen != domain.ScreenAddForm {
		t.Fatalf("back after save: %+v", got)
	}
}

func TestCancelFormReturnsToPriorScreen(t *testing.T) {
	svc := svcAt(t, alwaysHas,
		domain.NavigateRequest{Screen: string(domain.ScreenBrowseList)},
		domain.NavigateRequest{Screen: string(domain.ScreenAddForm)},
	)

	got, err := svc.CancelForm()
	if err != nil {
		t.Fatalf("CancelForm failed: %v", err)
	}
	if got.Current.Screen != domain.ScreenBrowseList || got.Depth != 1 {
		t.Fatalf("after cancel: %+v", got)
	}
}

func TestFormActionsRequireForm(t *testing.T) {
	svc := navigation.NewNavigationService(alwaysHas)

	if _, err := svc.SaveForm(); !errors.Is(err, domain.ErrNotOnForm) {
		t.Errorf("SaveForm off-form: got %v, want %v", err, domain.ErrNotOnForm)
	}
	if _, err := svc.CancelForm(); !errors.Is(err, domain.ErrNotOnForm) {
		t.Errorf("CancelForm off-form: got %v, want %v", err, domain.ErrNotOnForm)
	}
}

func TestEditFormMissingItemFailsSoft(t *testing.T) {
	svc := svcAt(t, func(uint) bool { return false })

	got, err := svc.Navigate(domain.NavigateRequest{Screen: string(domain.ScreenEditForm), ItemID: 42})
	if err != nil {
		t.Fatalf("Navigate failed: %v", err)
	}
	if got.Current.Screen != domain.ScreenBrowseList {
		t.Fatalf("edit of missing item landed on %q, want browse list", got.Current.Screen)
	}
}

func TestHistoryRestoreRechecksEditItem(t *testing.T) {
	present := true
	svc := svcAt(t, func(uint) bool { return present },
		domain.NavigateRequest{Screen: string(domain.ScreenEditForm), ItemID: 7},
		domain.NavigateRequest{Screen: string(domain.ScreenPhotoCapture)},
	)

	// The item is deleted while the user is elsewhere; going back must not
	// restore a form for it.
	present = false
	got := svc.Back()
	if got.Current.Screen != domain.ScreenBrowseList {
		t.Fatalf("restored screen = %q, want browse list", got.Current.Screen)
	}
}
