package navigation

import (
	"sync"

	"github.com/simmi-91/freezer-storage-app/domain"
)

// ItemResolver reports whether an item id still exists in the canonical
// collection. The machine uses it to fail soft when an edit form targets a
// deleted item.
type ItemResolver func(id uint) bool

type (
	NavigationService interface {
		Current() domain.ViewModeResponse
		Navigate(req domain.NavigateRequest) (domain.ViewModeResponse, error)
		Back() domain.ViewModeResponse
		SaveForm() (domain.ViewModeResponse, error)
		CancelForm() (domain.ViewModeResponse, error)
	}

	navigationService struct {
		mu      sync.Mutex
		current domain.ViewMode
		history []domain.ViewMode
		hasItem ItemResolver
	}
)

func NewNavigationService(hasItem ItemResolver) NavigationService {
	return &navigationService{
		current: domain.ViewMode{Screen: domain.ScreenDashboard},
		hasItem: hasItem,
	}
}

func (s *navigationService) Current() domain.ViewModeResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.response()
}

// Navigate performs a forward transition: the current mode is pushed onto the
// history stack and the requested mode becomes active.
func (s *navigationService) Navigate(req domain.NavigateRequest) (domain.ViewModeResponse, error) {
	target, err := modeFromRequest(req)
	if err != nil {
		return domain.ViewModeResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.push(s.resolve(target))
	return s.response(), nil
}

// Back pops the previously pushed mode, falling back to the dashboard when
// the stack is empty.
func (s *navigationService) Back() domain.ViewModeResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pop()
	return s.response()
}

// SaveForm leaves the active form after a successful save. It is a normal
// forward transition to the browse list, subject to the usual history rules.
func (s *navigationService) SaveForm() (domain.ViewModeResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !isForm(s.current.Screen) {
		return domain.ViewModeResponse{}, domain.ErrNotOnForm
	}
	s.push(domain.ViewMode{Screen: domain.ScreenBrowseList})
	return s.response(), nil
}

// CancelForm abandons the active form and returns to the prior screen, which
// is exactly a backward navigation.
func (s *navigationService) CancelForm() (domain.ViewModeResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !isForm(s.current.Screen) {
		return domain.ViewModeResponse{}, domain.ErrNotOnForm
	}
	s.pop()
	return s.response(), nil
}

// push and pop must be called with s.mu held.
func (s *navigationService) push(target domain.ViewMode) {
	s.history = append(s.history, s.current)
	s.current = target
}

func (s *navigationService) pop() {
	if n := len(s.history); n > 0 {
		s.current = s.resolve(s.history[n-1])
		s.history = s.history[:n-1]
		return
	}
	s.current = domain.ViewMode{Screen: domain.ScreenDashboard}
}

// resolve redirects an edit form whose item has vanished to the browse list,
// whether the form is entered directly or restored from history.
func (s *navigationService) resolve(mode domain.ViewMode) domain.ViewMode {
	if mode.Screen == domain.ScreenEditForm && (s.hasItem == nil || !s.hasItem(mode.ItemID)) {
		return domain.ViewMode{Screen: domain.ScreenBrowseList}
	}
	return mode
}

func (s *navigationService) response() domain.ViewModeResponse {
	return domain.ViewModeResponse{Current: s.current, Depth: len(s.history)}
}

func isForm(screen domain.Screen) bool {
	return screen == domain.ScreenAddForm || screen == domain.ScreenEditForm
}

func modeFromRequest(req domain.NavigateRequest) (domain.ViewMode, error) {
	mode := domain.ViewMode{Screen: domain.Screen(req.Screen)}
	switch mode.Screen {
	case domain.ScreenDashboard, domain.ScreenAddForm, domain.ScreenPhotoCapture:
		return mode, nil
	case domain.ScreenEditForm:
		if req.ItemID == 0 {
			return domain.ViewMode{}, domain.ErrItemNotFound
		}
		mode.ItemID = req.ItemID
		return mode, nil
	case domain.ScreenBrowseList:
		if req.Category != "" && req.Category != string(domain.CategoryAll) {
			category, err := domain.ParseCategory(req.Category)
			if err != nil {
				return domain.ViewMode{}, err
			}
			mode.Category = category
		}
		if req.Sort != "" {
			sortKey, err := domain.ParseSortKey(req.Sort)
			if err != nil {
				return domain.ViewMode{}, err
			}
			mode.Sort = sortKey
		}
		return mode, nil
	default:
		return domain.ViewMode{}, domain.ErrUnknownScreen
	}
}
