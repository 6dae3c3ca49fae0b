package cart

import "errors"

// ErrInvalidItem covers adds that are missing their identity fields or carry
// a non-positive quantity.
var ErrInvalidItem = errors.New("sessionId, productId and a positive quantity are required")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListBySession(sessionID string) []Item {
	return s.repo.ListBySession(sessionID)
}

func (s *Service) Add(item Item) (Item, error) {
	if item.SessionID == "" || item.ProductID == "" || item.Quantity < 1 {
		return Item{}, ErrInvalidItem
	}
	return s.repo.Add(item), nil
}

func (s *Service) UpdateQuantity(itemID string, quantity int) (Item, error) {
	if quantity < 1 {
		return Item{}, ErrInvalidItem
	}
	return s.repo.UpdateQuantity(itemID, quantity)
}

func (s *Service) Remove(itemID string) bool {
	return s.repo.Remove(itemID)
}

// Clear always succeeds; clearing an unknown session is a no-op.
func (s *Service) Clear(sessionID string) {
	s.repo.Clear(sessionID)
}
