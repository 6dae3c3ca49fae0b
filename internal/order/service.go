package order

import (
	"errors"
	"time"
)

var ErrInvalidPaymentMethod = errors.New("unknown payment method")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stamps the order and derives its initial payment status from the
// payment method: COD and bank transfers wait for settlement, JazzCash and
// card payments wait for gateway confirmation.
func (s *Service) Create(d Draft) (Order, error) {
	status, err := derivePaymentStatus(d.PaymentMethod)
	if err != nil {
		return Order{}, err
	}
	ord := Order{
		CustomerName:    d.CustomerName,
		CustomerEmail:   d.CustomerEmail,
		CustomerPhone:   d.CustomerPhone,
		CustomerAddress: d.CustomerAddress,
		CustomerCity:    d.CustomerCity,
		CustomerState:   d.CustomerState,
		CustomerZip:     d.CustomerZip,
		PaymentMethod:   d.PaymentMethod,
		PaymentStatus:   status,
		Items:           d.Items,
		Subtotal:        d.Subtotal,
		Tax:             d.Tax,
		Shipping:        d.Shipping,
		Total:           d.Total,
		Status:          StatusPending,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}
	return s.repo.Create(ord), nil
}

func (s *Service) List() []Order {
	return s.repo.List()
}

func (s *Service) GetByID(id string) (Order, error) {
	return s.repo.GetByID(id)
}

func derivePaymentStatus(method string) (string, error) {
	switch method {
	case PaymentCOD, PaymentBank:
		return PaymentPending, nil
	case PaymentJazzCash, PaymentCard:
		return PaymentProcessing, nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}
