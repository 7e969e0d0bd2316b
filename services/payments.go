package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/roamly/roamly/core"
)

// PaymentsService starts and verifies paid-tier checkouts. The payment
// processor itself sits behind the backend; the client only handles the
// hosted checkout handle.
type PaymentsService struct {
	transport *Transport
}

func NewPaymentsService(transport *Transport) *PaymentsService {
	return &PaymentsService{transport: transport}
}

// CreateCheckoutSession asks the backend for a hosted checkout page for
// the given billing period.
func (s *PaymentsService) CreateCheckoutSession(ctx context.Context, plan core.SubscriptionPlan) (*core.CheckoutSession, error) {
	body := map[string]core.SubscriptionPlan{"plan": plan}

	var session core.CheckoutSession
	if err := s.transport.Do(ctx, http.MethodPost, pathCreateCheckoutSession, nil, body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// VerifySession confirms a completed checkout by its session ID.
func (s *PaymentsService) VerifySession(ctx context.Context, sessionID string) (*core.PaymentVerification, error) {
	query := url.Values{}
	query.Set("session_id", sessionID)

	var verification core.PaymentVerification
	if err := s.transport.Do(ctx, http.MethodGet, pathVerifySession, query, nil, &verification); err != nil {
		return nil, err
	}
	return &verification, nil
}
