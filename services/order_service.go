package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"storefront/lib"
	"storefront/structs"
	"sync/atomic"
	"time"

	"github.com/MonkyMars/gecho"
)

// OrderState is a step of a single order submission.
type OrderState string

const (
	OrderStateIdle                OrderState = "idle"
	OrderStateAcquiringCredential OrderState = "acquiring_credential"
	OrderStateSending             OrderState = "sending"
	OrderStateSucceeded           OrderState = "succeeded"
	OrderStateFailed              OrderState = "failed"
)

const (
	orderSuccessNotice = "Order placed successfully! Order ID: "
	orderFailureNotice = "Error placing order. See console for details."
)

// CredentialSource hands out the bearer credential for one outgoing request.
type CredentialSource interface {
	GetCredential(ctx context.Context) (*structs.Credential, error)
}

// CredentialSourceFunc adapts a plain function to a CredentialSource.
type CredentialSourceFunc func(ctx context.Context) (*structs.Credential, error)

func (f CredentialSourceFunc) GetCredential(ctx context.Context) (*structs.Credential, error) {
	return f(ctx)
}

// OrderOutcome is the result of one submission. State is always final.
type OrderOutcome struct {
	State   OrderState
	OrderID string
	Err     error
	Trail   []OrderState
}

// Notice is the message shown to the user for this outcome.
func (o *OrderOutcome) Notice() string {
	if o.State == OrderStateSucceeded {
		return orderSuccessNotice + o.OrderID
	}
	return orderFailureNotice
}

func (o *OrderOutcome) Succeeded() bool {
	return o.State == OrderStateSucceeded
}

func (o *OrderOutcome) enter(state OrderState) {
	o.State = state
	o.Trail = append(o.Trail, state)
}

func (o *OrderOutcome) fail(err error) *OrderOutcome {
	o.Err = err
	o.enter(OrderStateFailed)
	return o
}

type OrderService struct {
	logger   *gecho.Logger
	api      *APIClient
	inFlight atomic.Int64
}

func NewOrderService(logger *gecho.Logger, api *APIClient) *OrderService {
	return &OrderService{
		logger: logger,
		api:    api,
	}
}

// InFlight reports how many submissions are between Idle and a final state.
func (os *OrderService) InFlight() int64 {
	return os.inFlight.Load()
}

// PlaceOrder buys one unit of productID on behalf of whoever creds belongs to.
// It is a single attempt: the credential is fetched once, the request is sent
// once, and every failure ends in OrderStateFailed.
func (os *OrderService) PlaceOrder(ctx context.Context, creds CredentialSource, productID string) *OrderOutcome {
	startTime := time.Now()
	outcome := &OrderOutcome{}
	outcome.enter(OrderStateIdle)

	os.inFlight.Add(1)
	OrdersInFlight.Inc()
	defer func() {
		os.inFlight.Add(-1)
		OrdersInFlight.Dec()
		os.record(outcome, productID, time.Since(startTime))
	}()

	os.logger.Info("Placing order", gecho.Field("product_id", productID))

	outcome.enter(OrderStateAcquiringCredential)
	if creds == nil {
		return outcome.fail(lib.ErrNoActiveSession)
	}

	credential, err := creds.GetCredential(ctx)
	if err != nil {
		if !errors.Is(err, lib.ErrNoActiveSession) {
			err = fmt.Errorf("%w: %w", lib.ErrNoActiveSession, err)
		}
		return outcome.fail(err)
	}
	if credential == nil || credential.Token == "" {
		return outcome.fail(fmt.Errorf("%w: empty credential", lib.ErrNoActiveSession))
	}

	req := &structs.OrderRequest{
		Items:  []structs.LineItem{{ProductID: productID, Quantity: 1}},
		UserID: credential.UserID,
	}
	if err := lib.Validate(req); err != nil {
		return outcome.fail(fmt.Errorf("%w: %w", lib.ErrInvalidOrder, err))
	}

	outcome.enter(OrderStateSending)

	header := http.Header{}
	header.Set("Authorization", credential.Token)

	var result structs.OrderResult
	if err := os.api.Do(ctx, http.MethodPost, "/orders", req, header, &result); err != nil {
		return outcome.fail(err)
	}
	if result.OrderID == "" {
		return outcome.fail(fmt.Errorf("%w: response has no OrderId", lib.ErrMalformedResponse))
	}

	outcome.OrderID = result.OrderID
	outcome.enter(OrderStateSucceeded)
	return outcome
}

func (os *OrderService) record(outcome *OrderOutcome, productID string, elapsed time.Duration) {
	if outcome.Succeeded() {
		OrderSubmissions.WithLabelValues(string(OrderStateSucceeded), "").Inc()
		os.logger.Info("Order placed",
			gecho.Field("product_id", productID),
			gecho.Field("order_id", outcome.OrderID),
			gecho.Field("elapsed_time_ms", elapsed.Milliseconds()),
		)
		return
	}

	reason := FailureReason(outcome.Err)
	OrderSubmissions.WithLabelValues(string(OrderStateFailed), reason).Inc()
	os.logger.Error("Error placing order",
		gecho.Field("error", outcome.Err),
		gecho.Field("reason", reason),
		gecho.Field("product_id", productID),
		gecho.Field("elapsed_time_ms", elapsed.Milliseconds()),
	)
}

// FailureReason names the error taxonomy bucket of a failed submission.
func FailureReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, lib.ErrNoActiveSession):
		return "no_active_session"
	case errors.Is(err, lib.ErrInvalidOrder):
		return "invalid_order"
	case errors.Is(err, lib.ErrMalformedResponse):
		return "malformed_response"
	default:
		return "transport_failure"
	}
}
