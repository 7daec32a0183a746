package orders

import (
	"errors"
	"net/http"
	"storefront/api/middleware"
	"storefront/lib"
	"storefront/services"
	"storefront/structs"

	"github.com/MonkyMars/gecho"
)

// CreateOrder runs the same submission flow as the Buy Now button and maps
// the outcome onto a status code.
func (orm *OrderRoutesManager) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.BuyRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("error.order.invalidRequestBody"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	sessionID := middleware.SessionIDFromRequest(r)
	outcome := orm.orderService.PlaceOrder(r.Context(), orm.sessionService.ForSession(sessionID), body.ProductID)

	if outcome.Succeeded() {
		gecho.Success(w,
			gecho.WithMessage(outcome.Notice()),
			gecho.WithData(map[string]any{
				"order_id": outcome.OrderID,
				"state":    outcome.State,
			}),
			gecho.Send(),
		)
		return
	}

	data := map[string]any{
		"state":  outcome.State,
		"reason": services.FailureReason(outcome.Err),
	}

	switch {
	case errors.Is(outcome.Err, lib.ErrNoActiveSession):
		gecho.Unauthorized(w, gecho.WithMessage(outcome.Notice()), gecho.WithData(data), gecho.Send())
	case errors.Is(outcome.Err, lib.ErrInvalidOrder):
		gecho.BadRequest(w, gecho.WithMessage(outcome.Notice()), gecho.WithData(data), gecho.Send())
	default:
		gecho.ServiceUnavailable(w, gecho.WithMessage(outcome.Notice()), gecho.WithData(data), gecho.Send())
	}
}
