package tool

import (
	"context"
	"fmt"
	"strings"

	statex "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/state"
)

// cancelWindowMinutes is the business rule: cancellation is allowed only
// within this many minutes of purchase, boundary inclusive.
const cancelWindowMinutes = 60.0

// cancelEpsilon absorbs floating-point noise at the exact boundary.
const cancelEpsilon = 1e-9

// LookupOrder matches order id and email case-insensitively on both fields.
// A miss returns (nil, nil); it is a recovered condition, not a failure.
func (c *Catalog) LookupOrder(ctx context.Context, orderID string, email string) (*statex.Order, error) {
	orders, err := c.loadOrders()
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if strings.EqualFold(orders[i].OrderID, orderID) && strings.EqualFold(orders[i].Email, email) {
			return &orders[i], nil
		}
	}
	return nil, nil
}

// CheckCancellation evaluates the 60-minute rule for the order against the
// catalog's reference clock.
func (c *Catalog) CheckCancellation(ctx context.Context, orderID string) (statex.PolicyDecision, error) {
	orders, err := c.loadOrders()
	if err != nil {
		return statex.PolicyDecision{}, err
	}

	var order *statex.Order
	for i := range orders {
		if strings.EqualFold(orders[i].OrderID, orderID) {
			order = &orders[i]
			break
		}
	}
	if order == nil {
		return statex.PolicyDecision{CancelAllowed: false, Reason: "order_not_found"}, nil
	}

	elapsed := c.now().Sub(order.CreatedAt).Minutes()
	if elapsed <= cancelWindowMinutes+cancelEpsilon {
		return statex.PolicyDecision{
			CancelAllowed: true,
			Reason:        fmt.Sprintf("within_60_min (%.1f min)", elapsed),
		}, nil
	}
	return statex.PolicyDecision{
		CancelAllowed: false,
		Reason:        fmt.Sprintf(">60 min (%.1f min)", elapsed),
	}, nil
}
