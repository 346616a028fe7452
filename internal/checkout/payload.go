package checkout

import (
	"fmt"

	"github.com/amitprasad2007/AppFashion-sub000/internal/domain"
	apperrors "github.com/amitprasad2007/AppFashion-sub000/pkg/errors"
)

// BuildPayload turns the selected cart lines, address and frozen totals into
// the canonical order-submission payload. Pure and deterministic: no I/O, no
// clock, identical inputs yield structurally identical payloads.
func BuildPayload(
	lines []domain.CartLine,
	address *domain.Address,
	totals domain.OrderTotals,
	method domain.PaymentMethod,
	couponCode *string,
	notes *string,
) (*domain.OrderSubmissionPayload, error) {
	fields := map[string]string{}

	if len(lines) == 0 {
		fields["items"] = "cart is empty"
	}
	if address == nil || address.ID == "" {
		fields["address"] = "delivery address is required"
	}
	if !method.IsValid() {
		fields["payment_method"] = fmt.Sprintf("unknown payment method %q", method)
	}
	if totals.GrandTotal <= 0 {
		fields["totals.grand_total"] = "grand total must be positive"
	}

	// Totals are frozen before submission; catch a broken identity here
	// rather than at the backend.
	want := totals.Subtotal - totals.Discount + totals.ShippingCost + totals.Tax
	if domain.ToMinorUnits(totals.GrandTotal) != domain.ToMinorUnits(want) {
		fields["totals"] = fmt.Sprintf("grand total %.2f does not match subtotal - discount + shipping + tax = %.2f",
			totals.GrandTotal, want)
	}

	for _, line := range lines {
		switch {
		case line.ProductID == "":
			fields["items."+line.LineID] = "missing product id"
		case line.Name == "":
			fields["items."+line.LineID] = "missing product name"
		case line.UnitPrice <= 0:
			fields["items."+line.LineID] = "unit price must be positive"
		case line.Quantity <= 0:
			fields["items."+line.LineID] = "quantity must be positive"
		}
	}

	if len(fields) > 0 {
		return nil, &apperrors.ErrValidation{Fields: fields}
	}

	// Snapshot the lines so later cart mutations cannot leak into the payload.
	snapshot := make([]domain.CartLine, len(lines))
	copy(snapshot, lines)

	return &domain.OrderSubmissionPayload{
		Lines:         snapshot,
		AddressID:     address.ID,
		Totals:        totals,
		PaymentMethod: method,
		CouponCode:    couponCode,
		Notes:         notes,
	}, nil
}
