package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/amitprasad2007/AppFashion-sub000/internal/backend"
	"github.com/amitprasad2007/AppFashion-sub000/internal/checkout"
	"github.com/amitprasad2007/AppFashion-sub000/internal/config"
	"github.com/amitprasad2007/AppFashion-sub000/internal/domain"
	apperrors "github.com/amitprasad2007/AppFashion-sub000/pkg/errors"
)

// submissionFile is the JSON shape this tool reads: a cart snapshot plus the
// selected address and totals. Payment method is forced to COD; the gateway
// branch needs a UI host for the hosted checkout.
type submissionFile struct {
	Items      []domain.CartLine  `json:"items"`
	Address    domain.Address     `json:"address"`
	Totals     domain.OrderTotals `json:"totals"`
	Customer   domain.Customer    `json:"customer"`
	CouponCode *string            `json:"coupon_code,omitempty"`
	Notes      *string            `json:"notes,omitempty"`
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/submit-order/main.go <submission.json>")
		fmt.Println("Submits a cash-on-delivery order from a JSON file against the configured backend.")
		os.Exit(1)
	}

	// Load .env if present
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read submission file: %v\n", err)
		os.Exit(1)
	}
	var sub submissionFile
	if err := json.Unmarshal(raw, &sub); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse submission file: %v\n", err)
		os.Exit(1)
	}

	token := cfg.Backend.APIToken
	client := backend.NewClient(cfg.Backend, func() string { return token }, logger)

	// COD only: no gateway implementation is wired here.
	svc := checkout.NewService(client, nil, logger)

	record, err := svc.Submit(context.Background(), checkout.SubmitRequest{
		Lines:      sub.Items,
		Address:    &sub.Address,
		Totals:     sub.Totals,
		Method:     domain.PaymentMethodCOD,
		Customer:   sub.Customer,
		CouponCode: sub.CouponCode,
		Notes:      sub.Notes,
	})
	if err != nil {
		var validationErr *apperrors.ErrValidation
		var submissionErr *apperrors.ErrSubmission
		switch {
		case errors.As(err, &validationErr):
			fmt.Fprintf(os.Stderr, "❌ Rejected before submission: %v\n", validationErr)
		case errors.As(err, &submissionErr):
			fmt.Fprintf(os.Stderr, "❌ Backend rejected the order (safe to retry): %v\n", submissionErr)
		default:
			fmt.Fprintf(os.Stderr, "❌ Submission failed: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("✅ Order confirmed\n")
	fmt.Printf("   Order ID:       %s\n", record.OrderID)
	fmt.Printf("   Status:         %s\n", record.Status)
	fmt.Printf("   Payment status: %s\n", record.PaymentStatus)
	fmt.Printf("   Grand total:    %.2f\n", record.GrandTotal)
}
