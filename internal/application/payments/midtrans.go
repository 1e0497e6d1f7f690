package payments

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// MidtransGateway creates Snap transactions; our reference is the order id.
type MidtransGateway struct {
	client snap.Client
}

func NewMidtrans(serverKey string, production bool) *MidtransGateway {
	g := &MidtransGateway{}
	if production {
		g.client.New(serverKey, midtrans.Production)
	} else {
		g.client.New(serverKey, midtrans.Sandbox)
	}
	return g
}

func (g *MidtransGateway) Name() string { return ProviderMidtrans }

func (g *MidtransGateway) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	if req.Reference == "" {
		return nil, fmt.Errorf("midtrans: order reference is required")
	}
	// Snap takes gross_amount in whole rupiah/rupees.
	if req.AmountMinor%100 != 0 {
		return nil, fmt.Errorf("midtrans: amount %d is not a whole currency unit", req.AmountMinor)
	}
	gross := req.AmountMinor / 100
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.Reference,
			GrossAmt: gross,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.DonorName,
			Email: req.DonorEmail,
			Phone: req.DonorPhone,
		},
		Items: &[]midtrans.ItemDetails{{
			ID:    req.Reference,
			Price: gross,
			Qty:   1,
			Name:  truncate(firstNonEmpty(req.Description, "Donation"), 50),
		}},
	}
	resp, merr := g.client.CreateTransaction(snapReq)
	// CreateTransaction returns a typed *midtrans.Error; compare before widening to error.
	if merr != nil {
		return nil, fmt.Errorf("midtrans: create transaction: %s", merr.GetMessage())
	}
	return &Order{
		OrderID:     req.Reference,
		AmountMinor: gross * 100,
		Currency:    req.Currency,
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

type midtransNotification struct {
	TransactionStatus string `json:"transaction_status"`
	StatusCode        string `json:"status_code"`
	SignatureKey      string `json:"signature_key"`
	OrderID           string `json:"order_id"`
	GrossAmount       string `json:"gross_amount"`
	FraudStatus       string `json:"fraud_status"`
	TransactionID     string `json:"transaction_id"`
	Currency          string `json:"currency"`
}

// MidtransSignature is SHA-512 of order_id + status_code + gross_amount + server key, hex encoded.
func MidtransSignature(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

// ParseMidtransNotification verifies signature_key and maps the transaction status.
func ParseMidtransNotification(payload []byte, serverKey string) (*Notification, error) {
	var in midtransNotification
	if err := json.Unmarshal(payload, &in); err != nil {
		return nil, ErrInvalidPayload
	}
	if serverKey == "" || in.SignatureKey == "" {
		return nil, ErrInvalidSignature
	}
	want := MidtransSignature(in.OrderID, in.StatusCode, in.GrossAmount, serverKey)
	if subtle.ConstantTimeCompare([]byte(want), []byte(strings.ToLower(in.SignatureKey))) != 1 {
		return nil, ErrInvalidSignature
	}
	n := &Notification{
		Gateway:   ProviderMidtrans,
		EventID:   in.TransactionID + ":" + in.TransactionStatus,
		EventType: in.TransactionStatus,
		OrderID:   in.OrderID,
		PaymentID: in.TransactionID,
		Currency:  strings.ToUpper(in.Currency),
	}
	if amt, err := strconv.ParseFloat(in.GrossAmount, 64); err == nil {
		n.AmountMinor = int64(math.Round(amt * 100))
	}
	switch in.TransactionStatus {
	case "settlement":
		n.Succeeded = true
	case "capture":
		n.Succeeded = in.FraudStatus == "" || in.FraudStatus == "accept"
	}
	return n, nil
}

// truncate keeps at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func firstNonEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
