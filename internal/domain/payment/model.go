package payment

import (
	"fmt"
	"time"
)

type Method string

const (
	MethodCash     Method = "Cash"
	MethodCard     Method = "Card"
	MethodTransfer Method = "Transfer"
)

// Payment is immutable once created and never deleted.
type Payment struct {
	Receipt  string
	MemberID string
	Amount   float64
	Method   Method
	At       time.Time
}

// New stamps the payment and derives the receipt from the payer id and
// the creation timestamp. Receipts for the same payer within the same
// second collide; known limitation of the receipt scheme.
func New(memberID string, amount float64, method Method) *Payment {
	now := time.Now().UTC()
	return &Payment{
		Receipt:  fmt.Sprintf("PAY-%s-%d", memberID, now.Unix()),
		MemberID: memberID,
		Amount:   amount,
		Method:   method,
		At:       now,
	}
}
