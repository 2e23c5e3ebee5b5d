package model

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"pending to paid", OrderStatusPending, OrderStatusPaid, true},
		{"pending to cancelled", OrderStatusPending, OrderStatusCancelled, true},
		{"pending to shipped", OrderStatusPending, OrderStatusShipped, false},
		{"paid to shipped", OrderStatusPaid, OrderStatusShipped, true},
		{"paid to refunded", OrderStatusPaid, OrderStatusRefunded, true},
		{"paid to cancelled", OrderStatusPaid, OrderStatusCancelled, true},
		{"shipped to delivered", OrderStatusShipped, OrderStatusDelivered, true},
		{"shipped to cancelled", OrderStatusShipped, OrderStatusCancelled, false},
		{"delivered to refunded", OrderStatusDelivered, OrderStatusRefunded, true},
		{"delivered to cancelled", OrderStatusDelivered, OrderStatusCancelled, false},
		{"cancelled is terminal", OrderStatusCancelled, OrderStatusPending, false},
		{"refunded is terminal", OrderStatusRefunded, OrderStatusPaid, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanTransition(tc.from, tc.to); got != tc.want {
				t.Fatalf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestOrderStatusForPayment(t *testing.T) {
	cases := []struct {
		payment PaymentStatus
		status  OrderStatus
		drives  bool
	}{
		{PaymentStatusConfirmed, OrderStatusPaid, true},
		{PaymentStatusReceived, OrderStatusPaid, true},
		{PaymentStatusCancelled, OrderStatusCancelled, true},
		{PaymentStatusRefunded, OrderStatusRefunded, true},
		{PaymentStatusPending, "", false},
		{PaymentStatusOverdue, "", false},
	}

	for _, tc := range cases {
		t.Run(string(tc.payment), func(t *testing.T) {
			status, drives := OrderStatusForPayment(tc.payment)
			if drives != tc.drives || status != tc.status {
				t.Fatalf("OrderStatusForPayment(%s) = (%s, %v), want (%s, %v)", tc.payment, status, drives, tc.status, tc.drives)
			}
		})
	}
}

func TestSettled(t *testing.T) {
	if !PaymentStatusConfirmed.Settled() || !PaymentStatusReceived.Settled() {
		t.Fatal("confirmed and received must count as settled")
	}
	if PaymentStatusPending.Settled() || PaymentStatusOverdue.Settled() {
		t.Fatal("pending and overdue must not count as settled")
	}
}

func TestSubtotalUsesPromotionalPrice(t *testing.T) {
	promo := 80.0
	items := []CartItem{
		{ProductID: "p1", Price: 100, Quantity: 2},
		{ProductID: "p2", Price: 100, PromoPrice: &promo, Quantity: 1},
	}
	if got := Subtotal(items); got != 280 {
		t.Fatalf("unexpected subtotal: %v", got)
	}
}

func TestTotalFlooredAtZero(t *testing.T) {
	cases := []struct {
		name                         string
		subtotal, shipping, discount float64
		want                         float64
	}{
		{"plain", 200, 10, 0, 210},
		{"discount applied", 200, 10, 30, 180},
		{"discount exceeds", 50, 0, 100, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Total(tc.subtotal, tc.shipping, tc.discount); got != tc.want {
				t.Fatalf("Total(%v, %v, %v) = %v, want %v", tc.subtotal, tc.shipping, tc.discount, got, tc.want)
			}
		})
	}
}
