package model

import "time"

// NotificationType is the closed set of events a user can be notified about.
type NotificationType string

const (
	NotificationRFQReceived      NotificationType = "rfq_received"
	NotificationQuoteReceived    NotificationType = "quote_received"
	NotificationQuoteAccepted    NotificationType = "quote_accepted"
	NotificationQuoteRejected    NotificationType = "quote_rejected"
	NotificationContractCreated  NotificationType = "contract_created"
	NotificationOrderCreated     NotificationType = "order_created"
	NotificationOrderUpdated     NotificationType = "order_updated"
	NotificationPaymentConfirmed NotificationType = "payment_confirmed"
	NotificationNewMessage       NotificationType = "new_message"
	NotificationSystem           NotificationType = "system"
)

// Notification is an at-most-once event record addressed to one user.
// Creation is a best-effort side effect of other entities' transitions and
// must never abort the transition that triggered it.
type Notification struct {
	ID        int64
	UserID    int64
	Type      NotificationType
	Title     string
	Message   string
	Link      string
	IsRead    bool
	CreatedAt time.Time
}
