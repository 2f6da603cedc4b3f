package booking

// Badge is the color-coded label the admin views render for a status.
// Pure lookup over the enums; nothing here is stored.
type Badge struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var rentalBadges = map[RentalStatus]Badge{
	RentalPending:   {Label: "Pending", Color: "yellow"},
	RentalConfirmed: {Label: "Confirmed", Color: "blue"},
	RentalCompleted: {Label: "Completed", Color: "green"},
	RentalCancelled: {Label: "Cancelled", Color: "red"},
}

var paymentBadges = map[PaymentStatus]Badge{
	PaymentPending:  {Label: "Payment Pending", Color: "yellow"},
	PaymentPaid:     {Label: "Paid", Color: "green"},
	PaymentRefunded: {Label: "Refunded", Color: "gray"},
	PaymentFailed:   {Label: "Payment Failed", Color: "red"},
}

var unknownBadge = Badge{Label: "Unknown", Color: "gray"}

func BadgeForRentalStatus(s RentalStatus) Badge {
	if b, ok := rentalBadges[s]; ok {
		return b
	}
	return unknownBadge
}

func BadgeForPaymentStatus(s PaymentStatus) Badge {
	if b, ok := paymentBadges[s]; ok {
		return b
	}
	return unknownBadge
}
