package checkout

import "math"

// Fixed charges applied to every order, in whole currency units.
const (
	DeliveryFee = 40
	PlatformFee = 5
)

// gstRate is the goods-and-services tax applied to the item subtotal.
const gstRate = 0.05

// Quote is the price breakdown shown at checkout and used as the order
// total.
type Quote struct {
	ItemTotal   int `json:"item_total"`
	DeliveryFee int `json:"delivery_fee"`
	PlatformFee int `json:"platform_fee"`
	GST         int `json:"gst"`
	GrandTotal  int `json:"grand_total"`
}

// NewQuote derives the full price breakdown from the cart subtotal.
// GST is rounded to the nearest whole unit.
func NewQuote(itemTotal int) Quote {
	gst := int(math.Round(float64(itemTotal) * gstRate))
	return Quote{
		ItemTotal:   itemTotal,
		DeliveryFee: DeliveryFee,
		PlatformFee: PlatformFee,
		GST:         gst,
		GrandTotal:  itemTotal + DeliveryFee + PlatformFee + gst,
	}
}
