package domain

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses is the display order used by admin status pickers.
var OrderStatuses = []OrderStatus{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}

// Style is how an order status is presented.
type Style struct {
	Label string
	Icon  string
	Color string
}

var statusStyles = map[OrderStatus]Style{
	StatusPending:    {Label: "Pending", Icon: "clock", Color: "yellow"},
	StatusProcessing: {Label: "Processing", Icon: "package", Color: "blue"},
	StatusShipped:    {Label: "Shipped", Icon: "truck", Color: "purple"},
	StatusDelivered:  {Label: "Delivered", Icon: "check-circle", Color: "green"},
	StatusCancelled:  {Label: "Cancelled", Icon: "x-circle", Color: "red"},
}

// StatusStyle looks up the presentation for s; unknown statuses render as pending.
func StatusStyle(s OrderStatus) Style {
	if st, ok := statusStyles[s]; ok {
		return st
	}
	return statusStyles[StatusPending]
}

func (s OrderStatus) Valid() bool {
	_, ok := statusStyles[s]
	return ok
}
