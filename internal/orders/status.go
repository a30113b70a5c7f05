package orders

type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

// StatusPlaced is what a freshly placed order starts as.
const StatusPlaced = StatusProcessing

var known = map[Status]bool{
	StatusPending:    true,
	StatusProcessing: true,
	StatusShipped:    true,
	StatusDelivered:  true,
	StatusCancelled:  true,
}

func (s Status) Valid() bool { return known[s] }

// Counted reports whether an order in this status counts towards revenue.
func (s Status) Counted() bool { return s != StatusCancelled }
