package order

// Payment methods accepted at checkout.
const (
	PaymentCOD      = "cod"
	PaymentJazzCash = "jazzcash"
	PaymentCard     = "card"
	PaymentBank     = "bank"
)

// Payment statuses. Gateway interaction itself is out of scope; "processing"
// only means the method awaits external confirmation while "pending" awaits
// manual or delivery-time settlement.
const (
	PaymentPending    = "pending"
	PaymentProcessing = "processing"
	PaymentCompleted  = "completed"
	PaymentFailed     = "failed"
)

// Fulfilment statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// Order is immutable after creation. Items holds a JSON snapshot of the cart
// at checkout time; monetary fields are decimal text.
type Order struct {
	ID              string `json:"id"`
	OrderNumber     string `json:"orderNumber"`
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone,omitempty"`
	CustomerAddress string `json:"customerAddress"`
	CustomerCity    string `json:"customerCity"`
	CustomerState   string `json:"customerState"`
	CustomerZip     string `json:"customerZip"`
	PaymentMethod   string `json:"paymentMethod"`
	PaymentStatus   string `json:"paymentStatus"`
	Items           string `json:"items"`
	Subtotal        string `json:"subtotal"`
	Tax             string `json:"tax"`
	Shipping        string `json:"shipping"`
	Total           string `json:"total"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
}

// Draft holds the validated checkout payload before id, order number, payment
// status and createdAt are assigned.
type Draft struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	CustomerAddress string
	CustomerCity    string
	CustomerState   string
	CustomerZip     string
	PaymentMethod   string
	Items           string
	Subtotal        string
	Tax             string
	Shipping        string
	Total           string
}
