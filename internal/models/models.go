package models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           ID     `json:"id,omitempty"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"` // plaintext unless hashed passwords are enabled
	Role         string `json:"role"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
	Status       string `json:"status,omitempty"`
}

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// Public returns a copy safe to hand back to clients.
func (u User) Public() User {
	u.Password = ""
	return u
}

type Product struct {
	ID          ID       `json:"id,omitempty"`
	Title       string   `json:"title,omitempty"`
	Name        string   `json:"name,omitempty"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	Description string   `json:"description,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Discount    *float64 `json:"discount,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
	Status      string   `json:"status,omitempty"`
}

// DisplayTitle is the title the storefront shows and searches. Older catalog
// records only carry a name.
func (p Product) DisplayTitle() string {
	if p.Title != "" {
		return p.Title
	}
	return p.Name
}

// Snapshot returns a deep copy of p.
func (p Product) Snapshot() Product {
	if p.Stock != nil {
		s := *p.Stock
		p.Stock = &s
	}
	if p.Discount != nil {
		d := *p.Discount
		p.Discount = &d
	}
	if p.Colors != nil {
		p.Colors = append([]string(nil), p.Colors...)
	}
	if p.Sizes != nil {
		p.Sizes = append([]string(nil), p.Sizes...)
	}
	return p
}

type CartEntry struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// SnapshotEntries deep-copies a cart so an order never shares memory with it.
func SnapshotEntries(items []CartEntry) []CartEntry {
	out := make([]CartEntry, 0, len(items))
	for _, it := range items {
		out = append(out, CartEntry{Product: it.Product.Snapshot(), Quantity: it.Quantity})
	}
	return out
}

type ShippingInfo struct {
	FullName   string `json:"fullName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

type Order struct {
	ID              ID           `json:"id"`
	UserID          ID           `json:"userId"`
	Items           []CartEntry  `json:"items"`
	Total           float64      `json:"total"`
	ShippingAddress ShippingInfo `json:"shippingAddress"`
	PaymentMethod   string       `json:"paymentMethod"`
	Status          string       `json:"status"`
	Date            string       `json:"date"`
}
