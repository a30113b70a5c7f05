package storage

import "github.com/Hasna17806/ZYRA-sub000/internal/models"

// Namespace scopes the per-user keys. It is built from the acting user and
// must be rebuilt whenever the user changes.
type Namespace struct {
	userID string
}

// NewNamespace resolves an empty id to the guest namespace.
func NewNamespace(userID models.ID) Namespace {
	if userID == "" {
		return Namespace{userID: GuestID}
	}
	return Namespace{userID: string(userID)}
}

func (n Namespace) UserID() string { return n.userID }

func (n Namespace) IsGuest() bool { return n.userID == GuestID }

func (n Namespace) CartKey() string { return "cart_" + n.userID }

func (n Namespace) WishlistKey() string { return "wishlist_" + n.userID }
