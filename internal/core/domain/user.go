package domain

const (
	RoleFarmer   = "farmer"
	RoleConsumer = "consumer"
)

// FarmInfo carries the farm profile attached to farmer accounts.
type FarmInfo struct {
	FarmName     string `json:"farmName"`
	FarmLocation string `json:"farmLocation"`
}

// User models an authenticated marketplace actor. The profile is owned by the
// remote backend; this tier only holds the copy returned at login.
type User struct {
	ID       string    `json:"_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	Role     string    `json:"role"`
	FarmInfo *FarmInfo `json:"farmInfo,omitempty"`
}

// IsFarmer reports whether the user may manage a catalog and transition orders.
func (u User) IsFarmer() bool {
	return u.Role == RoleFarmer
}
