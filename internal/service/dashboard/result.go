package dashboard

import "github.com/heartmarshall/tringgo-backend/internal/domain"

const (
	areaNotSet = "Not set"

	suggestIncomplete = "Add your area and years in area to get better local suggestions."
	suggestComplete   = "Your traveler profile is complete."

	statusVerified = "Verified"
	statusPending  = "Pending verification"
)

// Traveler is the traveler landing view.
type Traveler struct {
	User            domain.User
	AreaName        string
	YearsInArea     int
	ProfileComplete bool
	Suggestion      string
	RecentLogins    []domain.LoginLog
}

// Merchant is the merchant landing view.
type Merchant struct {
	Profile          domain.MerchantProfile
	BusinessAreaName string
	State            domain.VerificationState
	Status           string
	Message          string
}

// AdminStats are global account counts.
type AdminStats struct {
	TotalUsers          int
	Travelers           int
	Merchants           int
	UnverifiedMerchants int
}

// Admin is the admin landing view. Area is nil until an area is assigned.
type Admin struct {
	Area    *domain.Area
	Stats   AdminStats
	Message string
}
