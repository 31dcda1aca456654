package domain

// UserRole is the account type chosen at signup.
type UserRole string

const (
	UserRoleTraveler UserRole = "TRAVELER"
	UserRoleMerchant UserRole = "MERCHANT"
	UserRoleAdmin    UserRole = "ADMIN"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleTraveler, UserRoleMerchant, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }

// VerificationStatus is the stored status of a VerificationRequest row.
type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "PENDING"
	VerificationStatusApproved VerificationStatus = "APPROVED"
	VerificationStatusRejected VerificationStatus = "REJECTED"
)

func (s VerificationStatus) String() string { return string(s) }

func (s VerificationStatus) IsValid() bool {
	switch s {
	case VerificationStatusPending, VerificationStatusApproved, VerificationStatusRejected:
		return true
	}
	return false
}

// DecisionAction is the admin's verdict on a pending request.
type DecisionAction string

const (
	DecisionApprove DecisionAction = "APPROVE"
	DecisionReject  DecisionAction = "REJECT"
)

func (a DecisionAction) String() string { return string(a) }

func (a DecisionAction) IsValid() bool {
	return a == DecisionApprove || a == DecisionReject
}

// PlaceCategory classifies a directory Place.
type PlaceCategory string

const (
	PlaceCategoryPark           PlaceCategory = "PARK"
	PlaceCategoryMuseum         PlaceCategory = "MUSEUM"
	PlaceCategoryRestaurant     PlaceCategory = "RESTAURANT"
	PlaceCategoryCafe           PlaceCategory = "CAFE"
	PlaceCategoryStreetFood     PlaceCategory = "STREET_FOOD"
	PlaceCategoryFastFood       PlaceCategory = "FAST_FOOD"
	PlaceCategoryBakery         PlaceCategory = "BAKERY"
	PlaceCategoryMall           PlaceCategory = "MALL"
	PlaceCategoryShop           PlaceCategory = "SHOP"
	PlaceCategoryLocalMarket    PlaceCategory = "LOCAL_MARKET"
	PlaceCategorySupermarket    PlaceCategory = "SUPERMARKET"
	PlaceCategoryHistoricalSite PlaceCategory = "HISTORICAL_SITE"
	PlaceCategoryLandmark       PlaceCategory = "LANDMARK"
	PlaceCategoryLake           PlaceCategory = "LAKE"
	PlaceCategoryBeach          PlaceCategory = "BEACH"
	PlaceCategoryZoo            PlaceCategory = "ZOO"
	PlaceCategoryCinema         PlaceCategory = "CINEMA"
	PlaceCategoryAmusementPark  PlaceCategory = "AMUSEMENT_PARK"
	PlaceCategorySportsComplex  PlaceCategory = "SPORTS_COMPLEX"
	PlaceCategoryHotel          PlaceCategory = "HOTEL"
	PlaceCategoryGuestHouse     PlaceCategory = "GUEST_HOUSE"
	PlaceCategoryTransport      PlaceCategory = "TRANSPORT"
	PlaceCategoryOther          PlaceCategory = "OTHER"
)

var placeCategoryNames = map[PlaceCategory]string{
	PlaceCategoryPark:           "Park",
	PlaceCategoryMuseum:         "Museum",
	PlaceCategoryRestaurant:     "Restaurant",
	PlaceCategoryCafe:           "Cafe",
	PlaceCategoryStreetFood:     "Street Food",
	PlaceCategoryFastFood:       "Fast Food",
	PlaceCategoryBakery:         "Bakery",
	PlaceCategoryMall:           "Mall",
	PlaceCategoryShop:           "Shop",
	PlaceCategoryLocalMarket:    "Local Market",
	PlaceCategorySupermarket:    "Supermarket",
	PlaceCategoryHistoricalSite: "Historical Site",
	PlaceCategoryLandmark:       "Landmark",
	PlaceCategoryLake:           "Lake",
	PlaceCategoryBeach:          "Beach",
	PlaceCategoryZoo:            "Zoo",
	PlaceCategoryCinema:         "Cinema",
	PlaceCategoryAmusementPark:  "Amusement Park",
	PlaceCategorySportsComplex:  "Sports Complex",
	PlaceCategoryHotel:          "Hotel",
	PlaceCategoryGuestHouse:     "Guest House",
	PlaceCategoryTransport:      "Transport Hub",
	PlaceCategoryOther:          "Other",
}

func (c PlaceCategory) String() string { return string(c) }

func (c PlaceCategory) IsValid() bool {
	_, ok := placeCategoryNames[c]
	return ok
}

// DisplayName returns the human label, or the raw value for unknown categories.
func (c PlaceCategory) DisplayName() string {
	if name, ok := placeCategoryNames[c]; ok {
		return name
	}
	return string(c)
}

// ServiceCategory classifies a public Service (hospital, ATM, ...).
type ServiceCategory string

const (
	ServiceCategoryHospital  ServiceCategory = "HOSPITAL"
	ServiceCategoryATM       ServiceCategory = "ATM"
	ServiceCategoryBank      ServiceCategory = "BANK"
	ServiceCategoryPharmacy  ServiceCategory = "PHARMACY"
	ServiceCategoryPolice    ServiceCategory = "POLICE"
	ServiceCategoryFire      ServiceCategory = "FIRE"
	ServiceCategoryTransport ServiceCategory = "TRANSPORT"
	ServiceCategoryOther     ServiceCategory = "OTHER"
)

func (c ServiceCategory) String() string { return string(c) }

func (c ServiceCategory) IsValid() bool {
	switch c {
	case ServiceCategoryHospital, ServiceCategoryATM, ServiceCategoryBank,
		ServiceCategoryPharmacy, ServiceCategoryPolice, ServiceCategoryFire,
		ServiceCategoryTransport, ServiceCategoryOther:
		return true
	}
	return false
}

// TranscriptRole marks who authored a chatbot transcript entry.
type TranscriptRole string

const (
	TranscriptRoleUser TranscriptRole = "user"
	TranscriptRoleBot  TranscriptRole = "bot"
)

func (r TranscriptRole) String() string { return string(r) }

// ChatThreadStatus is the state of a two-party chat thread.
type ChatThreadStatus string

const (
	ChatThreadPending ChatThreadStatus = "pending"
	ChatThreadActive  ChatThreadStatus = "active"
	ChatThreadClosed  ChatThreadStatus = "closed"
)

func (s ChatThreadStatus) String() string { return string(s) }

func (s ChatThreadStatus) IsValid() bool {
	switch s {
	case ChatThreadPending, ChatThreadActive, ChatThreadClosed:
		return true
	}
	return false
}

// LoginMethod records how a user authenticated.
type LoginMethod string

const (
	LoginMethodPassword LoginMethod = "PASSWORD"
	LoginMethodGoogle   LoginMethod = "GOOGLE"
)

func (m LoginMethod) String() string { return string(m) }
