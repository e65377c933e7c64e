// Package models defines the Sales Portal wire shapes, enumerations, and the
// backend's error-message catalog as the test suite observes them.
package models

// OrderStatus is the five-state order lifecycle enforced by the backend.
type OrderStatus string

const (
	StatusDraft             OrderStatus = "Draft"
	StatusProcessing        OrderStatus = "In Process"
	StatusPartiallyReceived OrderStatus = "Partially Received"
	StatusReceived          OrderStatus = "Received"
	StatusCanceled          OrderStatus = "Canceled"
	StatusEmpty             OrderStatus = "-"
)

// OrderStatuses lists the real lifecycle states (StatusEmpty is a UI
// placeholder, not a backend state).
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		StatusDraft,
		StatusProcessing,
		StatusPartiallyReceived,
		StatusReceived,
		StatusCanceled,
	}
}

// OrderHistoryAction names an entry in an order's history trail.
type OrderHistoryAction string

const (
	HistoryCreated           OrderHistoryAction = "Order created"
	HistoryCustomerChanged   OrderHistoryAction = "Customer changed"
	HistoryProductsChanged   OrderHistoryAction = "Requested products changed"
	HistoryProcessed         OrderHistoryAction = "Order processing started"
	HistoryDeliveryScheduled OrderHistoryAction = "Delivery Scheduled"
	HistoryDeliveryEdited    OrderHistoryAction = "Delivery Edited"
	HistoryReceived          OrderHistoryAction = "Received"
	HistoryReceivedAll       OrderHistoryAction = "All products received"
	HistoryCanceled          OrderHistoryAction = "Order canceled"
	HistoryManagerAssigned   OrderHistoryAction = "Manager Assigned"
	HistoryManagerUnassigned OrderHistoryAction = "Manager Unassigned"
	HistoryReopened          OrderHistoryAction = "Order reopened"
)

func OrderHistoryActions() []OrderHistoryAction {
	return []OrderHistoryAction{
		HistoryCreated, HistoryCustomerChanged, HistoryProductsChanged,
		HistoryProcessed, HistoryDeliveryScheduled, HistoryDeliveryEdited,
		HistoryReceived, HistoryReceivedAll, HistoryCanceled,
		HistoryManagerAssigned, HistoryManagerUnassigned, HistoryReopened,
	}
}

// DeliveryCondition is the delivery mode selected when scheduling.
type DeliveryCondition string

const (
	ConditionDelivery DeliveryCondition = "Delivery"
	ConditionPickup   DeliveryCondition = "Pickup"
)

// DeliveryLocation distinguishes the customer address from a custom one on
// the schedule-delivery screen.
type DeliveryLocation string

const (
	LocationHome  DeliveryLocation = "Home"
	LocationOther DeliveryLocation = "Other"
)

// Country is the set of countries the portal accepts.
type Country string

const (
	CountryUSA          Country = "USA"
	CountryCanada       Country = "Canada"
	CountryBelarus      Country = "Belarus"
	CountryUkraine      Country = "Ukraine"
	CountryGermany      Country = "Germany"
	CountryFrance       Country = "France"
	CountryGreatBritain Country = "Great Britain"
	CountryRussia       Country = "Russia"
)

func Countries() []Country {
	return []Country{
		CountryUSA, CountryCanada, CountryBelarus, CountryUkraine,
		CountryGermany, CountryFrance, CountryGreatBritain, CountryRussia,
	}
}

// Manufacturer is the set of product manufacturers the portal accepts.
type Manufacturer string

const (
	ManufacturerApple     Manufacturer = "Apple"
	ManufacturerSamsung   Manufacturer = "Samsung"
	ManufacturerGoogle    Manufacturer = "Google"
	ManufacturerMicrosoft Manufacturer = "Microsoft"
	ManufacturerSony      Manufacturer = "Sony"
	ManufacturerXiaomi    Manufacturer = "Xiaomi"
	ManufacturerAmazon    Manufacturer = "Amazon"
	ManufacturerTesla     Manufacturer = "Tesla"
)

func Manufacturers() []Manufacturer {
	return []Manufacturer{
		ManufacturerApple, ManufacturerSamsung, ManufacturerGoogle,
		ManufacturerMicrosoft, ManufacturerSony, ManufacturerXiaomi,
		ManufacturerAmazon, ManufacturerTesla,
	}
}

// Role is a portal user role.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)
