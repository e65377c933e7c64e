package models

import "fmt"

// Exact error messages the backend returns in the ErrorMessage field.
const (
	ErrIncorrectBody      = "Incorrect request body"
	ErrNotAuthorized      = "Not authorized"
	ErrIncorrectCreds     = "Incorrect credentials"
	ErrIncorrectDelivery  = "Incorrect Delivery"
	ErrInvalidFinalDate   = "Invalid final date"
	ErrMissingCustomer    = "Missing customer"
	ErrInvalidOrderStatus = "Invalid order status"
	ErrCommentNotFound    = "Comment was not found"
	ErrCantReopen         = "Can't reopen not canceled order"
	ErrCantProcess        = "Can't process order. Please, schedule delivery"
)

func ErrProductNotFound(id string) string {
	return fmt.Sprintf("Product with id '%s' wasn't found", id)
}

func ErrCustomerNotFound(id string) string {
	return fmt.Sprintf("Customer with id '%s' wasn't found", id)
}

func ErrOrderNotFound(id string) string {
	return fmt.Sprintf("Order with id '%s' wasn't found", id)
}

func ErrManagerNotFound(id string) string {
	return fmt.Sprintf("Manager with id '%s' wasn't found", id)
}

func ErrProductExists(name string) string {
	return fmt.Sprintf("Product with name '%s' already exists", name)
}

func ErrProductNotRequested(id string) string {
	return fmt.Sprintf("Product with Id '%s' is not requested", id)
}

func ErrCustomerHasOrders(id string) string {
	return fmt.Sprintf("Customer with id '%s' has orders", id)
}
