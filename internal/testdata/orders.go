package testdata

import (
	"net/http"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/salesportal-qa/sales-portal-tests/internal/models"
)

// CreateOrderCase drives order creation and deletion tests. Override, when
// set, replaces keys of the generated payload.
type CreateOrderCase struct {
	Case
	ProductsCount int
	Override      map[string]any
}

func CreateOrderPositiveCases() []CreateOrderCase {
	return []CreateOrderCase{
		{
			Case:          Case{Name: "products 1 min", Status: http.StatusCreated, IsSuccess: true},
			ProductsCount: 1,
		},
		{
			Case:          Case{Name: "products 5 max", Status: http.StatusCreated, IsSuccess: true},
			ProductsCount: 5,
		},
	}
}

func CreateOrderNegativeCases() []CreateOrderCase {
	return []CreateOrderCase{
		{
			Case: Case{
				Name: "empty products", Status: http.StatusBadRequest,
				IsSuccess: false, ErrorMessage: errMsg(models.ErrIncorrectBody),
			},
			ProductsCount: 1,
			Override:      map[string]any{"products": []string{}},
		},
		{
			Case: Case{
				Name: "missing customer", Status: http.StatusNotFound,
				IsSuccess: false, ErrorMessage: errMsg(models.ErrMissingCustomer),
			},
			ProductsCount: 1,
			Override:      map[string]any{"customer": ""},
		},
		{
			Case: Case{
				Name: "products above max", Status: http.StatusBadRequest,
				IsSuccess: false, ErrorMessage: errMsg(models.ErrIncorrectBody),
			},
			ProductsCount: 6,
		},
	}
}

func DeleteOrderCases() []CreateOrderCase {
	return []CreateOrderCase{
		{
			Case:          Case{Name: "delete with 1 product", Status: http.StatusNoContent, IsSuccess: true},
			ProductsCount: 1,
		},
		{
			Case:          Case{Name: "delete with 5 products", Status: http.StatusNoContent, IsSuccess: true},
			ProductsCount: 5,
		},
	}
}

// StatusTransitionCase drives the order lifecycle tests: prepare an order
// via From, then request a transition to To.
type StatusTransitionCase struct {
	Case
	From          OrderFactory
	ProductsCount int
	To            models.OrderStatus
}

// StatusTransitionPositiveCases lists every allowed transition.
func StatusTransitionPositiveCases() []StatusTransitionCase {
	ok := Case{Status: http.StatusOK, IsSuccess: true}
	cases := []StatusTransitionCase{
		{Case: ok, From: FactoryDraftWithDelivery, ProductsCount: 1, To: models.StatusProcessing},
		{Case: ok, From: FactoryDraftWithDelivery, ProductsCount: 1, To: models.StatusCanceled},
		{Case: ok, From: FactoryDraft, ProductsCount: 1, To: models.StatusCanceled},
		{Case: ok, From: FactoryCanceled, ProductsCount: 1, To: models.StatusDraft},
		{Case: ok, From: FactoryInProcess, ProductsCount: 1, To: models.StatusCanceled},
	}
	names := []string{
		"draft with delivery to processing",
		"draft with delivery to canceled",
		"draft to canceled",
		"canceled to draft",
		"processing to canceled",
	}
	for i := range cases {
		cases[i].Name = names[i]
	}
	return cases
}

// StatusTransitionNegativeCases lists every forbidden transition with its
// exact error message.
func StatusTransitionNegativeCases() []StatusTransitionCase {
	bad := func(name string, from OrderFactory, count int, to models.OrderStatus, message string) StatusTransitionCase {
		return StatusTransitionCase{
			Case: Case{
				Name: name, Status: http.StatusBadRequest,
				IsSuccess: false, ErrorMessage: errMsg(message),
			},
			From: from, ProductsCount: count, To: to,
		}
	}
	return []StatusTransitionCase{
		bad("draft to draft", FactoryDraft, 1, models.StatusDraft, models.ErrCantReopen),
		bad("draft to processing without delivery", FactoryDraft, 1, models.StatusProcessing, models.ErrCantProcess),
		bad("processing to processing", FactoryInProcess, 1, models.StatusProcessing, models.ErrInvalidOrderStatus),
		bad("processing to draft", FactoryInProcess, 1, models.StatusDraft, models.ErrCantReopen),
		bad("partially received to draft", FactoryPartiallyReceived, 2, models.StatusDraft, models.ErrCantReopen),
		bad("partially received to processing", FactoryPartiallyReceived, 2, models.StatusProcessing, models.ErrInvalidOrderStatus),
		bad("partially received to canceled", FactoryPartiallyReceived, 2, models.StatusCanceled, models.ErrInvalidOrderStatus),
		bad("received to draft", FactoryReceived, 1, models.StatusDraft, models.ErrCantReopen),
		bad("received to processing", FactoryReceived, 1, models.StatusProcessing, models.ErrInvalidOrderStatus),
		bad("received to canceled", FactoryReceived, 1, models.StatusCanceled, models.ErrInvalidOrderStatus),
		bad("canceled to canceled", FactoryCanceled, 1, models.StatusCanceled, models.ErrInvalidOrderStatus),
		bad("canceled to processing", FactoryCanceled, 1, models.StatusProcessing, models.ErrInvalidOrderStatus),
	}
}

// InvalidStatusValues are raw status values the endpoint must reject.
func InvalidStatusValues() []any {
	return []any{"testStatus", "", nil, 12345}
}

// ReceivePositiveCase drives the receive-products happy paths.
type ReceivePositiveCase struct {
	Name           string
	OrderProducts  int
	ReceiveCount   int
	ExpectedStatus models.OrderStatus
}

func ReceivePositiveCases() []ReceivePositiveCase {
	return []ReceivePositiveCase{
		{Name: "receive 1 of 5", OrderProducts: 5, ReceiveCount: 1, ExpectedStatus: models.StatusPartiallyReceived},
		{Name: "receive 3 of 5", OrderProducts: 5, ReceiveCount: 3, ExpectedStatus: models.StatusPartiallyReceived},
		{Name: "receive 5 of 5", OrderProducts: 5, ReceiveCount: 5, ExpectedStatus: models.StatusReceived},
	}
}

// ReceiveWrongStatusCase covers receiving on orders whose status forbids it.
type ReceiveWrongStatusCase struct {
	Case
	From OrderFactory
}

func ReceiveWrongStatusCases() []ReceiveWrongStatusCase {
	return []ReceiveWrongStatusCase{
		{
			Case: Case{
				Name: "draft order", Status: http.StatusBadRequest,
				IsSuccess: false, ErrorMessage: errMsg(models.ErrInvalidOrderStatus),
			},
			From: FactoryDraftWithDelivery,
		},
		{
			Case: Case{
				Name: "already received order", Status: http.StatusBadRequest,
				IsSuccess: false, ErrorMessage: errMsg(models.ErrInvalidOrderStatus),
			},
			From: FactoryReceived,
		},
	}
}

// ReceiveBadPayloadCase covers malformed receive payloads. ExtraIDs, when
// set, are product ids not requested by the order.
type ReceiveBadPayloadCase struct {
	Case
	ExtraIDs []string
	Empty    bool
	WithNull bool
	// Overflow duplicates a requested id to exceed the 5-product limit.
	Overflow bool
}

func ReceiveBadPayloadCases() []ReceiveBadPayloadCase {
	notRequested := func(name, id string) ReceiveBadPayloadCase {
		return ReceiveBadPayloadCase{
			Case: Case{
				Name: name, Status: http.StatusBadRequest,
				IsSuccess: false, ErrorMessage: errMsg(models.ErrProductNotRequested(id)),
			},
			ExtraIDs: []string{id},
		}
	}
	return []ReceiveBadPayloadCase{
		{
			Case: Case{
				Name: "more than 5 products", Status: http.StatusBadRequest,
				IsSuccess: false, ErrorMessage: errMsg(models.ErrIncorrectBody),
			},
			Overflow: true,
		},
		{
			Case: Case{
				Name: "empty products array", Status: http.StatusBadRequest,
				IsSuccess: false, ErrorMessage: errMsg(models.ErrIncorrectBody),
			},
			Empty: true,
		},
		{
			Case: Case{
				Name: "null product id", Status: http.StatusBadRequest,
				IsSuccess: false, ErrorMessage: errMsg(models.ErrIncorrectBody),
			},
			WithNull: true,
		},
		notRequested("uuid product id", uuid.NewString()),
		notRequested("dummy product id", "dummy"),
		notRequested("negative product id", "-1"),
		notRequested("date product id", "2025-12-21"),
		notRequested("non-existing product id", "000000000000000000000000"),
	}
}

// AssignManagerCase drives manager assignment over every order status.
type AssignManagerCase struct {
	Name          string
	From          OrderFactory
	ProductsCount int
	Smoke         bool
}

func AssignManagerCases() []AssignManagerCase {
	return []AssignManagerCase{
		{Name: "assign to draft order", From: FactoryDraft, ProductsCount: 1, Smoke: true},
		{Name: "assign to processing order", From: FactoryInProcess, ProductsCount: 1},
		{Name: "assign to partially received order", From: FactoryPartiallyReceived, ProductsCount: 2},
		{Name: "assign to received order", From: FactoryReceived, ProductsCount: 1},
		{Name: "assign to canceled order", From: FactoryCanceled, ProductsCount: 1},
	}
}

// CommentCase drives add-comment and delete-comment tests. CommentID is used
// only by delete negatives.
type CommentCase struct {
	Case
	Text      string
	CommentID string
}

func AddCommentPositiveCases() []CommentCase {
	ok := func(name, text string) CommentCase {
		return CommentCase{
			Case: Case{Name: name, Status: http.StatusOK, IsSuccess: true},
			Text: text,
		}
	}
	return []CommentCase{
		ok("comment 1 char", gofakeit.LetterN(1)),
		ok("comment 250 chars", gofakeit.LetterN(250)),
		ok("comment sentence", gofakeit.Sentence(7)),
		ok("comment with less-than", "Please check < invalid tag"),
		ok("comment with greater-than", "Ensure > threshold before ship"),
	}
}

func AddCommentNegativeCases() []CommentCase {
	bad := func(name, text string) CommentCase {
		return CommentCase{
			Case: Case{
				Name: name, Status: http.StatusBadRequest,
				IsSuccess: false, ErrorMessage: errMsg(models.ErrIncorrectBody),
			},
			Text: text,
		}
	}
	return []CommentCase{
		bad("empty comment", ""),
		bad("comment 251 chars", gofakeit.LetterN(251)),
	}
}

func DeleteCommentNegativeCases() []CommentCase {
	bad := func(name, commentID string) CommentCase {
		return CommentCase{
			Case: Case{
				Name: name, Status: http.StatusBadRequest,
				IsSuccess: false, ErrorMessage: errMsg(models.ErrCommentNotFound),
			},
			CommentID: commentID,
		}
	}
	return []CommentCase{
		bad("non-existing comment id", ObjectID()),
		bad("invalid comment id format", "invalid-comment-id"),
	}
}

// NotificationCase verifies a notification appears after a status change.
type NotificationCase struct {
	Case
	To models.OrderStatus
}

func NotificationOnStatusChangeCases() []NotificationCase {
	ok := func(to models.OrderStatus) NotificationCase {
		return NotificationCase{
			Case: Case{Name: "status to " + string(to), Status: http.StatusOK, IsSuccess: true},
			To:   to,
		}
	}
	return []NotificationCase{
		ok(models.StatusProcessing),
		ok(models.StatusCanceled),
		ok(models.StatusPartiallyReceived),
		ok(models.StatusReceived),
	}
}
