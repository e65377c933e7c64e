package testdata

import (
	"encoding/json"
	"fmt"
)

// Case carries the expectations shared by every data-driven test.
type Case struct {
	Name         string
	Status       int
	IsSuccess    bool
	ErrorMessage *string
}

func errMsg(msg string) *string { return &msg }

// Payload marshals a request struct into a map and drops the given keys.
// Negative cases use it to send bodies with missing or mistyped fields.
func Payload(v any, exclude ...string) map[string]any {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("testdata: marshal payload: %v", err))
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		panic(fmt.Sprintf("testdata: unmarshal payload: %v", err))
	}
	for _, key := range exclude {
		delete(m, key)
	}
	return m
}

// OrderFactory selects which orders-service factory prepares the order under
// test.
type OrderFactory string

const (
	FactoryDraft             OrderFactory = "draft"
	FactoryDraftWithDelivery OrderFactory = "draft-with-delivery"
	FactoryInProcess         OrderFactory = "in-process"
	FactoryPartiallyReceived OrderFactory = "partially-received"
	FactoryReceived          OrderFactory = "received"
	FactoryCanceled          OrderFactory = "canceled"
)
