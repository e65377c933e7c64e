package pages

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/salesportal-qa/sales-portal-tests/internal/models"
)

// DeliveryData is the delivery block as rendered on the order details page
// and in the schedule delivery form.
type DeliveryData struct {
	DeliveryType string
	DeliveryDate string
	Country      string
	City         string
	Street       string
	House        int
	Flat         int
}

// CommentsTab is the comments tabpanel of the order details page.
type CommentsTab struct {
	Base
}

func (t *CommentsTab) Tab() playwright.Locator {
	return t.Page.Locator(`#comments[role="tabpanel"]`)
}

func (t *CommentsTab) Heading() playwright.Locator {
	return t.Tab().Locator("h4", playwright.LocatorLocatorOptions{HasText: "Comments"})
}

func (t *CommentsTab) Textarea() playwright.Locator {
	return t.Tab().Locator("#textareaComments")
}

func (t *CommentsTab) Error() playwright.Locator {
	return t.Tab().Locator("#error-textareaComments")
}

func (t *CommentsTab) CreateButton() playwright.Locator {
	return t.Tab().Locator("#create-comment-btn")
}

func (t *CommentsTab) CommentCards() playwright.Locator {
	return t.Tab().Locator("div.shadow-sm.rounded.mx-3.my-3.p-3.border")
}

func (t *CommentsTab) CommentTexts() playwright.Locator {
	return t.CommentCards().Locator("p.m-0")
}

func (t *CommentsTab) DeleteButton(card playwright.Locator) playwright.Locator {
	return card.Locator(`button[name="delete-comment"][title="Delete"]`)
}

func (t *CommentsTab) FillComment(text string) error {
	return t.Textarea().Fill(text)
}

func (t *CommentsTab) ClickCreate() error {
	return t.CreateButton().Click()
}

// DeliveryTab is the delivery information tabpanel.
type DeliveryTab struct {
	Base
}

func (t *DeliveryTab) Tab() playwright.Locator {
	return t.Page.Locator(`#delivery.tab-pane.active.show[role="tabpanel"]`)
}

func (t *DeliveryTab) Heading() playwright.Locator {
	return t.Tab().Locator("h4", playwright.LocatorLocatorOptions{HasText: "Delivery Information"})
}

func (t *DeliveryTab) ScheduleDeliveryButton() playwright.Locator {
	return t.Tab().Locator("#delivery-btn")
}

func (t *DeliveryTab) rows() playwright.Locator {
	return t.Tab().Locator("div.mb-4.p-3").Locator("div.c-details")
}

// Data reads the label/value pairs of the delivery block.
func (t *DeliveryTab) Data() (DeliveryData, error) {
	labels, err := t.rows().Locator("span:first-child").AllInnerTexts()
	if err != nil {
		return DeliveryData{}, err
	}
	values, err := t.rows().Locator("span:last-child").AllInnerTexts()
	if err != nil {
		return DeliveryData{}, err
	}
	byLabel := make(map[string]string, len(labels))
	for i, raw := range labels {
		label := strings.TrimSpace(raw)
		if label == "" || i >= len(values) {
			continue
		}
		byLabel[label] = strings.TrimSpace(values[i])
	}
	num := func(label string) int {
		n, _ := strconv.Atoi(byLabel[label])
		return n
	}
	return DeliveryData{
		DeliveryType: byLabel["Delivery Type"],
		DeliveryDate: byLabel["Delivery Date"],
		Country:      byLabel["Country"],
		City:         byLabel["City"],
		Street:       byLabel["Street"],
		House:        num("House"),
		Flat:         num("Flat"),
	}, nil
}

func (t *DeliveryTab) ClickScheduleDelivery() error {
	return t.ScheduleDeliveryButton().Click()
}

// HistoryChanges holds the previous and updated field values of one expanded
// history event.
type HistoryChanges struct {
	Previous map[string]string
	Updated  map[string]string
}

// OrderHistoryTab is the history tabpanel.
type OrderHistoryTab struct {
	Base
}

func (t *OrderHistoryTab) Tab() playwright.Locator {
	return t.Page.Locator(`#history.tab-pane.active.show[role="tabpanel"]`)
}

func (t *OrderHistoryTab) Heading() playwright.Locator {
	return t.Tab().Locator("h4", playwright.LocatorLocatorOptions{HasText: "Order History"})
}

func (t *OrderHistoryTab) Body() playwright.Locator {
	return t.Tab().Locator("#history-body")
}

func (t *OrderHistoryTab) EventRows() playwright.Locator {
	return t.Body().Locator(".accordion-header.his-header")
}

// RowByActionAndDate finds the first history row matching both the action
// text and the formatted date.
func (t *OrderHistoryTab) RowByActionAndDate(action models.OrderHistoryAction, dateTime string) playwright.Locator {
	return t.EventRows().
		Filter(playwright.LocatorFilterOptions{HasText: string(action)}).
		Filter(playwright.LocatorFilterOptions{HasText: dateTime}).
		First()
}

// RowInfo reads the performer and timestamp columns of a history row.
func (t *OrderHistoryTab) RowInfo(action models.OrderHistoryAction, dateTime string) (performedBy, at string, err error) {
	row := t.RowByActionAndDate(action, dateTime)
	if err := row.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(timeoutShort),
	}); err != nil {
		return "", "", err
	}
	cols, err := row.Locator("span.his-col").AllInnerTexts()
	if err != nil {
		return "", "", err
	}
	if len(cols) > 1 {
		performedBy = cols[1]
	}
	if len(cols) > 2 {
		at = cols[2]
	}
	return performedBy, at, nil
}

func (t *OrderHistoryTab) panel(row playwright.Locator) playwright.Locator {
	return row.Locator("xpath=following-sibling::div[contains(@class,'accordion-collapse')]").First()
}

// Expand opens the accordion panel of a collapsed history row.
func (t *OrderHistoryTab) Expand(row playwright.Locator) error {
	button := row.Locator("button.accordion-button.his-action")
	class, err := button.GetAttribute("class")
	if err != nil {
		return err
	}
	if strings.Contains(class, "collapsed") {
		if err := button.Click(); err != nil {
			return err
		}
	}
	return t.panel(row).WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(timeoutShort),
	})
}

// Changes expands a history row and reads its previous/updated field table.
func (t *OrderHistoryTab) Changes(action models.OrderHistoryAction, dateTime string) (HistoryChanges, error) {
	row := t.RowByActionAndDate(action, dateTime)
	if err := t.Expand(row); err != nil {
		return HistoryChanges{}, err
	}
	changes := HistoryChanges{
		Previous: map[string]string{},
		Updated:  map[string]string{},
	}
	rows, err := t.panel(row).Locator("div.d-flex.justify-content-around").All()
	if err != nil {
		return HistoryChanges{}, err
	}
	for _, r := range rows {
		cols, err := r.Locator("span.his-col").AllInnerTexts()
		if err != nil {
			return HistoryChanges{}, err
		}
		if len(cols) < 3 {
			continue
		}
		field, prev, upd := cols[0], cols[1], cols[2]
		if field == "" || (prev == "Previous" && upd == "Updated") {
			continue
		}
		changes.Previous[field] = prev
		changes.Updated[field] = upd
	}
	return changes, nil
}

// StatusChange returns the previous and updated order status of one history
// event, defaulting to "-" when the event carries no status change.
func (t *OrderHistoryTab) StatusChange(action models.OrderHistoryAction, dateTime string) (previous, updated models.OrderStatus, err error) {
	changes, err := t.Changes(action, dateTime)
	if err != nil {
		return "", "", err
	}
	previous = models.StatusEmpty
	updated = models.StatusEmpty
	if v, ok := changes.Previous["Status"]; ok {
		previous = models.OrderStatus(v)
	}
	if v, ok := changes.Updated["Status"]; ok {
		updated = models.OrderStatus(v)
	}
	return previous, updated, nil
}

// ScheduleDeliveryPage is the schedule or edit delivery form.
type ScheduleDeliveryPage struct {
	Base
}

func (p *ScheduleDeliveryPage) Container() playwright.Locator {
	return p.Page.Locator("#delivery-container")
}

func (p *ScheduleDeliveryPage) Title() playwright.Locator {
	return p.Container().Locator("h2.fw-bold")
}

func (p *ScheduleDeliveryPage) DeliveryTypeSelect() playwright.Locator {
	return p.Container().Locator("#inputType")
}

func (p *ScheduleDeliveryPage) LocationSelect() playwright.Locator {
	return p.Container().Locator("#inputLocation")
}

func (p *ScheduleDeliveryPage) DateInput() playwright.Locator {
	return p.Container().Locator("#date-input")
}

func (p *ScheduleDeliveryPage) CountryField() playwright.Locator {
	return p.Container().GetByLabel("Country")
}

func (p *ScheduleDeliveryPage) CityInput() playwright.Locator {
	return p.Container().Locator("#inputCity")
}

func (p *ScheduleDeliveryPage) StreetInput() playwright.Locator {
	return p.Container().Locator("#inputStreet")
}

func (p *ScheduleDeliveryPage) HouseInput() playwright.Locator {
	return p.Container().Locator("#inputHouse")
}

func (p *ScheduleDeliveryPage) FlatInput() playwright.Locator {
	return p.Container().Locator("#inputFlat")
}

func (p *ScheduleDeliveryPage) SaveButton() playwright.Locator {
	return p.Container().Locator("#save-delivery")
}

func (p *ScheduleDeliveryPage) CancelButton() playwright.Locator {
	return p.Container().Locator("#back-to-order-details-page")
}

func (p *ScheduleDeliveryPage) ActiveDays() playwright.Locator {
	return p.Page.Locator(".datepicker-days td.day:not(.disabled):not(.old):not(.new)")
}

func (p *ScheduleDeliveryPage) WaitForLoaded() error {
	return p.WaitForOpened(p.Container())
}

// readField reads a select's chosen option text or an input's value.
func (p *ScheduleDeliveryPage) readField(field playwright.Locator) (string, error) {
	tag, err := field.Evaluate("el => el.tagName", nil)
	if err != nil {
		return "", err
	}
	if tag == "SELECT" {
		text, err := field.Locator("option:checked").InnerText()
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(text), nil
	}
	value, err := field.InputValue()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// FormData reads the current values of the delivery form.
func (p *ScheduleDeliveryPage) FormData() (DeliveryData, error) {
	var data DeliveryData
	fields := []struct {
		loc playwright.Locator
		dst *string
	}{
		{p.DeliveryTypeSelect(), &data.DeliveryType},
		{p.DateInput(), &data.DeliveryDate},
		{p.CountryField(), &data.Country},
		{p.CityInput(), &data.City},
		{p.StreetInput(), &data.Street},
	}
	for _, f := range fields {
		value, err := p.readField(f.loc)
		if err != nil {
			return DeliveryData{}, err
		}
		*f.dst = value
	}
	for _, f := range []struct {
		loc playwright.Locator
		dst *int
	}{
		{p.HouseInput(), &data.House},
		{p.FlatInput(), &data.Flat},
	} {
		value, err := p.readField(f.loc)
		if err != nil {
			return DeliveryData{}, err
		}
		if value != "" {
			n, err := strconv.Atoi(value)
			if err != nil {
				return DeliveryData{}, fmt.Errorf("parse delivery number %q: %w", value, err)
			}
			*f.dst = n
		}
	}
	return data, nil
}

func (p *ScheduleDeliveryPage) ClickSave() error {
	return p.SaveButton().Click()
}

func (p *ScheduleDeliveryPage) ClickCancel() error {
	return p.CancelButton().Click()
}

// PickAvailableDate clicks the day at index among the enabled days of the
// current month and returns its data-date timestamp.
func (p *ScheduleDeliveryPage) PickAvailableDate(index int) (int64, error) {
	days := p.ActiveDays()
	count, err := days.Count()
	if err != nil {
		return 0, err
	}
	if count == 0 {
		return 0, fmt.Errorf("no enabled days in datepicker")
	}
	cell := days.Nth(index % count)
	attr, err := cell.GetAttribute("data-date")
	if err != nil {
		return 0, err
	}
	ts, err := strconv.ParseInt(attr, 10, 64)
	if err != nil {
		ts = 0
	}
	if err := cell.Click(); err != nil {
		return 0, err
	}
	return ts, nil
}
