package uiservice

import (
	"strings"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"

	"github.com/salesportal-qa/sales-portal-tests/internal/models"
	"github.com/salesportal-qa/sales-portal-tests/internal/ui/pages"
)

// OrderDetailsFlow covers the order details page: status transitions,
// delivery, history, comments and manager assignment.
type OrderDetailsFlow struct {
	DetailsPage *pages.OrderDetailsPage
}

func NewOrderDetailsFlow(page playwright.Page, baseURL string) *OrderDetailsFlow {
	return &OrderDetailsFlow{DetailsPage: pages.NewOrderDetailsPage(page, baseURL)}
}

func (f *OrderDetailsFlow) Open(t *testing.T, orderID string) {
	t.Helper()
	require.NoError(t, f.DetailsPage.OpenByOrderID(orderID))
	require.NoError(t, f.DetailsPage.WaitForLoaded())
}

// OpenDeliveryTab opens the order and switches to the delivery tab.
func (f *OrderDetailsFlow) OpenDeliveryTab(t *testing.T, orderID string) {
	t.Helper()
	f.Open(t, orderID)
	require.NoError(t, f.DetailsPage.OpenDeliveryTab())
	require.NoError(t, f.DetailsPage.WaitForOpened(f.DetailsPage.DeliveryTab.Tab()))
}

// OpenScheduleDeliveryForm clicks through from the delivery tab to the
// schedule delivery form.
func (f *OrderDetailsFlow) OpenScheduleDeliveryForm(t *testing.T) {
	t.Helper()
	require.NoError(t, f.DetailsPage.DeliveryTab.ClickScheduleDelivery())
	require.NoError(t, f.DetailsPage.ScheduleDelivery.WaitForLoaded())
	require.NoError(t, f.DetailsPage.WaitForSpinners())
}

// SaveDelivery saves the schedule delivery form and waits for the delivery
// tab to come back.
func (f *OrderDetailsFlow) SaveDelivery(t *testing.T) {
	t.Helper()
	require.NoError(t, f.DetailsPage.ScheduleDelivery.ClickSave())
	require.NoError(t, f.DetailsPage.WaitForOpened(f.DetailsPage.DeliveryTab.Tab()))
}

// OpenHistoryTab opens the order and switches to the history tab.
func (f *OrderDetailsFlow) OpenHistoryTab(t *testing.T, orderID string) {
	t.Helper()
	f.Open(t, orderID)
	require.NoError(t, f.DetailsPage.OpenHistoryTab())
	require.NoError(t, f.DetailsPage.WaitForOpened(f.DetailsPage.HistoryTab.Tab()))
}

// OpenCommentsTab opens the order and switches to the comments tab.
func (f *OrderDetailsFlow) OpenCommentsTab(t *testing.T, orderID string) {
	t.Helper()
	f.Open(t, orderID)
	require.NoError(t, f.DetailsPage.OpenCommentsTab())
	require.NoError(t, f.DetailsPage.WaitForOpened(f.DetailsPage.CommentsTab.Heading()))
}

func (f *OrderDetailsFlow) confirmAction(t *testing.T, open func() error) {
	t.Helper()
	require.NoError(t, open())
	require.NoError(t, f.DetailsPage.ConfirmModal.Confirm())
	require.NoError(t, f.DetailsPage.WaitForClosed(f.DetailsPage.ConfirmModal.Root()))
	require.NoError(t, f.DetailsPage.WaitForSpinners())
}

// ProcessOrder confirms the process dialog, moving the order to In Process.
func (f *OrderDetailsFlow) ProcessOrder(t *testing.T) {
	f.confirmAction(t, f.DetailsPage.ClickProcess)
}

// CancelOrder confirms the cancel dialog.
func (f *OrderDetailsFlow) CancelOrder(t *testing.T) {
	f.confirmAction(t, f.DetailsPage.ClickCancel)
}

// ReopenOrder confirms the reopen dialog, moving the order back to Draft.
func (f *OrderDetailsFlow) ReopenOrder(t *testing.T) {
	f.confirmAction(t, f.DetailsPage.ClickReopen)
}

// RequireStatus asserts the header status bar shows status.
func (f *OrderDetailsFlow) RequireStatus(t *testing.T, status models.OrderStatus) {
	t.Helper()
	got, err := f.DetailsPage.Header.Status()
	require.NoError(t, err)
	require.Equal(t, status, got, "order status in header")
}

// AddComment submits a comment and verifies it shows up on top with the
// textarea cleared.
func (f *OrderDetailsFlow) AddComment(t *testing.T, text string) {
	t.Helper()
	tab := f.DetailsPage.CommentsTab
	before, err := tab.CommentCards().Count()
	require.NoError(t, err)

	require.NoError(t, tab.FillComment(text))
	require.NoError(t, tab.ClickCreate())
	require.NoError(t, f.DetailsPage.WaitForSpinners())

	after, err := tab.CommentCards().Count()
	require.NoError(t, err)
	require.Equal(t, before+1, after, "comment count after create")

	top, err := tab.CommentTexts().First().InnerText()
	require.NoError(t, err)
	require.Equal(t, text, strings.TrimSpace(top), "newest comment text")

	value, err := tab.Textarea().InputValue()
	require.NoError(t, err)
	require.Empty(t, value, "comment textarea after create")
}

// DeleteFirstComment removes the topmost comment card.
func (f *OrderDetailsFlow) DeleteFirstComment(t *testing.T) {
	t.Helper()
	tab := f.DetailsPage.CommentsTab
	before, err := tab.CommentCards().Count()
	require.NoError(t, err)
	require.Positive(t, before, "comments present before delete")

	require.NoError(t, tab.DeleteButton(tab.CommentCards().First()).Click())
	require.NoError(t, f.DetailsPage.WaitForSpinners())

	after, err := tab.CommentCards().Count()
	require.NoError(t, err)
	require.Equal(t, before-1, after, "comment count after delete")
}

// AssignManagerFlow drives the assign-manager modal on the order details
// page.
type AssignManagerFlow struct {
	DetailsPage *pages.OrderDetailsPage
}

func NewAssignManagerFlow(page playwright.Page, baseURL string) *AssignManagerFlow {
	return &AssignManagerFlow{DetailsPage: pages.NewOrderDetailsPage(page, baseURL)}
}

func (f *AssignManagerFlow) Open(t *testing.T, orderID string) {
	t.Helper()
	require.NoError(t, f.DetailsPage.OpenByOrderID(orderID))
	require.NoError(t, f.DetailsPage.WaitForLoaded())
}

func (f *AssignManagerFlow) openModal(t *testing.T) {
	t.Helper()
	require.NoError(t, f.DetailsPage.Header.OpenAssignManagerModal())
	require.NoError(t, f.DetailsPage.AssignManager.WaitForLoaded())
}

// Assign selects a manager by name in the modal and saves.
func (f *AssignManagerFlow) Assign(t *testing.T, managerName string) {
	t.Helper()
	f.openModal(t)
	require.NoError(t, f.DetailsPage.AssignManager.SelectManager(managerName))
	require.NoError(t, f.DetailsPage.AssignManager.ClickSave())
	require.NoError(t, f.DetailsPage.WaitForClosed(f.DetailsPage.AssignManager.Root()))
	require.NoError(t, f.DetailsPage.WaitForSpinners())
}

// AssignFirstAvailable assigns the first manager in the list and returns
// the display name that was assigned.
func (f *AssignManagerFlow) AssignFirstAvailable(t *testing.T) string {
	t.Helper()
	f.openModal(t)
	managers, err := f.DetailsPage.AssignManager.AvailableManagers()
	require.NoError(t, err)
	require.NotEmpty(t, managers, "managers available in the assign-manager modal")

	name := managers[0]
	require.NoError(t, f.DetailsPage.AssignManager.SelectManager(name))
	require.NoError(t, f.DetailsPage.AssignManager.ClickSave())
	require.NoError(t, f.DetailsPage.WaitForClosed(f.DetailsPage.AssignManager.Root()))
	require.NoError(t, f.DetailsPage.WaitForSpinners())
	return name
}

// AvailableManagers opens the modal, reads the list and cancels.
func (f *AssignManagerFlow) AvailableManagers(t *testing.T) []string {
	t.Helper()
	f.openModal(t)
	managers, err := f.DetailsPage.AssignManager.AvailableManagers()
	require.NoError(t, err)
	require.NoError(t, f.DetailsPage.AssignManager.ClickCancel())
	require.NoError(t, f.DetailsPage.WaitForClosed(f.DetailsPage.AssignManager.Root()))
	return managers
}

// CancelAssignment opens the modal and closes it without saving.
func (f *AssignManagerFlow) CancelAssignment(t *testing.T) {
	t.Helper()
	f.openModal(t)
	require.NoError(t, f.DetailsPage.AssignManager.ClickCancel())
	require.NoError(t, f.DetailsPage.WaitForClosed(f.DetailsPage.AssignManager.Root()))
}

// Unassign confirms manager removal through the confirmation dialog.
func (f *AssignManagerFlow) Unassign(t *testing.T) {
	t.Helper()
	require.NoError(t, f.DetailsPage.Header.OpenUnassignManagerModal())
	require.NoError(t, f.DetailsPage.ConfirmModal.WaitForLoaded())
	require.NoError(t, f.DetailsPage.ConfirmModal.Confirm())
	require.NoError(t, f.DetailsPage.WaitForClosed(f.DetailsPage.ConfirmModal.Root()))
	require.NoError(t, f.DetailsPage.WaitForSpinners())
}

// RequireManagerAssigned asserts the manager container shows name. Any
// parenthesised qualifier in name is ignored.
func (f *AssignManagerFlow) RequireManagerAssigned(t *testing.T, name string) {
	t.Helper()
	displayName := strings.TrimSpace(strings.SplitN(name, "(", 2)[0])
	text, err := f.DetailsPage.Header.AssignedManagerContainer().InnerText()
	require.NoError(t, err)
	require.Contains(t, text, displayName, "assigned manager container")
}

// RequireNoManagerAssigned asserts the assign trigger is shown instead of a
// manager name.
func (f *AssignManagerFlow) RequireNoManagerAssigned(t *testing.T) {
	t.Helper()
	visible, err := f.DetailsPage.Header.AssignManagerTrigger().IsVisible()
	require.NoError(t, err)
	require.True(t, visible, "assign manager trigger visible")
}
