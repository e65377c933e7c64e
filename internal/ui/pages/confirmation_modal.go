package pages

import "github.com/playwright-community/playwright-go"

// ConfirmationModal is the generic confirm/cancel dialog used for deletes
// and order processing confirmations.
type ConfirmationModal struct {
	Base
}

func NewConfirmationModal(page playwright.Page, baseURL string) *ConfirmationModal {
	return &ConfirmationModal{Base{Page: page, BaseURL: baseURL}}
}

func (m *ConfirmationModal) Root() playwright.Locator {
	return m.Page.Locator(`[name="confirmation-modal"]`)
}

func (m *ConfirmationModal) Title() playwright.Locator {
	return m.Root().Locator("h5")
}

func (m *ConfirmationModal) Message() playwright.Locator {
	return m.Root().Locator("div.modal-body p")
}

func (m *ConfirmationModal) ConfirmButton() playwright.Locator {
	return m.Root().Locator("button[type='submit']")
}

func (m *ConfirmationModal) CancelButton() playwright.Locator {
	return m.Root().Locator("button.btn-secondary")
}

func (m *ConfirmationModal) CloseButton() playwright.Locator {
	return m.Root().Locator("button.btn-close")
}

func (m *ConfirmationModal) WaitForLoaded() error {
	return m.WaitForOpened(m.Root())
}

func (m *ConfirmationModal) Confirm() error {
	return m.ConfirmButton().Click()
}

func (m *ConfirmationModal) Cancel() error {
	return m.CancelButton().Click()
}

func (m *ConfirmationModal) Close() error {
	return m.CloseButton().Click()
}
