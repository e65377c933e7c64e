package pages

import (
	"github.com/playwright-community/playwright-go"

	"github.com/salesportal-qa/sales-portal-tests/internal/models"
)

// LoginPage is the email/password sign-in form.
type LoginPage struct {
	Base
}

func NewLoginPage(page playwright.Page, baseURL string) *LoginPage {
	return &LoginPage{Base{Page: page, BaseURL: baseURL}}
}

func (p *LoginPage) SignInPage() playwright.Locator {
	return p.Page.Locator("#signInPage")
}

func (p *LoginPage) EmailInput() playwright.Locator {
	return p.Page.Locator("#emailinput")
}

func (p *LoginPage) PasswordInput() playwright.Locator {
	return p.Page.Locator("#passwordinput")
}

func (p *LoginPage) LoginButton() playwright.Locator {
	return p.Page.Locator("button[type='submit']")
}

func (p *LoginPage) WaitForLoaded() error {
	return p.WaitForOpened(p.SignInPage())
}

// FillCredentials fills only the non-empty fields, so negative cases can
// leave inputs blank.
func (p *LoginPage) FillCredentials(creds models.Credentials) error {
	if creds.Username != "" {
		if err := p.EmailInput().Fill(creds.Username); err != nil {
			return err
		}
	}
	if creds.Password != "" {
		if err := p.PasswordInput().Fill(creds.Password); err != nil {
			return err
		}
	}
	return nil
}

func (p *LoginPage) ClickLogin() error {
	return p.LoginButton().Click()
}
