// Package uiservice provides high-level browser flows composed from the
// page objects. Flows combine navigation, form filling and waits into
// single calls suitable for test setup; test-specific assertions stay in
// the tests.
package uiservice

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"

	"github.com/salesportal-qa/sales-portal-tests/internal/models"
	"github.com/salesportal-qa/sales-portal-tests/internal/ui/pages"
)

// LoginFlow logs in through the sign-in form.
type LoginFlow struct {
	LoginPage *pages.LoginPage
	HomePage  *pages.HomePage
}

func NewLoginFlow(page playwright.Page, baseURL string) *LoginFlow {
	return &LoginFlow{
		LoginPage: pages.NewLoginPage(page, baseURL),
		HomePage:  pages.NewHomePage(page, baseURL),
	}
}

// Login opens the sign-in page, submits creds, waits for the home page and
// returns the Authorization cookie value.
func (f *LoginFlow) Login(t *testing.T, creds models.Credentials) string {
	t.Helper()
	require.NoError(t, f.LoginPage.Open(""))
	require.NoError(t, f.LoginPage.WaitForLoaded())
	require.NoError(t, f.LoginPage.FillCredentials(creds))
	require.NoError(t, f.LoginPage.ClickLogin())
	require.NoError(t, f.HomePage.WaitForLoaded())
	token, err := f.HomePage.AuthToken()
	require.NoError(t, err, "Authorization cookie after login")
	return token
}
