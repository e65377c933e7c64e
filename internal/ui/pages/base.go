// Package pages holds the page objects of the Sales Portal UI. Each page
// wraps a playwright.Page, exposes its locators and offers high-level
// actions; assertions stay in the tests.
package pages

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
)

const (
	timeoutShort = 10_000
	timeoutLong  = 30_000
)

// Base carries what every portal page shares: the browser page, the portal
// base URL, spinner and toast locators, navigation and cookie helpers.
type Base struct {
	Page    playwright.Page
	BaseURL string
}

func (b *Base) Spinner() playwright.Locator {
	return b.Page.Locator(".spinner-border")
}

func (b *Base) ToastMessage() playwright.Locator {
	return b.Page.Locator(".toast-body")
}

// Open navigates to the portal, optionally appending route. Leading slashes
// and hashes in route are tolerated.
func (b *Base) Open(route string) error {
	url := b.BaseURL
	if normalized := strings.TrimLeft(strings.TrimSpace(route), "/"); normalized != "" {
		url += normalized
	}
	_, err := b.Page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(timeoutLong),
	})
	if err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}

// WaitForOpened waits until unique is visible and every spinner is gone.
func (b *Base) WaitForOpened(unique playwright.Locator) error {
	if err := unique.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(timeoutLong),
	}); err != nil {
		return fmt.Errorf("wait for page element: %w", err)
	}
	return b.WaitForSpinners()
}

// WaitForSpinners blocks until no spinner is active.
func (b *Base) WaitForSpinners() error {
	if err := b.Spinner().First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateHidden,
		Timeout: playwright.Float(timeoutLong),
	}); err != nil {
		return fmt.Errorf("wait for spinners: %w", err)
	}
	return nil
}

// WaitForClosed waits for a modal's unique element to disappear.
func (b *Base) WaitForClosed(unique playwright.Locator) error {
	return unique.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateHidden,
		Timeout: playwright.Float(timeoutShort),
	})
}

// AuthToken returns the value of the Authorization cookie.
func (b *Base) AuthToken() (string, error) {
	cookies, err := b.Page.Context().Cookies()
	if err != nil {
		return "", fmt.Errorf("read cookies: %w", err)
	}
	for _, c := range cookies {
		if c.Name == "Authorization" {
			return c.Value, nil
		}
	}
	return "", fmt.Errorf("Authorization cookie not found")
}

// InterceptResponse runs trigger and returns the first response whose URL
// contains urlPart.
func (b *Base) InterceptResponse(urlPart string, trigger func() error) (playwright.Response, error) {
	resp, err := b.Page.ExpectResponse(
		func(r playwright.Response) bool { return strings.Contains(r.URL(), urlPart) },
		trigger,
	)
	if err != nil {
		return nil, fmt.Errorf("intercept response %q: %w", urlPart, err)
	}
	return resp, nil
}

// InterceptRequest runs trigger and returns the first request whose URL
// contains urlPart and whose method matches (empty method matches any).
func (b *Base) InterceptRequest(method, urlPart string, trigger func() error) (playwright.Request, error) {
	req, err := b.Page.ExpectRequest(
		func(r playwright.Request) bool {
			if !strings.Contains(r.URL(), urlPart) {
				return false
			}
			return method == "" || strings.EqualFold(r.Method(), method)
		},
		trigger,
	)
	if err != nil {
		return nil, fmt.Errorf("intercept request %s %q: %w", method, urlPart, err)
	}
	return req, nil
}
