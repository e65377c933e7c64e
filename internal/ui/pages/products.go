package pages

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/salesportal-qa/sales-portal-tests/internal/models"
)

// ProductRow is one row of the products table as rendered.
type ProductRow struct {
	Name         string
	Price        float64
	Manufacturer models.Manufacturer
	CreatedOn    string
}

// ProductsListPage is the products table with search, sorting, export and
// per-row actions.
type ProductsListPage struct {
	Base
	NavBar       *NavBar
	DetailsModal *ProductDetailsModal
	DeleteModal  *ConfirmationModal
	ExportModal  *ExportModal
}

func NewProductsListPage(page playwright.Page, baseURL string) *ProductsListPage {
	return &ProductsListPage{
		Base:         Base{Page: page, BaseURL: baseURL},
		NavBar:       NewNavBar(page, baseURL),
		DetailsModal: NewProductDetailsModal(page, baseURL),
		DeleteModal:  NewConfirmationModal(page, baseURL),
		ExportModal:  NewExportModal(page, baseURL, ProductsExportFields),
	}
}

func (p *ProductsListPage) AddNewProductButton() playwright.Locator {
	return p.Page.Locator(`[name="add-button"]`)
}

func (p *ProductsListPage) Title() playwright.Locator {
	return p.Page.Locator("h2.fw-bold")
}

func (p *ProductsListPage) TableRows() playwright.Locator {
	return p.Page.Locator("tbody tr")
}

func (p *ProductsListPage) RowByName(name string) playwright.Locator {
	return p.Page.Locator("table tbody tr", playwright.PageLocatorOptions{
		Has: p.Page.Locator("td", playwright.PageLocatorOptions{HasText: name}),
	})
}

func (p *ProductsListPage) NameCell(name string) playwright.Locator {
	return p.RowByName(name).Locator("td").Nth(0)
}

func (p *ProductsListPage) PriceCell(name string) playwright.Locator {
	return p.RowByName(name).Locator("td").Nth(1)
}

func (p *ProductsListPage) ManufacturerCell(name string) playwright.Locator {
	return p.RowByName(name).Locator("td").Nth(2)
}

func (p *ProductsListPage) TableHeader(name string) playwright.Locator {
	return p.Page.Locator("thead th div[current]", playwright.PageLocatorOptions{HasText: name})
}

// TableHeaderArrow locates the sort direction arrow on a column header.
func (p *ProductsListPage) TableHeaderArrow(name, direction string) playwright.Locator {
	arrowClass := "bi-arrow-down"
	if direction == "desc" {
		arrowClass = "bi-arrow-up"
	}
	return p.Page.Locator("thead th", playwright.PageLocatorOptions{
		Has: p.Page.Locator("div[current]", playwright.PageLocatorOptions{HasText: name}),
	}).Locator("i." + arrowClass)
}

func (p *ProductsListPage) SearchInput() playwright.Locator {
	return p.Page.Locator("#search")
}

func (p *ProductsListPage) SearchButton() playwright.Locator {
	return p.Page.Locator("#search-products")
}

func (p *ProductsListPage) ExportButton() playwright.Locator {
	return p.Page.Locator(`button[name="export-button"]`)
}

func (p *ProductsListPage) WaitForLoaded() error {
	return p.WaitForOpened(p.AddNewProductButton())
}

func (p *ProductsListPage) ClickAddNewProduct() error {
	return p.AddNewProductButton().Click()
}

// RowData reads one product row and parses the rendered cells.
func (p *ProductsListPage) RowData(name string) (ProductRow, error) {
	cells, err := p.RowByName(name).Locator("td").AllInnerTexts()
	if err != nil {
		return ProductRow{}, fmt.Errorf("read product row %q: %w", name, err)
	}
	return parseProductRow(cells)
}

// TableData reads every product row currently in the table.
func (p *ProductsListPage) TableData() ([]ProductRow, error) {
	rows, err := p.TableRows().All()
	if err != nil {
		return nil, err
	}
	data := make([]ProductRow, 0, len(rows))
	for _, row := range rows {
		cells, err := row.Locator("td").AllInnerTexts()
		if err != nil {
			return nil, err
		}
		parsed, err := parseProductRow(cells)
		if err != nil {
			return nil, err
		}
		data = append(data, parsed)
	}
	return data, nil
}

func parseProductRow(cells []string) (ProductRow, error) {
	if len(cells) < 4 {
		return ProductRow{}, fmt.Errorf("product row has %d cells, want 4", len(cells))
	}
	price, err := strconv.ParseFloat(strings.TrimPrefix(cells[1], "$"), 64)
	if err != nil {
		return ProductRow{}, fmt.Errorf("parse product price %q: %w", cells[1], err)
	}
	return ProductRow{
		Name:         cells[0],
		Price:        price,
		Manufacturer: models.Manufacturer(cells[2]),
		CreatedOn:    cells[3],
	}, nil
}

func (p *ProductsListPage) ClickAction(name, action string) error {
	switch action {
	case "edit":
		return p.RowByName(name).GetByTitle("Edit").Click()
	case "details":
		return p.RowByName(name).GetByTitle("Details").Click()
	case "delete":
		return p.RowByName(name).GetByTitle("Delete").Click()
	default:
		return fmt.Errorf("unknown row action %q", action)
	}
}

func (p *ProductsListPage) ClickTableHeader(name string) error {
	return p.TableHeader(name).Click()
}

func (p *ProductsListPage) Search(text string) error {
	if err := p.SearchInput().Fill(text); err != nil {
		return err
	}
	return p.SearchButton().Click()
}

func (p *ProductsListPage) OpenExportModal() error {
	if err := p.ExportButton().Click(); err != nil {
		return err
	}
	return p.ExportModal.CheckFields("Name", "Price", "Manufacturer", "Amount", "Created On", "Notes")
}

// productForm covers the add and edit product pages, which share every input.
type productForm struct {
	Base
}

func (f *productForm) Title() playwright.Locator {
	return f.Page.Locator("h2.page-title-text")
}

func (f *productForm) NameInput() playwright.Locator  { return f.Page.Locator("#inputName") }
func (f *productForm) PriceInput() playwright.Locator { return f.Page.Locator("#inputPrice") }
func (f *productForm) AmountInput() playwright.Locator { return f.Page.Locator("#inputAmount") }
func (f *productForm) NotesInput() playwright.Locator  { return f.Page.Locator("#textareaNotes") }

func (f *productForm) ManufacturerSelect() playwright.Locator {
	return f.Page.Locator("#inputManufacturer")
}

func (f *productForm) WaitForLoaded() error {
	return f.WaitForOpened(f.Title())
}

// FillForm fills only non-zero fields.
func (f *productForm) FillForm(product models.ProductInput) error {
	if product.Name != "" {
		if err := f.NameInput().Fill(product.Name); err != nil {
			return err
		}
	}
	if product.Manufacturer != "" {
		_, err := f.ManufacturerSelect().SelectOption(playwright.SelectOptionValues{
			Values: &[]string{string(product.Manufacturer)},
		})
		if err != nil {
			return err
		}
	}
	if product.Price != 0 {
		if err := f.PriceInput().Fill(strconv.Itoa(product.Price)); err != nil {
			return err
		}
	}
	if product.Amount != 0 {
		if err := f.AmountInput().Fill(strconv.Itoa(product.Amount)); err != nil {
			return err
		}
	}
	if product.Notes != "" {
		if err := f.NotesInput().Fill(product.Notes); err != nil {
			return err
		}
	}
	return nil
}

// AddProductPage is the create-product form.
type AddProductPage struct {
	productForm
}

func NewAddProductPage(page playwright.Page, baseURL string) *AddProductPage {
	return &AddProductPage{productForm{Base{Page: page, BaseURL: baseURL}}}
}

func (p *AddProductPage) SaveButton() playwright.Locator {
	return p.Page.Locator("#save-new-product")
}

func (p *AddProductPage) ClickSave() error {
	return p.SaveButton().Click()
}

// EditProductPage is the edit-product form.
type EditProductPage struct {
	productForm
}

func NewEditProductPage(page playwright.Page, baseURL string) *EditProductPage {
	return &EditProductPage{productForm{Base{Page: page, BaseURL: baseURL}}}
}

func (p *EditProductPage) SaveButton() playwright.Locator {
	return p.Page.Locator("#save-product-changes")
}

func (p *EditProductPage) DeleteButton() playwright.Locator {
	return p.Page.Locator("#delete-product-btn")
}

func (p *EditProductPage) ClickSave() error {
	return p.SaveButton().Click()
}

func (p *EditProductPage) ClickDelete() error {
	return p.DeleteButton().Click()
}

// ProductDetailsModal is the read-only product dialog.
type ProductDetailsModal struct {
	Base
}

func NewProductDetailsModal(page playwright.Page, baseURL string) *ProductDetailsModal {
	return &ProductDetailsModal{Base{Page: page, BaseURL: baseURL}}
}

func (m *ProductDetailsModal) Root() playwright.Locator {
	return m.Page.Locator("#ProductDetailsModal")
}

func (m *ProductDetailsModal) Title() playwright.Locator {
	return m.Root().Locator("h5")
}

func (m *ProductDetailsModal) CloseButton() playwright.Locator {
	return m.Root().Locator("button.btn-close")
}

func (m *ProductDetailsModal) EditButton() playwright.Locator {
	return m.Root().Locator("button.btn-primary")
}

func (m *ProductDetailsModal) CancelButton() playwright.Locator {
	return m.Root().Locator("button.btn-secondary")
}

// Data reads the modal values in render order: name, amount, price,
// manufacturer, created on, notes.
func (m *ProductDetailsModal) Data() (models.ProductInput, error) {
	values, err := m.Root().Locator("p").AllInnerTexts()
	if err != nil {
		return models.ProductInput{}, err
	}
	if len(values) < 6 {
		return models.ProductInput{}, fmt.Errorf("product details modal has %d values, want 6", len(values))
	}
	amount, err := strconv.Atoi(values[1])
	if err != nil {
		return models.ProductInput{}, fmt.Errorf("parse product amount %q: %w", values[1], err)
	}
	price, err := strconv.Atoi(values[2])
	if err != nil {
		return models.ProductInput{}, fmt.Errorf("parse product price %q: %w", values[2], err)
	}
	notes := values[5]
	if notes == "-" {
		notes = ""
	}
	return models.ProductInput{
		Name:         values[0],
		Amount:       amount,
		Price:        price,
		Manufacturer: models.Manufacturer(values[3]),
		Notes:        notes,
	}, nil
}
