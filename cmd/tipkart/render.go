package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/nikolayk812/tipkart/internal/catalog"
	"github.com/nikolayk812/tipkart/internal/domain"
	"github.com/nikolayk812/tipkart/internal/storefront"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	primary = lipgloss.Color("#101F38")
	accent  = lipgloss.Color("#8BC34A")
	warning = lipgloss.Color("#FFC107")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(primary)
	accentStyle = lipgloss.NewStyle().Foreground(accent)
	saleStyle   = lipgloss.NewStyle().Foreground(warning)
	mutedStyle  = lipgloss.NewStyle().Faint(true)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(primary).Padding(0, 1)
)

var printer = message.NewPrinter(language.English)

func formatMoney(m domain.Money) string {
	return printer.Sprint(currency.Symbol(m.Currency.Amount(m.Amount.InexactFloat64())))
}

func renderProducts(products []domain.Product) string {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		var discount string
		if p.OnSale() {
			discount = fmt.Sprintf("%d%% off", p.Discount)
		}
		rows = append(rows, []string{
			strconv.FormatInt(int64(p.ID), 10),
			p.Name,
			p.Category,
			formatMoney(p.Price),
			discount,
			fmt.Sprintf("%.1f (%d)", p.Rating, p.Reviews),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(primary)).
		Headers("ID", "NAME", "CATEGORY", "PRICE", "DISCOUNT", "RATING").
		Rows(rows...).
		Render()
}

func renderCategories(categories []string) string {
	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, []string{c, mutedStyle.Render(catalog.Slug(c))})
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		Rows(rows...).
		Render()

	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Shop by Category"), t)
}

func renderProduct(p domain.Product) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(p.Name))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(p.Category))
	b.WriteString("\n\n")
	b.WriteString(accentStyle.Render(formatMoney(p.Price)))
	if p.OnSale() {
		b.WriteString(" ")
		b.WriteString(mutedStyle.Strikethrough(true).Render(formatMoney(*p.OriginalPrice)))
		b.WriteString(" ")
		b.WriteString(saleStyle.Render(fmt.Sprintf("%d%% off, save %s", p.Discount, formatMoney(p.Savings()))))
	}
	fmt.Fprintf(&b, "\nRating %.1f (%d reviews)\n\n%s", p.Rating, p.Reviews, p.Description)

	return boxStyle.Render(b.String())
}

func renderStep(r storefront.StepResult) string {
	return fmt.Sprintf("%s %-8s items=%d total=%s",
		mutedStyle.Render(fmt.Sprintf("[%d]", r.Index+1)),
		r.Action,
		r.Cart.TotalItems,
		formatMoney(r.Cart.TotalPrice))
}

func renderCart(cart domain.Cart, summary domain.PriceSummary) string {
	rows := make([][]string, 0, len(cart.Items))
	for _, item := range cart.Items {
		rows = append(rows, []string{
			item.Name,
			formatMoney(item.Price),
			strconv.Itoa(item.Quantity),
			formatMoney(item.LineTotal()),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ITEM", "PRICE", "QTY", "TOTAL").
		Rows(rows...).
		Render()

	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Cart"), t, renderSummary(summary))
}

func renderSummary(s domain.PriceSummary) string {
	shipping := "FREE"
	if !s.Shipping.IsZero() {
		shipping = formatMoney(s.Shipping)
	}

	return strings.Join([]string{
		fmt.Sprintf("Subtotal  %s", formatMoney(s.Subtotal)),
		fmt.Sprintf("Tax       %s", formatMoney(s.Tax)),
		fmt.Sprintf("Shipping  %s", shipping),
		titleStyle.Render(fmt.Sprintf("Total     %s", formatMoney(s.Total))),
	}, "\n")
}

func renderOrder(o domain.Order) string {
	lines := []string{
		accentStyle.Bold(true).Render("Order placed successfully!"),
		fmt.Sprintf("Order number  %s", o.Number),
		fmt.Sprintf("Delivery      %s", o.EstimatedDelivery),
		fmt.Sprintf("Payment       %s", strings.ToUpper(string(o.Payment.Method))),
	}
	if o.PlacedBy != nil {
		lines = append(lines, fmt.Sprintf("Placed by     %s <%s>", o.PlacedBy.Name, o.PlacedBy.Email))
	}
	lines = append(lines, "", renderSummary(o.Summary))

	return boxStyle.Render(strings.Join(lines, "\n"))
}

func renderTracking(t domain.Tracking) string {
	completed, total := t.Progress()

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", titleStyle.Render("Order #"+t.OrderNumber))
	fmt.Fprintf(&b, "Status    %s (%d/%d)\n", accentStyle.Render(t.StatusLabel()), completed, total)
	fmt.Fprintf(&b, "Delivery  %s\n", t.EstimatedDelivery)
	fmt.Fprintf(&b, "Location  %s\n", t.CurrentLocation)

	for _, u := range t.Updates {
		mark := mutedStyle.Render("○")
		if u.Completed {
			mark = accentStyle.Render("●")
		}
		fmt.Fprintf(&b, "\n%s %s\n  %s\n", mark, u.Status, mutedStyle.Render(u.Location+" · "+u.Timestamp))
	}

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}
