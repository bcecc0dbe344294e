package analytics

import (
	"bytes"
	"fmt"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

var (
	darkGray   = color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray = color.Color{Red: 121, Green: 119, Blue: 109}
)

// ReportFilename is the download name of a rendered report.
func ReportFilename(r *Report) string {
	return fmt.Sprintf("analytics-%s-%s.pdf", r.Window.Range, r.Window.Now.Format("2006-01-02"))
}

// RenderReportPDF lays a computed dashboard out as an A4 document: headline metrics
// with trends, top sellers and the non-empty days of the sales series.
func RenderReportPDF(r *Report) (*bytes.Buffer, error) {
	if r == nil || r.Result == nil {
		return nil, fmt.Errorf("render report: empty report")
	}
	res := r.Result

	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("SALES ANALYTICS", props.Text{
				Size:  22,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})

	m.Row(6, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("%s to %s (%s)",
				r.Window.Start.Format("Jan 02, 2006"),
				r.Window.Now.Format("Jan 02, 2006"),
				r.Window.Range,
			), props.Text{
				Size:  9,
				Color: mediumGray,
			})
		})
	})

	m.Row(8, func() {})

	metricRow(m, "Total revenue", fmt.Sprintf("$%.2f", res.TotalRevenue), res.RevenueTrend)
	metricRow(m, "Orders", fmt.Sprintf("%d", res.TotalOrders), res.OrdersTrend)
	metricRow(m, "New customers", fmt.Sprintf("%d", res.TotalUsers), res.UsersTrend)
	metricRow(m, "Conversion rate", fmt.Sprintf("%.2f%%", res.ConversionRate), res.ConversionTrend)
	metricRow(m, "Average order value", fmt.Sprintf("$%.2f", res.AverageOrderValue), res.AOVTrend)
	metricRow(m, "Products in catalogue", fmt.Sprintf("%d", res.TotalProducts), 0)

	m.Row(8, func() {})

	sectionTitle(m, "TOP SELLING PRODUCTS")
	if len(res.TopSellingProducts) == 0 {
		emptyRow(m, "No sales in this period")
	}
	for i, tp := range res.TopSellingProducts {
		m.Row(6, func() {
			m.Col(1, func() {
				m.Text(fmt.Sprintf("%d.", i+1), props.Text{Size: 9, Color: mediumGray})
			})
			m.Col(7, func() {
				m.Text(tp.Product.Name, props.Text{Size: 9, Color: darkGray})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("$%.2f", tp.Product.Price), props.Text{
					Size:  9,
					Color: mediumGray,
					Align: consts.Right,
				})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%d sold", tp.SalesCount), props.Text{
					Size:  9,
					Style: consts.Bold,
					Color: darkGray,
					Align: consts.Right,
				})
			})
		})
	}

	m.Row(8, func() {})

	sectionTitle(m, "DAILY SALES")
	active := 0
	for _, p := range res.SalesData {
		if p.Orders == 0 && p.Users == 0 {
			continue
		}
		active++
		m.Row(5, func() {
			m.Col(4, func() {
				m.Text(p.Date, props.Text{Size: 8, Color: mediumGray})
			})
			m.Col(3, func() {
				m.Text(fmt.Sprintf("$%.2f", p.Revenue), props.Text{Size: 8, Color: darkGray, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%d orders", p.Orders), props.Text{Size: 8, Color: darkGray, Align: consts.Right})
			})
			m.Col(3, func() {
				m.Text(fmt.Sprintf("%d signups", p.Users), props.Text{Size: 8, Color: darkGray, Align: consts.Right})
			})
		})
	}
	if active == 0 {
		emptyRow(m, "No activity in this period")
	}

	m.Row(12, func() {})
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Generated %s UTC", r.Window.Now.Format("Jan 02, 2006 15:04")), props.Text{
				Size:  8,
				Color: mediumGray,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return &buf, nil
}

func sectionTitle(m pdf.Maroto, title string) {
	m.Row(8, func() {
		m.Col(12, func() {
			m.Text(title, props.Text{
				Size:  11,
				Style: consts.Bold,
				Color: darkGray,
			})
		})
	})
}

func emptyRow(m pdf.Maroto, msg string) {
	m.Row(6, func() {
		m.Col(12, func() {
			m.Text(msg, props.Text{Size: 9, Color: mediumGray})
		})
	})
}

func metricRow(m pdf.Maroto, label, value string, trend float64) {
	m.Row(6, func() {
		m.Col(6, func() {
			m.Text(label, props.Text{Size: 10, Color: mediumGray})
		})
		m.Col(4, func() {
			m.Text(value, props.Text{
				Size:  10,
				Style: consts.Bold,
				Color: darkGray,
				Align: consts.Right,
			})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("%+.1f%%", trend), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})
}
