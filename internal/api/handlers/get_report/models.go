package get_report

import (
	"fmt"
	"strings"
	"time"

	"github.com/jpinedac/BRB-AgendaService/internal/domain"
)

// TotalsModel totales agregados de ventas. SalesFormatted lleva el total en
// formato de moneda colombiana ("$ 52.000") para mostrar tal cual.
type TotalsModel struct {
	Sales          float64 `json:"sales"`
	BarberShare    float64 `json:"barberShare"`
	ShopShare      float64 `json:"shopShare"`
	SalesFormatted string  `json:"salesFormatted"`
}

// PaymentModel un cobro dentro del rango
type PaymentModel struct {
	PaymentID     int64   `json:"paymentId"`
	AppointmentID int64   `json:"appointmentId"`
	BarberID      int64   `json:"barberId"`
	BarberName    string  `json:"barberName"`
	Total         float64 `json:"total"`
	BarberTotal   float64 `json:"barberTotal"`
	ShopTotal     float64 `json:"shopTotal"`
	PaymentMethod string  `json:"paymentMethod"`
	PaidAt        string  `json:"paidAt"`
	PaidAtDisplay string  `json:"paidAtDisplay"`
}

// BarberBreakdownModel desglose por barbero
type BarberBreakdownModel struct {
	BarberID     int64       `json:"barberId"`
	BarberName   string      `json:"barberName"`
	Totals       TotalsModel `json:"totals"`
	ServiceLines []string    `json:"serviceLines,omitempty"`
}

// DayBreakdownModel desglose por día calendario
type DayBreakdownModel struct {
	Day    string      `json:"day"`
	Totals TotalsModel `json:"totals"`
}

// ReportResponse modelo HTTP del resumen de ventas
type ReportResponse struct {
	From         string                 `json:"from"`
	To           string                 `json:"to"`
	Totals       TotalsModel            `json:"totals"`
	Payments     []PaymentModel         `json:"payments"`
	PerBarber    []BarberBreakdownModel `json:"perBarber"`
	PerDay       []DayBreakdownModel    `json:"perDay"`
	StatusCounts map[string]int         `json:"statusCounts"`
}

func totalsModel(t domain.ReportTotals) TotalsModel {
	return TotalsModel{
		Sales:          t.Sales,
		BarberShare:    t.BarberShare,
		ShopShare:      t.ShopShare,
		SalesFormatted: formatCOP(t.Sales),
	}
}

// formatCOP formatea un monto en pesos colombianos: "$ 52.000". Los montos
// del catálogo son enteros, los decimales se descartan.
func formatCOP(v float64) string {
	n := int64(v)
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return fmt.Sprintf("%s$ %s", sign, b.String())
}

// FromSummary convierte el resumen del dominio al modelo HTTP
func FromSummary(summary *domain.ReportSummary) *ReportResponse {
	payments := make([]PaymentModel, 0, len(summary.Payments))
	for _, p := range summary.Payments {
		payments = append(payments, PaymentModel{
			PaymentID:     p.PaymentID,
			AppointmentID: p.AppointmentID,
			BarberID:      p.BarberID,
			BarberName:    p.BarberName,
			Total:         p.TotalAmount,
			BarberTotal:   p.BarberTotal,
			ShopTotal:     p.ShopTotal,
			PaymentMethod: p.PaymentMethod,
			PaidAt:        p.PaidAt.Format(time.RFC3339),
			PaidAtDisplay: p.PaidAt.Format("02/01/2006 03:04 PM"),
		})
	}

	perBarber := make([]BarberBreakdownModel, 0, len(summary.PerBarber))
	for _, bb := range summary.PerBarber {
		perBarber = append(perBarber, BarberBreakdownModel{
			BarberID:     bb.BarberID,
			BarberName:   bb.BarberName,
			Totals:       totalsModel(bb.Totals),
			ServiceLines: bb.ServiceLines,
		})
	}

	perDay := make([]DayBreakdownModel, 0, len(summary.PerDay))
	for _, db := range summary.PerDay {
		perDay = append(perDay, DayBreakdownModel{
			Day:    db.Day,
			Totals: totalsModel(db.Totals),
		})
	}

	statusCounts := make(map[string]int, len(summary.StatusCounts))
	for status, count := range summary.StatusCounts {
		statusCounts[string(status)] = count
	}

	return &ReportResponse{
		From:         summary.From.Format(domain.DateFormat),
		To:           summary.To.Format(domain.DateFormat),
		Totals:       totalsModel(summary.Totals),
		Payments:     payments,
		PerBarber:    perBarber,
		PerDay:       perDay,
		StatusCounts: statusCounts,
	}
}
