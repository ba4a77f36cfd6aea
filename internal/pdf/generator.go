package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"saudeplus/internal/domain/entities"
)

// Generator renders the printable guia voucher a provider presents when
// delivering an authorized service.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Voucher(a entities.ServiceAuthorization) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Guia de Autorização de Serviço"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Código de autenticação: %s", a.AuthCode)), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Situação: %s", strings.ToUpper(string(a.Status)))), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	rows := [][2]string{
		{"Guia", a.ID},
		{"Cliente", a.ClientID},
		{"Prestador", a.ProviderID},
		{"Serviço", a.ServiceID},
		{"Valor", fmt.Sprintf("R$ %.2f", a.Value)},
		{"Venda", safeValue(a.SaleID)},
		{"Emitida em", formatDate(a.EmittedAt)},
		{"Realizada em", formatDatePtr(a.RealizedAt)},
		{"Faturada em", formatDatePtr(a.BilledAt)},
		{"Paga em", formatDatePtr(a.PaidAt)},
	}

	pdf.SetFont("Helvetica", "", 11)
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(50, 8, tr(row[0]), "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, tr(row[1]), "1", 1, "L", false, 0, "")
	}

	pdf.Ln(14)
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, tr("Assinatura do cliente: ______________________________"), "", 1, "L", false, 0, "")
	pdf.Ln(4)
	pdf.CellFormat(0, 7, tr("Assinatura do prestador: ____________________________"), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "—"
	}
	return value
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "—"
	}
	return t.Format("02/01/2006 15:04")
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return "—"
	}
	return formatDate(*t)
}
