package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
	"github.com/salesmetrics/kpi-reporting-api/internal/config"
	"github.com/salesmetrics/kpi-reporting-api/internal/domain"
	"github.com/salesmetrics/kpi-reporting-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// PDFGenerator renderiza um snapshot de métricas em um relatório PDF
type PDFGenerator interface {
	// Generate escreve o PDF no diretório de saída e retorna o caminho do arquivo
	Generate(snapshot *domain.MetricSnapshot) (string, error)
}

type pdfGenerator struct {
	cfg config.Report
}

// NewPDFGenerator cria o gerador de relatórios em PDF
func NewPDFGenerator(cfg config.Report) PDFGenerator {
	return &pdfGenerator{cfg: cfg}
}

func (g *pdfGenerator) Generate(snapshot *domain.MetricSnapshot) (string, error) {
	if snapshot == nil {
		return "", errors.New("snapshot de métricas vazio")
	}

	if err := os.MkdirAll(g.cfg.OutputDir, 0o755); err != nil {
		return "", errors.Wrap(err, "erro ao criar diretório de saída do relatório")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return "", errors.Wrap(err, "erro ao gerar identificador do relatório")
	}

	filename := fmt.Sprintf("kpi_report_%s_%s.pdf", snapshot.GeneratedAt.Format("20060102"), id)
	path := filepath.Join(g.cfg.OutputDir, filename)

	pdf := gofpdf.New("P", "mm", "A4", "")
	// Tradutor para acentos (cp1252), necessário para textos em português
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Relatório de KPIs de Vendas"), true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr("Relatório de KPIs de Vendas"), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 6, tr("Gerado em "+snapshot.GeneratedAt.Format("02/01/2006 15:04")), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	g.writeSummary(pdf, tr, snapshot)

	if len(snapshot.RevenueByProduct) > 0 {
		g.writeGroupTable(pdf, tr, "Receita por Linha de Produto", snapshot.RevenueByProduct)
	}

	if len(snapshot.RevenueByRegion) > 0 {
		g.writeGroupTable(pdf, tr, "Receita por País", snapshot.RevenueByRegion)
	}

	if len(snapshot.TopCustomers) > 0 {
		g.writeTopCustomers(pdf, tr, snapshot.TopCustomers)
	}

	if len(snapshot.MonthlyTrend) > 0 {
		g.writeMonthlyTrend(pdf, tr, snapshot.MonthlyTrend)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", errors.Wrap(err, "erro ao escrever o arquivo PDF")
	}

	logrus.WithFields(logrus.Fields{
		"path":          path,
		"total_revenue": snapshot.TotalRevenue,
	}).Info("Relatório PDF gerado com sucesso")

	return path, nil
}

// writeSummary escreve o bloco de KPIs principais no topo do relatório
func (g *pdfGenerator) writeSummary(pdf *gofpdf.Fpdf, tr func(string) string, snapshot *domain.MetricSnapshot) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, tr("Indicadores Principais"), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)

	rows := [][2]string{
		{"Receita Total", formatMoney(snapshot.TotalRevenue)},
		{"Lucro Total", formatMoney(snapshot.TotalProfit)},
		{"Margem de Lucro", formatPct(snapshot.ProfitMarginPct)},
		{"Custo de Aquisição de Clientes (CAC)", formatMoney(snapshot.CustomerAcquisitionCost)},
	}

	if snapshot.CustomerStatus != nil {
		rows = append(rows,
			[2]string{
				fmt.Sprintf("Clientes Ativos (%d)", snapshot.CustomerStatus.LatestYear),
				fmt.Sprintf("%d", snapshot.CustomerStatus.ActiveCustomers),
			},
			[2]string{"Clientes Perdidos", fmt.Sprintf("%d", snapshot.CustomerStatus.ChurnedCustomers)},
			[2]string{"Taxa de Retenção", formatPct(snapshot.CustomerStatus.RetentionPct)},
		)
	}

	if snapshot.Highlights != nil {
		rows = append(rows,
			[2]string{"Clientes Distintos", fmt.Sprintf("%d", snapshot.Highlights.DistinctCustomers)},
		)
	}

	for _, row := range rows {
		pdf.CellFormat(100, 7, tr(row[0]), "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, row[1], "1", 1, "R", false, 0, "")
	}

	pdf.Ln(6)
}

func (g *pdfGenerator) writeGroupTable(pdf *gofpdf.Fpdf, tr func(string) string, title string, groups []*domain.GroupRevenue) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(80, 7, tr("Nome"), "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, tr("Receita"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, tr("Lucro"), "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, group := range groups {
		pdf.CellFormat(80, 6, tr(group.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, formatMoney(group.Revenue), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, formatMoney(group.Profit), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(6)
}

func (g *pdfGenerator) writeTopCustomers(pdf *gofpdf.Fpdf, tr func(string) string, customers []*domain.CustomerRevenue) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, tr("Top Clientes por Receita"), "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(15, 7, "#", "1", 0, "C", false, 0, "")
	pdf.CellFormat(85, 7, tr("Cliente"), "1", 0, "L", false, 0, "")
	pdf.CellFormat(35, 7, tr("Receita"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(25, 7, tr("Pedidos"), "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	for i, customer := range customers {
		pdf.CellFormat(15, 6, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(85, 6, tr(customer.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, formatMoney(customer.Revenue), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%d", customer.Orders), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(6)
}

func (g *pdfGenerator) writeMonthlyTrend(pdf *gofpdf.Fpdf, tr func(string) string, trend []*domain.MonthlyRevenue) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, tr("Tendência Mensal de Receita"), "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(40, 7, tr("Mês"), "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 7, tr("Receita"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(60, 7, tr("Lucro"), "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, month := range trend {
		pdf.CellFormat(40, 6, month.Month, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, formatMoney(month.Revenue), "1", 0, "R", false, 0, "")
		pdf.CellFormat(60, 6, formatMoney(month.Profit), "1", 1, "R", false, 0, "")
	}
}

func formatMoney(value float64) string {
	return fmt.Sprintf("$ %.2f", value)
}

func formatPct(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}
