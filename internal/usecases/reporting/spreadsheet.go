package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/salesmetrics/kpi-reporting-api/internal/config"
	"github.com/salesmetrics/kpi-reporting-api/internal/domain"
	"github.com/salesmetrics/kpi-reporting-api/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// SpreadsheetExporter exporta um snapshot de métricas para uma planilha xlsx
type SpreadsheetExporter interface {
	// Export escreve a planilha no diretório de saída e retorna o caminho do arquivo
	Export(snapshot *domain.MetricSnapshot) (string, error)
}

type spreadsheetExporter struct {
	cfg config.Report
}

// NewSpreadsheetExporter cria o exportador de planilhas
func NewSpreadsheetExporter(cfg config.Report) SpreadsheetExporter {
	return &spreadsheetExporter{cfg: cfg}
}

func (e *spreadsheetExporter) Export(snapshot *domain.MetricSnapshot) (string, error) {
	if snapshot == nil {
		return "", errors.New("snapshot de métricas vazio")
	}

	if err := os.MkdirAll(e.cfg.OutputDir, 0o755); err != nil {
		return "", errors.Wrap(err, "erro ao criar diretório de saída do relatório")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return "", errors.Wrap(err, "erro ao gerar identificador do relatório")
	}

	filename := fmt.Sprintf("kpi_report_%s_%s.xlsx", snapshot.GeneratedAt.Format("20060102"), id)
	path := filepath.Join(e.cfg.OutputDir, filename)

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logrus.WithError(cerr).Warn("Erro ao fechar arquivo da planilha")
		}
	}()

	if err := e.writeSummarySheet(f, snapshot); err != nil {
		return "", err
	}

	if err := e.writeGroupSheet(f, "Por Produto", snapshot.RevenueByProduct); err != nil {
		return "", err
	}

	if err := e.writeGroupSheet(f, "Por País", snapshot.RevenueByRegion); err != nil {
		return "", err
	}

	if err := e.writeTopCustomersSheet(f, snapshot.TopCustomers); err != nil {
		return "", err
	}

	if err := e.writeMonthlyTrendSheet(f, snapshot.MonthlyTrend); err != nil {
		return "", err
	}

	if err := f.SaveAs(path); err != nil {
		return "", errors.Wrap(err, "erro ao salvar a planilha")
	}

	logrus.WithField("path", path).Info("Planilha de KPIs exportada com sucesso")

	return path, nil
}

func (e *spreadsheetExporter) writeSummarySheet(f *excelize.File, snapshot *domain.MetricSnapshot) error {
	const sheet = "Resumo"

	// A primeira aba do arquivo vem nomeada como "Sheet1"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return errors.Wrap(err, "erro ao renomear a aba de resumo")
	}

	rows := [][2]any{
		{"Indicador", "Valor"},
		{"Gerado em", snapshot.GeneratedAt.Format("02/01/2006 15:04")},
		{"Receita Total", snapshot.TotalRevenue},
		{"Lucro Total", snapshot.TotalProfit},
		{"Margem de Lucro (%)", snapshot.ProfitMarginPct},
		{"CAC", snapshot.CustomerAcquisitionCost},
	}

	if snapshot.CustomerStatus != nil {
		rows = append(rows,
			[2]any{"Ano Anterior", snapshot.CustomerStatus.PriorYear},
			[2]any{"Ano Mais Recente", snapshot.CustomerStatus.LatestYear},
			[2]any{"Clientes Ativos", snapshot.CustomerStatus.ActiveCustomers},
			[2]any{"Clientes Perdidos", snapshot.CustomerStatus.ChurnedCustomers},
			[2]any{"Taxa de Retenção (%)", snapshot.CustomerStatus.RetentionPct},
		)
	}

	if snapshot.Highlights != nil {
		rows = append(rows, [2]any{"Clientes Distintos", snapshot.Highlights.DistinctCustomers})
	}

	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheet, cell, &[]any{row[0], row[1]}); err != nil {
			return errors.Wrap(err, "erro ao escrever a aba de resumo")
		}
	}

	return nil
}

func (e *spreadsheetExporter) writeGroupSheet(f *excelize.File, sheet string, groups []*domain.GroupRevenue) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return errors.Wrapf(err, "erro ao criar a aba %q", sheet)
	}

	if err := f.SetSheetRow(sheet, "A1", &[]any{"Nome", "Receita", "Lucro"}); err != nil {
		return errors.Wrapf(err, "erro ao escrever o cabeçalho da aba %q", sheet)
	}

	for i, group := range groups {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &[]any{group.Name, group.Revenue, group.Profit}); err != nil {
			return errors.Wrapf(err, "erro ao escrever a aba %q", sheet)
		}
	}

	return nil
}

func (e *spreadsheetExporter) writeTopCustomersSheet(f *excelize.File, customers []*domain.CustomerRevenue) error {
	const sheet = "Top Clientes"

	if _, err := f.NewSheet(sheet); err != nil {
		return errors.Wrap(err, "erro ao criar a aba de top clientes")
	}

	if err := f.SetSheetRow(sheet, "A1", &[]any{"Posição", "Cliente", "Receita", "Pedidos"}); err != nil {
		return errors.Wrap(err, "erro ao escrever o cabeçalho de top clientes")
	}

	for i, customer := range customers {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &[]any{i + 1, customer.Name, customer.Revenue, customer.Orders}); err != nil {
			return errors.Wrap(err, "erro ao escrever a aba de top clientes")
		}
	}

	return nil
}

func (e *spreadsheetExporter) writeMonthlyTrendSheet(f *excelize.File, trend []*domain.MonthlyRevenue) error {
	const sheet = "Tendência Mensal"

	if _, err := f.NewSheet(sheet); err != nil {
		return errors.Wrap(err, "erro ao criar a aba de tendência mensal")
	}

	if err := f.SetSheetRow(sheet, "A1", &[]any{"Mês", "Receita", "Lucro"}); err != nil {
		return errors.Wrap(err, "erro ao escrever o cabeçalho de tendência mensal")
	}

	for i, month := range trend {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &[]any{month.Month, month.Revenue, month.Profit}); err != nil {
			return errors.Wrap(err, "erro ao escrever a aba de tendência mensal")
		}
	}

	return nil
}
