package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/salesmetrics/kpi-reporting-api/infrastructure/database/sqldb"
	"github.com/salesmetrics/kpi-reporting-api/infrastructure/dataset"
	"github.com/salesmetrics/kpi-reporting-api/internal/config"
	"github.com/salesmetrics/kpi-reporting-api/internal/domain"
	"github.com/salesmetrics/kpi-reporting-api/internal/usecases/metricizing"
	"github.com/salesmetrics/kpi-reporting-api/internal/usecases/reporting"
	"github.com/salesmetrics/kpi-reporting-api/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var csvPath string

func main() {
	// O CLI só loga avisos e erros, a saída útil vai para o stdout
	logrus.SetLevel(logrus.WarnLevel)

	root := &cobra.Command{
		Use:   "kpicli",
		Short: "Relatórios de KPIs de vendas pela linha de comando",
	}

	root.PersistentFlags().StringVar(&csvPath, "csv", "", "caminho do arquivo CSV (sobrepõe a configuração)")

	root.AddCommand(
		summaryCommand(),
		snapshotCommand(),
		pdfCommand(),
		exportCommand(),
		emailCommand(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func summaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Imprime os KPIs principais no terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			snapshot, _, cleanup, err := computeSnapshot(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			printSummary(cmd.OutOrStdout(), snapshot)
			return nil
		},
	}
}

func snapshotCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Imprime o snapshot completo de métricas em JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			snapshot, _, cleanup, err := computeSnapshot(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(snapshot))
			return nil
		},
	}
}

func pdfCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pdf",
		Short: "Gera o relatório de KPIs em PDF",
		RunE: func(cmd *cobra.Command, _ []string) error {
			snapshot, cfg, cleanup, err := computeSnapshot(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			path, err := reporting.NewPDFGenerator(cfg.Report).Generate(snapshot)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Relatório gerado em:", path)
			return nil
		},
	}
}

func exportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Exporta as métricas para uma planilha xlsx",
		RunE: func(cmd *cobra.Command, _ []string) error {
			snapshot, cfg, cleanup, err := computeSnapshot(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			path, err := reporting.NewSpreadsheetExporter(cfg.Report).Export(snapshot)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Planilha exportada em:", path)
			return nil
		},
	}
}

func emailCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "email",
		Short: "Calcula as métricas e envia o relatório por e-mail",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}

			source, cleanup, err := newRowSource(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			engine := metricizing.NewService(source)
			pdfGenerator := reporting.NewPDFGenerator(cfg.Report)
			reporter := reporting.NewEmailReporter(engine, pdfGenerator, cfg)

			if err := reporter.SendReport(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Relatório enviado para", len(cfg.SMTP.Recipients), "destinatário(s)")
			return nil
		},
	}
}

// computeSnapshot monta a fonte de linhas configurada e calcula o snapshot
// completo de métricas
func computeSnapshot(ctx context.Context) (*domain.MetricSnapshot, *config.Config, func(), error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	source, cleanup, err := newRowSource(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	snapshot, err := metricizing.NewService(source).ComputeSnapshot(ctx)
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}

	return snapshot, cfg, cleanup, nil
}

func newRowSource(ctx context.Context, cfg *config.Config) (dataset.RowSource, func(), error) {
	if csvPath != "" {
		return dataset.NewCSVSource(csvPath), func() {}, nil
	}

	switch cfg.Dataset.Kind {
	case "postgres", "sqlite":
		dbConfig := cfg.Database
		if cfg.Dataset.Kind == "sqlite" {
			dbConfig.Driver = "sqlite"
		}

		conn, err := sqldb.NewConnection(ctx, dbConfig)
		if err != nil {
			return nil, nil, err
		}

		return dataset.NewSQLSource(conn, cfg.Dataset.Table), func() {
			if cerr := conn.Close(); cerr != nil {
				logrus.WithError(cerr).Warn("Erro ao fechar conexão com o banco de dados")
			}
		}, nil
	default:
		return dataset.NewCSVSource(cfg.Dataset.CSVPath), func() {}, nil
	}
}

// printSummary escreve os KPIs principais em colunas alinhadas
func printSummary(out io.Writer, snapshot *domain.MetricSnapshot) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "Receita Total\t$ %.2f\n", snapshot.TotalRevenue)
	fmt.Fprintf(w, "Lucro Total\t$ %.2f\n", snapshot.TotalProfit)
	fmt.Fprintf(w, "Margem de Lucro\t%.2f%%\n", snapshot.ProfitMarginPct)
	fmt.Fprintf(w, "CAC\t$ %.2f\n", snapshot.CustomerAcquisitionCost)

	if snapshot.CustomerStatus != nil {
		fmt.Fprintf(w, "Retenção (%d → %d)\t%.1f%%\n",
			snapshot.CustomerStatus.PriorYear,
			snapshot.CustomerStatus.LatestYear,
			snapshot.CustomerStatus.RetentionPct,
		)
	}

	if snapshot.Highlights != nil {
		if snapshot.Highlights.TopProductLine != "" {
			fmt.Fprintf(w, "Linha de Produto Destaque\t%s\n", snapshot.Highlights.TopProductLine)
		}
		if snapshot.Highlights.TopCountry != "" {
			fmt.Fprintf(w, "País Destaque\t%s\n", snapshot.Highlights.TopCountry)
		}
		fmt.Fprintf(w, "Clientes Distintos\t%d\n", snapshot.Highlights.DistinctCustomers)
	}

	w.Flush()
}
