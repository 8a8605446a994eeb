package main

import (
	"context"
	"time"

	"github.com/salesmetrics/kpi-reporting-api/infrastructure/database/sqldb"
	"github.com/salesmetrics/kpi-reporting-api/infrastructure/dataset"
	"github.com/salesmetrics/kpi-reporting-api/internal/api"
	"github.com/salesmetrics/kpi-reporting-api/internal/config"
	"github.com/salesmetrics/kpi-reporting-api/internal/scheduler"
	"github.com/salesmetrics/kpi-reporting-api/internal/usecases/metricizing"
	"github.com/salesmetrics/kpi-reporting-api/internal/usecases/reporting"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source, closeSource := newRowSource(ctx, cfg)
	defer closeSource()

	metricService := metricizing.NewService(source)

	pdfGenerator := reporting.NewPDFGenerator(cfg.Report)
	spreadsheetExporter := reporting.NewSpreadsheetExporter(cfg.Report)
	emailReporter := reporting.NewEmailReporter(metricService, pdfGenerator, cfg)

	// Inicializa o agendador de envio periódico de relatórios
	reportSyncService := scheduler.NewReportSyncService(emailReporter, cfg)

	if err := reportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de envio de relatórios")
	} else {
		logrus.Info("Agendador de envio de relatórios iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		metricService,
		pdfGenerator,
		spreadsheetExporter,
		reportSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// newRowSource escolhe a fonte de linhas conforme a configuração: arquivo
// CSV ou tabela relacional (Postgres/SQLite). Retorna também a função de
// liberação da fonte.
func newRowSource(ctx context.Context, cfg *config.Config) (dataset.RowSource, func()) {
	switch cfg.Dataset.Kind {
	case "postgres", "sqlite":
		conn := dbconn(ctx, cfg)
		return dataset.NewSQLSource(conn, cfg.Dataset.Table), func() {
			if err := conn.Close(); err != nil {
				logrus.WithError(err).Warn("Erro ao fechar conexão com o banco de dados")
			}
		}
	case "csv":
		return dataset.NewCSVSource(cfg.Dataset.CSVPath), func() {}
	default:
		logrus.Warnf("Tipo de fonte desconhecido: %s, usando CSV", cfg.Dataset.Kind)
		return dataset.NewCSVSource(cfg.Dataset.CSVPath), func() {}
	}
}

// dbconn cria uma conexão com o banco de dados
func dbconn(ctx context.Context, cfg *config.Config) *sqldb.Connection {
	dbConfig := cfg.Database
	if cfg.Dataset.Kind == "sqlite" {
		dbConfig.Driver = "sqlite"
	}

	conn, err := sqldb.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de dados")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com o banco de dados")
	}

	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")
	return conn
}
