package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Dataset    Dataset    `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	Report     Report     `mapstructure:",squash"`
	SMTP       SMTP       `mapstructure:",squash"`
	ReportSync ReportSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Dataset define de onde as linhas de venda são carregadas.
// Kind aceita "csv", "postgres" ou "sqlite".
type Dataset struct {
	Kind    string `mapstructure:"dataset_kind"`
	CSVPath string `mapstructure:"dataset_csv_path"`
	Table   string `mapstructure:"dataset_table"`
}

type Database struct {
	DSN        string `mapstructure:"-"`
	Driver     string `mapstructure:"database_driver"`
	Password   string `mapstructure:"database_password"`
	URL        string `mapstructure:"database_url"`
	User       string `mapstructure:"database_user"`
	SQLitePath string `mapstructure:"database_sqlite_path"`
}

// Report configura a saída dos relatórios gerados (PDF e planilha)
type Report struct {
	OutputDir    string `mapstructure:"report_output_dir"`
	DashboardURL string `mapstructure:"report_dashboard_url"`
}

// SMTP configura o transporte de e-mail do relatório
type SMTP struct {
	Host       string   `mapstructure:"smtp_host"`
	Port       int      `mapstructure:"smtp_port"`
	Sender     string   `mapstructure:"smtp_sender"`
	Password   string   `mapstructure:"smtp_password"`
	Recipients []string `mapstructure:"smtp_recipients"`
}

type ReportSync struct {
	CronSchedule string `mapstructure:"report_sync_cron"`
	Enabled      bool   `mapstructure:"report_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATASET_KIND", "csv")
	viper.SetDefault("DATASET_CSV_PATH", "data/sales_data_sample.csv")
	viper.SetDefault("DATASET_TABLE", "sales")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SQLITE_PATH", "data/raw/sales.db")

	viper.SetDefault("REPORT_OUTPUT_DIR", "data/processed")
	viper.SetDefault("REPORT_DASHBOARD_URL", "http://localhost:3000")

	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_SENDER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_RECIPIENTS", "")

	// Relatório diário às 8h da manhã, desabilitado por padrão
	viper.SetDefault("REPORT_SYNC_CRON", "0 8 * * *")
	viper.SetDefault("REPORT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	// Destinatários vazios viram lista vazia, não [""], para simplificar a
	// validação do compositor de e-mail
	recipients := make([]string, 0, len(config.SMTP.Recipients))
	for _, r := range config.SMTP.Recipients {
		if r != "" {
			recipients = append(recipients, r)
		}
	}
	config.SMTP.Recipients = recipients

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
