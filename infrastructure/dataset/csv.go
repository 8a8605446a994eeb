package dataset

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/salesmetrics/kpi-reporting-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// CSVSource carrega linhas de um arquivo delimitado com cabeçalho.
// Colunas desconhecidas são ignoradas; os nomes do cabeçalho são comparados
// sem espaços e sem distinção de caixa.
type CSVSource struct {
	path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

func (s *CSVSource) Load(ctx context.Context) ([]*domain.TransactionRow, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, errors.Wrapf(ErrSourceUnavailable, "erro ao abrir arquivo %s: %v", s.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // linhas curtas não abortam a carga

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrapf(ErrSourceUnavailable, "erro ao ler cabeçalho de %s: %v", s.path, err)
	}

	columns := indexColumns(header)

	rows := make([]*domain.TransactionRow, 0)
	skipped := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Linha malformada no nível do CSV: pulada, não fatal
			skipped++
			continue
		}

		rows = append(rows, parseRecord(record, columns))
	}

	if skipped > 0 {
		logrus.WithFields(logrus.Fields{
			"path":    s.path,
			"skipped": skipped,
			"loaded":  len(rows),
		}).Warn("Linhas malformadas ignoradas durante a carga do CSV")
	}

	return rows, nil
}

// indexColumns mapeia nome de coluna (normalizado) para índice no registro
func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToUpper(strings.TrimSpace(name))] = i
	}
	return columns
}

func parseRecord(record []string, columns map[string]int) *domain.TransactionRow {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	cleanString := func(name string) string {
		s, _ := cleanValue(field(name))
		return s
	}

	return &domain.TransactionRow{
		OrderNumber:  toInt64(field(colOrderNumber)),
		OrderDate:    cleanString(colOrderDate),
		ProductLine:  cleanString(colProductLine),
		Country:      cleanString(colCountry),
		CustomerName: cleanString(colCustomerName),
		Quantity:     toInt(field(colQuantity)),
		UnitPrice:    toFloat(field(colPriceEach)),
		Sales:        toFloat(field(colSales)),
		Year:         toInt(field(colYear)),
		Month:        toInt(field(colMonth)),
	}
}
