package history

import (
	"bytes"
	"encoding/csv"
	"strconv"

	log "github.com/sirupsen/logrus"
)

type Renderer interface {
	Render(summary Summary) (string, error)
}

// CsvRendererImpl writes one row per logged day followed by the Total and Average rows.
// Columns are the groups ordered by name.
type CsvRendererImpl struct {
}

func NewCsvRenderer() *CsvRendererImpl {
	return &CsvRendererImpl{}
}

func (t *CsvRendererImpl) Render(summary Summary) (string, error) {
	header := make([]string, 0, len(summary.Groups)+1)
	header = append(header, "Date")
	for _, g := range summary.Groups {
		header = append(header, g.Name)
	}

	data := make([][]string, 0, len(summary.Days)+3)
	data = append(data, header)
	for _, day := range summary.Days {
		row := make([]string, 0, len(summary.Groups)+1)
		row = append(row, day.Date)
		for _, g := range summary.Groups {
			row = append(row, hoursToString(day.Hours[g.Name]))
		}
		data = append(data, row)
	}

	total := make([]string, 0, len(summary.Groups)+1)
	total = append(total, "Total")
	average := make([]string, 0, len(summary.Groups)+1)
	average = append(average, "Average")
	for _, g := range summary.Groups {
		total = append(total, hoursToString(g.Total))
		average = append(average, hoursToString(g.Average))
	}
	data = append(data, total, average)

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		err := writer.Write(row)
		if err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}

func hoursToString(hours float64) string {
	return strconv.FormatFloat(hours, 'f', 2, 64)
}
