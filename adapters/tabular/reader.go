// Package tabular reads CSV and Excel files into survey tables. It is the
// ingestion boundary: everything past here works on in-memory tables.
package tabular

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Kumungchi/vyzkumdata/domain/survey"
	"github.com/xuri/excelize/v2"
)

// Reader handles reading Excel and CSV files.
type Reader struct {
	filePath  string
	fileType  string // "xlsx" or "csv"
	separator rune   // CSV field separator; 0 means sniff from the header
}

// NewReader creates a reader for the given file, picking the format from
// the extension.
func NewReader(filePath string) *Reader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "csv"
	if ext == ".xlsx" || ext == ".xls" {
		fileType = "xlsx"
	}
	return &Reader{filePath: filePath, fileType: fileType}
}

// WithSeparator fixes the CSV field separator instead of sniffing it.
// Survey exports use ";" while the reference tables use ",".
func (r *Reader) WithSeparator(sep rune) *Reader {
	r.separator = sep
	return r
}

// Read loads the file into a table.
func (r *Reader) Read() (*survey.Table, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	switch r.fileType {
	case "csv":
		return r.readCSV()
	case "xlsx":
		return r.readExcel()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
}

func (r *Reader) readCSV() (*survey.Table, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	sep := r.separator
	if sep == 0 {
		sep, err = sniffSeparator(r.filePath)
		if err != nil {
			return nil, err
		}
	}

	reader := csv.NewReader(file)
	reader.Comma = sep
	reader.FieldsPerRecord = -1 // tolerate ragged rows; NewTable pads them

	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	log.Printf("[Reader] CSV file %s read in %.2fms (%d rows)",
		filepath.Base(r.filePath), float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	if len(rows) < 2 {
		return nil, fmt.Errorf("CSV file must have at least a header row and one data row")
	}
	return buildTable(rows), nil
}

func (r *Reader) readExcel() (*survey.Table, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	log.Printf("[Reader] Excel file %s read in %.2fms (%d rows)",
		filepath.Base(r.filePath), float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	if len(rows) < 2 {
		return nil, fmt.Errorf("Excel file must have at least a header row and one data row")
	}
	return buildTable(rows), nil
}

// buildTable converts raw string rows into a survey table, trimming
// whitespace from headers and cells.
func buildTable(rows [][]string) *survey.Table {
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	data := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = strings.TrimSpace(cell)
		}
		data = append(data, cells)
	}
	return survey.NewTable(headers, data)
}

// sniffSeparator picks ";" or "," by counting occurrences in the header
// line. Ties go to the comma.
func sniffSeparator(filePath string) (rune, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to read CSV header: %w", err)
	}
	header := string(raw)
	if idx := strings.IndexByte(header, '\n'); idx >= 0 {
		header = header[:idx]
	}
	if strings.Count(header, ";") > strings.Count(header, ",") {
		return ';', nil
	}
	return ',', nil
}
