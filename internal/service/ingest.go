package service

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/jask/drawboard/internal/draw"
)

// IngestService turns spreadsheet rows into a fresh board with every team in
// its seeding pot.
type IngestService struct {
	Layout Layout
	Log    *zap.Logger
}

// IngestResult summarises one import.
type IngestResult struct {
	Imported int
	Skipped  int
	PerPot   map[draw.PotID]int
	Errors   []error
}

// Summary is the one-line status shown after an import.
func (r IngestResult) Summary() string {
	s := fmt.Sprintf("loaded %d teams (pot 1: %d, pot 2: %d, pot 3: %d)",
		r.Imported, r.PerPot[draw.Pot1], r.PerPot[draw.Pot2], r.PerPot[draw.Pot3])
	if r.Skipped > 0 {
		s += fmt.Sprintf(", skipped %d rows", r.Skipped)
	}
	return s
}

func (s *IngestService) log() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

func (s *IngestService) layout() Layout {
	if s.Layout.Name == "" {
		return DefaultLayout
	}
	return s.Layout
}

// ImportRows builds a board from rows. Rows are skipped when they are too
// short for the layout, have a blank name, or have a number that does not
// parse. Each team gets id "<pot>-<position in pot>". If nothing survives,
// ErrEmptyImport is returned with the (still useful) result.
func (s *IngestService) ImportRows(rows [][]string) (draw.Board, IngestResult, error) {
	lay := s.layout()
	b := draw.NewBoard()
	res := IngestResult{PerPot: make(map[draw.PotID]int, len(draw.Pots))}
	for i, row := range rows {
		if len(row) < lay.width() {
			res.Skipped++
			continue
		}
		name := strings.TrimSpace(row[lay.NameCol])
		if name == "" {
			res.Skipped++
			continue
		}
		raw := row[lay.NumberCol]
		n, err := parseLeadingInt(raw)
		if err != nil {
			perr := &ParseError{Row: i + 1, Value: raw, Err: err}
			s.log().Warn("skipping row", zap.Int("row", i+1), zap.String("value", raw), zap.Error(err))
			res.Errors = append(res.Errors, perr)
			res.Skipped++
			continue
		}
		pot := draw.PotForNumber(n)
		b.Pots[pot] = append(b.Pots[pot], draw.Entry{
			ID:    fmt.Sprintf("%s-%d", pot, len(b.Pots[pot])),
			Name:  name,
			PotID: pot,
		})
		res.PerPot[pot]++
		res.Imported++
	}
	if res.Imported == 0 {
		return draw.Board{}, res, ErrEmptyImport
	}
	s.log().Info("import parsed",
		zap.Int("imported", res.Imported),
		zap.Int("skipped", res.Skipped),
		zap.Int("pot1", res.PerPot[draw.Pot1]),
		zap.Int("pot2", res.PerPot[draw.Pot2]),
		zap.Int("pot3", res.PerPot[draw.Pot3]),
	)
	return b, res, nil
}

// ImportFile reads path and imports its rows. Lines the CSV reader cannot
// decode are counted as skipped.
func (s *IngestService) ImportFile(ctx context.Context, path string) (draw.Board, IngestResult, error) {
	rows, lineErrs, err := s.ReadRows(ctx, path)
	if err != nil {
		return draw.Board{}, IngestResult{}, err
	}
	b, res, err := s.ImportRows(rows)
	res.Skipped += len(lineErrs)
	res.Errors = append(lineErrs, res.Errors...)
	if err != nil {
		return draw.Board{}, res, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return b, res, nil
}

// ReadRows returns the cells of path as rows of strings. CSV/TXT go through
// encoding/csv with the layout's delimiter; XLSX uses the layout's sheet or
// the first one. The first row is data, not a header.
func (s *IngestService) ReadRows(ctx context.Context, path string) ([][]string, []error, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt", ".tsv":
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		rows, lineErrs := ReadCSV(f, s.layout())
		return rows, lineErrs, nil
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		rows, err := readSheet(f, s.layout().Sheet)
		return rows, nil, err
	case ".xls":
		return nil, nil, fmt.Errorf("%s: legacy .xls workbooks are not supported; save as .xlsx", filepath.Base(path))
	default:
		return nil, nil, fmt.Errorf("%s: unsupported file type", filepath.Base(path))
	}
}

// ReadCSV reads every record from r. Records the reader rejects are
// reported per line and skipped.
func ReadCSV(r io.Reader, lay Layout) ([][]string, []error) {
	csvr := csv.NewReader(bufio.NewReader(r))
	csvr.Comma = lay.delimiter()
	csvr.TrimLeadingSpace = true
	csvr.FieldsPerRecord = -1
	csvr.LazyQuotes = true
	var (
		rows [][]string
		errs []error
	)
	for {
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				errs = append(errs, fmt.Errorf("line %d: %w", perr.Line, err))
				continue
			}
			errs = append(errs, err)
			break
		}
		rows = append(rows, rec)
	}
	return rows, errs
}

// ReadXLSX reads the named sheet (first sheet when empty) from r.
func ReadXLSX(r io.Reader, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return readSheet(f, sheet)
}

func readSheet(f *excelize.File, sheet string) ([][]string, error) {
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	return rows, nil
}

// parseLeadingInt reads an optional sign and the leading decimal digits of
// s, ignoring anything after them: "12" and "12.0" are 12, "7 (host)" is 7.
// Values too large for an int saturate, which still lands them in pot1.
func parseLeadingInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			if s[0] == '-' {
				return math.MinInt, nil
			}
			return math.MaxInt, nil
		}
		return 0, err
	}
	return n, nil
}
