// Package teamsheet generates seeded team sheets in the shape the importer
// reads: one row per team, seeding number then name.
package teamsheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"

	"github.com/xuri/excelize/v2"
)

var (
	cities = []string{
		"Harbour", "Northgate", "Riverside", "Ashford", "Kingsbury", "Millbrook",
		"Westfield", "Eastbay", "Stonebridge", "Highcliff", "Fairhaven", "Redmoor",
		"Oakridge", "Lakeside", "Brightwater", "Elmstead", "Granville", "Seaview",
		"Thornton", "Ravensworth",
	}
	suffixes = []string{"FC", "United", "Rovers", "Athletic", "City", "Wanderers", "Albion", "Town"}
)

// Generate returns n rows numbered 1..n with distinct club names. The same
// seed always gives the same sheet.
func Generate(n int, seed uint64) [][]string {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	used := make(map[string]bool, n)
	rows := make([][]string, 0, n)
	for i := 1; i <= n; i++ {
		var name string
		for attempt := 0; ; attempt++ {
			name = cities[r.IntN(len(cities))] + " " + suffixes[r.IntN(len(suffixes))]
			if attempt > 8*len(cities) {
				name = fmt.Sprintf("%s %d", name, i)
			}
			if !used[name] {
				break
			}
		}
		used[name] = true
		rows = append(rows, []string{strconv.Itoa(i), name})
	}
	return rows
}

// WriteCSV writes rows as comma-separated values.
func WriteCSV(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// WriteXLSX writes rows to the first sheet of a new workbook at path. Seeding
// numbers are stored as numeric cells.
func WriteXLSX(path string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, v := range row {
			if n, err := strconv.Atoi(v); err == nil {
				cells[j] = n
				continue
			}
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
