// Package export grava relatórios em planilha (xlsx) e CSV.
package export

import (
	"fmt"
	"io"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeCSV  = "text/csv; charset=utf-8"
)

// Sheet é uma aba: cabeçalho na linha 1, dados a partir da 2.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]any
}

// XLSX grava as abas na ordem recebida; a primeira fica ativa.
func XLSX(w io.Writer, sheets ...Sheet) error {
	if len(sheets) == 0 {
		return errors.New("export: no sheets")
	}

	file := excelize.NewFile()

	for _, sh := range sheets {
		file.NewSheet(sh.Name)

		for col, h := range sh.Headers {
			file.SetCellValue(sh.Name, cell(col, 1), h)
		}
		for r, row := range sh.Rows {
			for col, v := range row {
				file.SetCellValue(sh.Name, cell(col, r+2), v)
			}
		}
	}

	// DeleteSheet mexe na aba ativa; por isso ativa depois.
	if !hasSheet(sheets, "Sheet1") {
		file.DeleteSheet("Sheet1")
	}
	file.SetActiveSheet(file.GetSheetIndex(sheets[0].Name))

	return errors.Wrap(file.Write(w), "export: write xlsx")
}

func cell(col, row int) string {
	return fmt.Sprintf("%s%d", excelize.ToAlphaString(col), row)
}

func hasSheet(sheets []Sheet, name string) bool {
	for _, sh := range sheets {
		if sh.Name == name {
			return true
		}
	}
	return false
}

// CSV serializa um slice de structs com tags `csv`.
func CSV(w io.Writer, rows any) error {
	return errors.Wrap(gocsv.Marshal(rows, w), "export: write csv")
}
