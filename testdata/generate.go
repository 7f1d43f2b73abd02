package main

import (
	"encoding/csv"
	"log"
	"os"

	"github.com/segmentio/parquet-go"
	"github.com/xuri/excelize/v2"
)

type Account struct {
	ID     int64   `parquet:"id"`
	Name   string  `parquet:"name"`
	Age    int32   `parquet:"age"`
	Active bool    `parquet:"active"`
	Score  float64 `parquet:"score"`
}

func main() {
	writeWorkbook("orders.xlsx")
	writeCSV("people.csv")
	writeParquet("accounts.parquet")
}

func writeWorkbook(path string) {
	f := excelize.NewFile()
	defer f.Close()

	sheets := map[string][][]interface{}{
		"Sheet1": {
			{"Order", "Customer", "Total", "Shipped"},
			{1001, "alice", 120.5, true},
			{1002, "bob", 19.99, false},
			{1003, "charlie", 74.25, true},
			{1004, "diana", 230.0, true},
		},
		// Sections has a title row and repeats the header keyword, for
		// trying out --header-keyword.
		"Sections": {
			{"Quarterly export"},
			{},
			{"Item", "Count"},
			{"widget", 12},
			{"gadget", 7},
			{"Item", "Count"},
			{"sprocket", 3},
		},
	}

	for name, rows := range sheets {
		if name != "Sheet1" {
			if _, err := f.NewSheet(name); err != nil {
				log.Fatal(err)
			}
		}
		for r, row := range rows {
			for c, value := range row {
				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					log.Fatal(err)
				}
				if err := f.SetCellValue(name, cell, value); err != nil {
					log.Fatal(err)
				}
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		log.Fatal(err)
	}
	log.Printf("Generated %s", path)
}

func writeCSV(path string) {
	file, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	records := [][]string{
		{"name", "age", "city"},
		{"alice", "30", "berlin"},
		{"bob", "25", "oslo"},
		{"charlie", "35", "lisbon"},
	}
	if err := csv.NewWriter(file).WriteAll(records); err != nil {
		log.Fatal(err)
	}
	log.Printf("Generated %s", path)
}

func writeParquet(path string) {
	accounts := []Account{
		{ID: 1, Name: "alice", Age: 30, Active: true, Score: 95.5},
		{ID: 2, Name: "bob", Age: 25, Active: false, Score: 82.3},
		{ID: 3, Name: "charlie", Age: 35, Active: true, Score: 88.7},
		{ID: 4, Name: "diana", Age: 28, Active: true, Score: 91.2},
		{ID: 5, Name: "eve", Age: 42, Active: false, Score: 76.8},
	}

	file, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Account](file)
	defer writer.Close()

	if _, err := writer.Write(accounts); err != nil {
		log.Fatal(err)
	}
	log.Printf("Generated %s with %d accounts", path, len(accounts))
}
