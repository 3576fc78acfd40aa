package main

import (
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

type pairReport struct {
	results []pairResult
}

func (r *pairReport) add(result pairResult) {
	r.results = append(r.results, result)
}

func (r *pairReport) renderCheckTable(colorize bool) string {
	rows := make([][]string, 0, len(r.results))
	for _, result := range r.results {
		status := "not paired"
		identifier := "-"
		if result.paired {
			status = "paired"
			identifier = result.identifier
		}
		if colorize {
			if result.paired {
				status = ansiGreen + status + ansiReset
			} else {
				status = ansiRed + status + ansiReset
			}
		}
		rows = append(rows, []string{result.pair.Image, result.pair.Video, status, identifier})
	}
	return renderTable([]string{"Image", "Video", "Status", "Content ID"}, rows)
}

func renderTable(headers []string, rows [][]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	configs := make([]table.ColumnConfig, len(headers))
	for i, name := range headers {
		header[i] = name
		configs[i] = table.ColumnConfig{Number: i + 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		cells := make(table.Row, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		tw.AppendRow(cells)
	}
	return tw.Render()
}

func colorizeOutput() bool {
	return shouldColorize(os.Stdout)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
