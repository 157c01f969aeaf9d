package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/five82/sheetfeed/internal/export"
	"github.com/five82/sheetfeed/pkg/sheetfeed"
)

func (c *cli) newInfoCmd() *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "info KEY",
		Short: "Show a spreadsheet and its worksheets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet, err := c.spreadsheet(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(c.stdout, sheet)
			}
			return printSpreadsheet(c.stdout, sheet)
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON")
	return cmd
}

func (c *cli) newRowsCmd() *cobra.Command {
	var (
		opts    sheetfeed.RowOptions
		jsonOut bool
	)
	cmd := &cobra.Command{
		Use:   "rows KEY WORKSHEET",
		Short: "List the rows of a worksheet",
		Long:  "List the rows of a worksheet. WORKSHEET is a worksheet id or title.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.worksheet(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			rows, err := ws.Rows(cmd.Context(), &opts)
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(c.stdout, rows)
			}
			return printRows(c.stdout, rows)
		},
	}
	cmd.Flags().StringVar(&opts.SQ, "sq", "", "Structured query, e.g. 'age > 30'")
	cmd.Flags().StringVar(&opts.OrderBy, "orderby", "", "Sort column, e.g. column:age")
	cmd.Flags().BoolVar(&opts.Reverse, "reverse", false, "Reverse the sort order")
	cmd.Flags().IntVar(&opts.Start, "start", 0, "1-based index of the first row")
	cmd.Flags().IntVar(&opts.Num, "num", 0, "Maximum number of rows")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON")
	return cmd
}

func (c *cli) newCellsCmd() *cobra.Command {
	var (
		opts    sheetfeed.CellOptions
		jsonOut bool
	)
	cmd := &cobra.Command{
		Use:   "cells KEY WORKSHEET",
		Short: "List the cells of a worksheet",
		Long:  "List the cells of a worksheet. WORKSHEET is a worksheet id or title.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.worksheet(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			cells, err := ws.Cells(cmd.Context(), &opts)
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(c.stdout, cells.List())
			}
			return printCells(c.stdout, cells)
		},
	}
	cmd.Flags().StringVar(&opts.Range, "range", "", "Cell range, e.g. A1:C10 or R1C1:R4C2")
	cmd.Flags().IntVar(&opts.MinRow, "min-row", 0, "First row")
	cmd.Flags().IntVar(&opts.MaxRow, "max-row", 0, "Last row")
	cmd.Flags().IntVar(&opts.MinCol, "min-col", 0, "First column")
	cmd.Flags().IntVar(&opts.MaxCol, "max-col", 0, "Last column")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output JSON")
	return cmd
}

func (c *cli) newExportCmd() *cobra.Command {
	var (
		out  string
		rows bool
	)
	cmd := &cobra.Command{
		Use:   "export KEY WORKSHEET",
		Short: "Save a worksheet to an .xlsx workbook",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.worksheet(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			if rows {
				list, err := ws.Rows(cmd.Context(), nil)
				if err != nil {
					return err
				}
				if err := export.SaveRows(out, ws.Title, list); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(c.stdout, "wrote %d rows to %s\n", len(list), out)
				return nil
			}

			cells, err := ws.Cells(cmd.Context(), nil)
			if err != nil {
				return err
			}
			if err := export.SaveCells(out, ws.Title, cells); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(c.stdout, "wrote %d cells to %s\n", cells.Len(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output .xlsx path")
	cmd.Flags().BoolVar(&rows, "rows", false, "Export the list feed with a header row instead of cells")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func (c *cli) newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [KEY]",
		Short: "Browse a spreadsheet in the terminal",
		Long:  "Browse a spreadsheet in the terminal. Without KEY the last opened spreadsheet is used.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := ""
			if len(args) == 1 {
				key = args[0]
			}
			return c.env.Browse(cmd.Context(), key)
		},
	}
}

func (c *cli) newRecentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "List spreadsheets opened recently in the browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			recent := c.env.Prefs.Recent
			if len(recent) == 0 {
				_, err := fmt.Fprintln(c.stdout, "no recent spreadsheets")
				return err
			}
			for _, key := range recent {
				_, _ = fmt.Fprintln(c.stdout, key)
			}
			return nil
		},
	}
}

func (c *cli) spreadsheet(ctx context.Context, key string) (*sheetfeed.Spreadsheet, error) {
	return c.env.Client.GetSpreadsheet(ctx, &sheetfeed.SpreadsheetOptions{Key: key, Credential: c.env.Credential})
}

// worksheet resolves a worksheet id or title through the worksheets feed.
func (c *cli) worksheet(ctx context.Context, key, idOrTitle string) (*sheetfeed.Worksheet, error) {
	sheet, err := c.spreadsheet(ctx, key)
	if err != nil {
		return nil, err
	}
	ws, ok := sheet.Worksheet(idOrTitle)
	if !ok {
		return nil, fmt.Errorf("worksheet %q not found in %q", idOrTitle, sheet.Title)
	}
	return ws, nil
}

func cellName(cell sheetfeed.Cell) string {
	name, err := excelize.CoordinatesToCellName(cell.Col, cell.Row)
	if err != nil {
		return "R" + strconv.Itoa(cell.Row) + "C" + strconv.Itoa(cell.Col)
	}
	return name
}
