/*
main.go - One-shot attendance analysis from the command line

PURPOSE:
  Runs the full engine against a single exported timesheet and prints a
  per-employee table, optionally writing the summary CSV. Useful for
  spot checks without starting the server.

USAGE:
  analyze -file "Monthly Raw Timesheet - November.csv"
  analyze -file timesheet.xlsx -late 10:30 -minhours 8 -o summary.csv
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/warp/attendance-engine/export"
	"github.com/warp/attendance-engine/factory"
	"github.com/warp/attendance-engine/ingest"
	"github.com/warp/attendance-engine/timesheet"
)

func main() {
	path := flag.String("file", "", "timesheet file (.csv, .xlsx)")
	late := flag.String("late", "", "late mark after (HH:MM), default 11:00")
	early := flag.String("early", "", "early leave before (HH:MM), default 19:00")
	minHours := flag.String("minhours", "", "minimum hours for a full day, default 7")
	grace := flag.String("grace", "", "grace late days before a half-day cut, default 3")
	outPath := flag.String("o", "", "write summary CSV to this path")
	flag.Parse()

	if *path == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := factory.ParseRuleConfig(factory.RuleSettings{
		LateMarkTime:    *late,
		EarlyLeaveTime:  *early,
		MinFullDayHours: *minHours,
		GraceLateDays:   *grace,
	})
	if err != nil {
		log.Fatalf("Invalid rules: %v", err)
	}

	f, err := os.Open(*path)
	if err != nil {
		log.Fatalf("Open: %v", err)
	}
	defer f.Close()

	grid, err := ingest.Read(f, *path)
	if err != nil {
		log.Fatalf("Read: %v", err)
	}

	result, err := timesheet.Analyze(grid, cfg)
	if err != nil {
		log.Fatalf("Analyze: %v", err)
	}

	fmt.Printf("Format: %s", result.Format.DisplayName())
	if result.MonthPeriod != "" {
		fmt.Printf("  Period: %s", result.MonthPeriod)
	}
	fmt.Println()

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCODE\tPRESENT\tFULL\tHALF\tLATE\tABSENT\tHOURS\tSTATUS")
	for _, e := range result.Employees {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%d\t%s\t%s\n",
			e.Name, e.MemberCode, e.PresentDays, e.FullDays, e.HalfDays,
			e.LateMarks, e.AbsentDays, e.TotalHours.StringFixed(1), e.Status)
	}
	tw.Flush()

	summary := timesheet.Summarize(result.Employees, cfg)
	fmt.Printf("\n%d employees, %d full days, %d half days, %d late marks, %d absences, %s%% attendance\n",
		summary.Employees, summary.FullDays, summary.HalfDays,
		summary.LateMarks, summary.AbsentDays, summary.AttendancePct.String())
	if summary.HalfDayDeductions > 0 {
		fmt.Printf("%d half-day cut(s) from late marks\n", summary.HalfDayDeductions)
	}

	if *outPath != "" {
		csvText, err := export.Summary(result.Employees)
		if err != nil {
			log.Fatalf("Export: %v", err)
		}
		if err := os.WriteFile(*outPath, []byte(csvText), 0o644); err != nil {
			log.Fatalf("Write: %v", err)
		}
		fmt.Printf("Summary written to %s\n", *outPath)
	}
}
