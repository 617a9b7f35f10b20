package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"ats-score-backend/internal/ats"
)

func main() {
	resumePath := flag.String("resume", "", "path to a resume JSON file (required)")
	jdPath := flag.String("jd", "", "optional path to a job description text file")
	flag.Parse()

	if *resumePath == "" {
		fmt.Fprintln(os.Stderr, "usage: scoredemo -resume resume.json [-jd job.txt]")
		os.Exit(2)
	}

	doc, err := loadResume(*resumePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load resume: %v\n", err)
		os.Exit(1)
	}

	jobDescription := ""
	if *jdPath != "" {
		raw, err := os.ReadFile(*jdPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load job description: %v\n", err)
			os.Exit(1)
		}
		jobDescription = string(raw)
	}

	engine := ats.New(ats.Options{})
	report := engine.Analyze(doc, jobDescription)

	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal report: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(payload))

	fmt.Fprintf(os.Stderr, "score=%d category=%s format=%d tips=%d\n",
		report.Score, report.Category, report.Format.Score, len(report.Tips))
	if report.Keywords != nil {
		fmt.Fprintf(os.Stderr, "keyword match=%d%% (%d of %d)\n",
			report.Keywords.MatchPercentage, report.Keywords.TotalFound, report.Keywords.TotalInJob)
	}
}

func loadResume(path string) (ats.ResumeDocument, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc ats.ResumeDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse resume JSON: %w", err)
	}
	return doc, nil
}
