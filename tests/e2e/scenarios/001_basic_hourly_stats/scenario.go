package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
)

// ### Start - fixed configs (no change)
// Log data is deterministic; the expected counts below depend on it.
const (
	filesCount     = 4
	entriesPerFile = 2400
	year           = 2015
)

// ### End - fixed configs

type bucketCount struct {
	BucketID string `json:"bucketId"`
	Value    int    `json:"value"`
	Count    int    `json:"count"`
}

type bucketStats struct {
	ReportID string        `json:"reportId"`
	Kind     string        `json:"kind"`
	Buckets  []bucketCount `json:"buckets"`
}

type accessReport struct {
	ReportID          string `json:"reportId"`
	NumberOfAccesses  int    `json:"numberOfAccesses"`
	BusiestHour       int    `json:"busiestHour"`
	QuietestHour      int    `json:"quietestHour"`
	BusiestDoubleHour int    `json:"busiestDoubleHour"`
	BusiestMonth      int    `json:"busiestMonth"`
	QuietestMonth     int    `json:"quietestMonth"`
}

// main runs the e2e scenario: 001_basic_hourly_stats
//
// It writes filesCount access logs into the file storage input directory and
// queries a running server (started with input.pattern "logs/*.txt").
//
// What it tests:
//   - Multi-file input resolved through the input glob pattern
//   - GET /stats and GET /stats/{kind} against the same data from parallel clients
//   - POST /reports exports the report into the report directory
//
// Expected results:
//   - numberOfAccesses = filesCount * entriesPerFile
//   - hour h receives (h+1) shares, so busiestHour = 23, quietestHour = 0, busiestDoubleHour = 22
//   - only January to June are used: busiestMonth = 1, quietestMonth = 7
func main() {
	baseURL := "http://localhost:8080"
	fileStorageDir := ".tmp/file-storage"
	parallel := 4
	requests := 40

	projectRoot, err := findProjectRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	storagePath := filepath.Join(projectRoot, fileStorageDir)

	fmt.Println("Starting e2e scenario: 001_basic_hourly_stats")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("FILE_STORAGE_PATH: %s\n", storagePath)
	fmt.Printf("FILES: %d x %d entries\n", filesCount, entriesPerFile)
	fmt.Println()

	logDir := filepath.Join(storagePath, "logs")
	if err := os.RemoveAll(logDir); err != nil {
		fmt.Fprintf(os.Stderr, "WARNING: Failed to clean log directory: %v\n", err)
	}
	if err := writeLogfiles(logDir); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to write log files: %v\n", err)
		os.Exit(1)
	}

	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var failed int64

	for i := 0; i < requests; i++ {
		wg.Add(1)
		workerChan <- struct{}{}

		go func(i int) {
			defer wg.Done()
			defer func() { <-workerChan }()

			var err error
			if i%2 == 0 {
				err = checkStats(baseURL)
			} else {
				err = checkHourlyStats(baseURL)
			}
			if err != nil {
				atomic.AddInt64(&failed, 1)
				fmt.Fprintf(os.Stderr, "ERROR: request %d: %v\n", i, err)
			}
		}(i)
	}
	wg.Wait()

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "ERROR: %d of %d requests failed\n", failed, requests)
		os.Exit(1)
	}

	key, err := exportReport(baseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: export failed: %v\n", err)
		os.Exit(1)
	}
	if _, err := os.Stat(filepath.Join(storagePath, filepath.FromSlash(key))); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: exported report not found: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Requests: %d, exported report: %s\n", requests, key)
	fmt.Println("Scenario completed successfully")
}

func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod, run from the project root")
		}
		dir = parent
	}
}

// writeLogfiles distributes entries so that hour h gets weight h+1 and months cycle over January to June.
func writeLogfiles(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	hours := make([]int, 0, 300)
	for h := 0; h < 24; h++ {
		for w := 0; w <= h; w++ {
			hours = append(hours, h)
		}
	}

	for f := 0; f < filesCount; f++ {
		var sb strings.Builder
		for i := 0; i < entriesPerFile; i++ {
			n := f*entriesPerFile + i
			fmt.Fprintf(&sb, "%d %02d %02d %02d %02d\n", year, n%6+1, n%28+1, hours[n%len(hours)], n%60)
		}
		name := filepath.Join(dir, fmt.Sprintf("access-%02d.txt", f))
		if err := os.WriteFile(name, []byte(sb.String()), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func getJSON(url string, out any) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func checkStats(baseURL string) error {
	var report accessReport
	if err := getJSON(baseURL+"/stats", &report); err != nil {
		return err
	}

	expected := accessReport{
		ReportID:          report.ReportID,
		NumberOfAccesses:  filesCount * entriesPerFile,
		BusiestHour:       23,
		QuietestHour:      0,
		BusiestDoubleHour: 22,
		BusiestMonth:      1,
		QuietestMonth:     7,
	}
	if report != expected {
		return fmt.Errorf("unexpected report: got %+v, want %+v", report, expected)
	}
	return nil
}

func checkHourlyStats(baseURL string) error {
	var stats bucketStats
	if err := getJSON(baseURL+"/stats/hour", &stats); err != nil {
		return err
	}
	if len(stats.Buckets) != 24 {
		return fmt.Errorf("expected 24 hour buckets, got %d", len(stats.Buckets))
	}

	total := 0
	for _, b := range stats.Buckets {
		total += b.Count
	}
	if total != filesCount*entriesPerFile {
		return fmt.Errorf("hour buckets sum to %d", total)
	}
	return nil
}

func exportReport(baseURL string) (string, error) {
	resp, err := http.Post(baseURL+"/reports", "application/json", nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("status %d: %s", resp.StatusCode, body)
	}

	var exported struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&exported); err != nil {
		return "", err
	}
	return exported.Key, nil
}
