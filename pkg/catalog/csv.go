package catalog

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/smith3v/lcurve/pkg/db"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

const maxDelimiterSampleRecords = 20

// ParseProblemsCSV reads number,name,category rows, optionally followed by
// the created_at,last_practiced_at,times_practiced columns of an export.
// Rows that fail validation are skipped and counted.
func ParseProblemsCSV(data []byte) ([]NewProblem, int, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	delimiter := detectCSVDelimiter(data)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1

	var problems []NewProblem
	skipped := 0
	checkedHeader := false

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, skipped, err
		}
		if isEmptyCSVRecord(record) {
			skipped++
			continue
		}
		if !checkedHeader {
			checkedHeader = true
			if isHeaderRecord(record) {
				continue
			}
		}
		if len(record) < 3 {
			skipped++
			continue
		}
		problem, err := ParseNewProblem(record[0], record[1], record[2])
		if err != nil {
			skipped++
			continue
		}
		if len(record) >= 6 {
			problem.History, err = ParseHistory(record[3], record[4], record[5])
			if err != nil {
				skipped++
				continue
			}
		}
		problems = append(problems, problem)
	}

	return problems, skipped, nil
}

func detectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', '\t', ';'}
	bestDelimiter := candidates[0]
	bestScore := -1

	for _, delimiter := range candidates {
		score, err := scoreDelimiter(data, delimiter, maxDelimiterSampleRecords)
		if err != nil {
			continue
		}
		if score > bestScore {
			bestScore = score
			bestDelimiter = delimiter
		}
	}

	if bestScore <= 0 {
		return ','
	}
	return bestDelimiter
}

// scoreDelimiter counts sampled records that split into at least three fields.
func scoreDelimiter(data []byte, delimiter rune, maxRecords int) (int, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	score := 0
	for seen := 0; seen < maxRecords; {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, err
		}
		if isEmptyCSVRecord(record) {
			continue
		}
		seen++
		if len(record) >= 3 {
			score++
		}
	}
	return score, nil
}

func isEmptyCSVRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

func isHeaderRecord(record []string) bool {
	if len(record) < 2 {
		return false
	}
	left := strings.ToLower(strings.TrimSpace(record[0]))
	right := strings.ToLower(strings.TrimSpace(record[1]))
	return (left == "number" || left == "lc_number" || left == "#") &&
		(right == "name" || right == "problem_name" || right == "title")
}

// ImportProblems inserts problems in one transaction, skipping entries whose
// number or name is already taken. Entries carrying a history keep it.
func ImportProblems(repo *db.Repository, problems []NewProblem, now time.Time) (int, int, error) {
	inserted := 0
	duplicates := 0
	if len(problems) == 0 {
		return inserted, duplicates, nil
	}

	err := repo.Transaction(func(tx *db.Repository) error {
		for _, problem := range problems {
			stored, err := AddProblem(tx, problem, now)
			if errors.Is(err, ErrDuplicateProblem) {
				duplicates++
				continue
			}
			if err != nil {
				return err
			}
			if h := problem.History; h != nil {
				if err := tx.SetPracticeHistory(stored.ID, h.CreatedAt, h.LastPracticedAt, h.TimesPracticed); err != nil {
					return err
				}
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return inserted, duplicates, nil
}

func BuildExportCSV(problems []db.Problem) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := buf.Write(utf8BOM); err != nil {
		return nil, err
	}

	writer := csv.NewWriter(&buf)
	writer.UseCRLF = true

	header := []string{"number", "name", "category", "created_at", "last_practiced_at", "times_practiced"}
	if err := writer.Write(header); err != nil {
		return nil, err
	}
	for _, problem := range problems {
		if err := writer.Write([]string{
			strconv.FormatUint(uint64(problem.Number), 10),
			problem.Name,
			problem.Category,
			problem.CreatedAt.UTC().Format(time.RFC3339),
			problem.LastPracticedAt.UTC().Format(time.RFC3339),
			strconv.Itoa(problem.TimesPracticed),
		}); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func ExportFilename(now time.Time) string {
	return fmt.Sprintf("lcurve-%s.csv", now.Format("20060102"))
}
