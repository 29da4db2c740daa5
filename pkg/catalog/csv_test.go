package catalog

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/smith3v/lcurve/pkg/db"
	"github.com/smith3v/lcurve/pkg/internal/testutil"
	"github.com/smith3v/lcurve/pkg/logger"
)

func TestDetectCSVDelimiter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected rune
	}{
		{"comma", "number,name,category\n1,Two Sum,Stack\n", ','},
		{"tab", "number\tname\tcategory\n1\tTwo Sum\tStack\n", '\t'},
		{"semicolon", "number;name;category\n1;Two Sum;Stack\n", ';'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectCSVDelimiter([]byte(tt.input))
			if got != tt.expected {
				t.Fatalf("expected %q delimiter, got %q", tt.expected, got)
			}
		})
	}
}

func TestParseProblemsCSV(t *testing.T) {
	data := strings.Join([]string{
		"\ufeffnumber,name,category",
		"1,Two Sum,Arrays & Hasing",
		"50,\"Pow(x, n)\",Math & Geometry",
		"0,Zero,Stack",
		"2,,Stack",
		"3,Unknown Topic,Sorting",
		"",
		"4,Missing Category",
		"206,Reverse Linked List,6",
	}, "\n")

	problems, skipped, err := ParseProblemsCSV([]byte(data))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(problems) != 3 {
		t.Fatalf("expected 3 problems, got %d: %+v", len(problems), problems)
	}
	if problems[1].Name != "Pow(x, n)" || problems[1].Category != CategoryMathGeometry {
		t.Fatalf("unexpected quoted row: %+v", problems[1])
	}
	if problems[2].Category != CategoryLinkedList {
		t.Fatalf("expected category index to resolve, got %+v", problems[2])
	}
	if skipped != 4 {
		t.Fatalf("expected 4 skipped rows, got %d", skipped)
	}
}

func TestImportProblems(t *testing.T) {
	logger.SetLogLevel(logger.ERROR)
	t.Cleanup(func() { logger.SetLogLevel(logger.INFO) })

	repo := testutil.SetupTestRepository(t)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if _, err := repo.InsertProblem(1, "Two Sum", string(CategoryArraysHashing), now); err != nil {
		t.Fatalf("failed to seed problem: %v", err)
	}

	inserted, duplicates, err := ImportProblems(repo, []NewProblem{
		{Number: 1, Name: "Two Sum", Category: CategoryArraysHashing},
		{Number: 20, Name: "Valid Parentheses", Category: CategoryStack},
		{Number: 20, Name: "Valid Parentheses", Category: CategoryStack},
		{Number: 704, Name: "Binary Search", Category: CategoryBinarySearch},
	}, now)
	if err != nil {
		t.Fatalf("unexpected import error: %v", err)
	}
	if inserted != 2 || duplicates != 2 {
		t.Fatalf("expected 2 inserts and 2 duplicates, got %d inserts and %d duplicates", inserted, duplicates)
	}

	problems, err := repo.GetAllProblems()
	if err != nil {
		t.Fatalf("failed to load problems: %v", err)
	}
	if len(problems) != 3 {
		t.Fatalf("expected 3 problems, got %d", len(problems))
	}
}

func TestBuildExportCSV(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	problems := []db.Problem{
		{Number: 1, Name: "Two Sum", Category: "Arrays & Hasing", CreatedAt: created, LastPracticedAt: created},
		{Number: 50, Name: "Pow(x, n)", Category: "Math & Geometry", CreatedAt: created, LastPracticedAt: created.Add(48 * time.Hour), TimesPracticed: 2},
	}

	data, err := BuildExportCSV(problems)
	if err != nil {
		t.Fatalf("unexpected export error: %v", err)
	}
	if !bytes.HasPrefix(data, utf8BOM) {
		t.Fatalf("expected UTF-8 BOM prefix")
	}

	output := string(data[len(utf8BOM):])
	if !strings.HasPrefix(output, "number,name,category,created_at,last_practiced_at,times_practiced\r\n") {
		t.Fatalf("expected header row with CRLF, got %q", output)
	}
	if !strings.Contains(output, "50,\"Pow(x, n)\",Math & Geometry,2024-01-01T00:00:00Z,2024-01-03T00:00:00Z,2\r\n") {
		t.Fatalf("expected quoted export row, got %q", output)
	}

	reparsed, skipped, err := ParseProblemsCSV(data)
	if err != nil {
		t.Fatalf("failed to parse exported CSV: %v", err)
	}
	if len(reparsed) != 2 || skipped != 0 {
		t.Fatalf("expected exported CSV to import cleanly, got %d rows and %d skipped", len(reparsed), skipped)
	}
}

func TestExportImportKeepsPracticeHistory(t *testing.T) {
	logger.SetLogLevel(logger.ERROR)
	t.Cleanup(func() { logger.SetLogLevel(logger.INFO) })

	source := testutil.SetupTestRepository(t)
	created := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	problem, err := source.InsertProblem(50, "Pow(x, n)", string(CategoryMathGeometry), created)
	if err != nil {
		t.Fatalf("failed to seed problem: %v", err)
	}
	practiced := created.AddDate(0, 0, 5)
	for range 3 {
		if err := source.UpdateProblemAsCompleted(problem.ID, practiced); err != nil {
			t.Fatalf("failed to complete problem: %v", err)
		}
	}
	exported, err := source.GetAllProblems()
	if err != nil {
		t.Fatalf("failed to load problems: %v", err)
	}
	data, err := BuildExportCSV(exported)
	if err != nil {
		t.Fatalf("unexpected export error: %v", err)
	}

	parsed, skipped, err := ParseProblemsCSV(data)
	if err != nil || skipped != 0 || len(parsed) != 1 {
		t.Fatalf("unexpected parse result: %+v skipped=%d err=%v", parsed, skipped, err)
	}
	// A subtest gets its own in-memory database.
	t.Run("import", func(t *testing.T) {
		target := testutil.SetupTestRepository(t)
		if _, _, err := ImportProblems(target, parsed, created.AddDate(0, 1, 0)); err != nil {
			t.Fatalf("unexpected import error: %v", err)
		}

		restored, err := target.FindProblemByNumber(50)
		if err != nil {
			t.Fatalf("failed to reload problem: %v", err)
		}
		if restored.TimesPracticed != 3 {
			t.Fatalf("expected 3 practices, got %d", restored.TimesPracticed)
		}
		if !restored.CreatedAt.Equal(created) || !restored.LastPracticedAt.Equal(practiced) {
			t.Fatalf("expected created %v and last practiced %v, got %+v", created, practiced, restored)
		}
	})
}

func TestParseProblemsCSVHistoryColumns(t *testing.T) {
	data := strings.Join([]string{
		"number,name,category,created_at,last_practiced_at,times_practiced",
		"1,Two Sum,1,2024-01-01T00:00:00Z,2024-01-04T00:00:00Z,2",
		"20,Valid Parentheses,Stack,,,",
		"21,Bad Time,Stack,yesterday,2024-01-04T00:00:00Z,2",
		"22,Backwards,Stack,2024-01-04T00:00:00Z,2024-01-01T00:00:00Z,1",
		"23,Negative,Stack,2024-01-01T00:00:00Z,2024-01-04T00:00:00Z,-1",
	}, "\n")

	problems, skipped, err := ParseProblemsCSV([]byte(data))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(problems) != 2 || skipped != 3 {
		t.Fatalf("expected 2 problems and 3 skipped, got %d and %d", len(problems), skipped)
	}
	if h := problems[0].History; h == nil || h.TimesPracticed != 2 || h.LastPracticedAt.Day() != 4 {
		t.Fatalf("unexpected history: %+v", problems[0].History)
	}
	if problems[1].History != nil {
		t.Fatalf("expected blank history columns to mean no history, got %+v", problems[1].History)
	}
}

func TestExportFilename(t *testing.T) {
	got := ExportFilename(time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC))
	if got != "lcurve-20240309.csv" {
		t.Fatalf("unexpected filename %q", got)
	}
}
