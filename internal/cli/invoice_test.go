package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const invoiceJournal = `2024-01-05
start 09:00
end 19:00
2024-03-03
start 10:00
end 12:00
`

func TestInvoiceWritesOneFilePerMonthWithHours(t *testing.T) {
	ctx := context.Background()
	path := writeJournal(t, invoiceJournal)
	outDir := t.TempDir()

	out := executeCommand(t, newInvoiceCommand(ctx),
		path,
		"--year", "2024",
		"--rate", "50",
		"--retainer", "100",
		"--out", outDir,
	)

	assertContains(t, out, "Wrote 2024-01_January")
	assertContains(t, out, "February 2024: no hours recorded, skipped")
	assertContains(t, out, "Wrote 2024-03_March")
	// January: 10h at $50 minus the retainer = $400. March: 2h grosses
	// $100, fully absorbed by the retainer.
	assertContains(t, out, "Total sum: $400.00")

	january, err := os.ReadFile(filepath.Join(outDir, "2024-01_January"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(january), "Total due: $400.00") {
		t.Fatalf("January file missing total due:\n%s", january)
	}

	march, err := os.ReadFile(filepath.Join(outDir, "2024-03_March"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(march), "Total due: $0.00") {
		t.Fatalf("March file missing floored total due:\n%s", march)
	}

	if _, err := os.Stat(filepath.Join(outDir, "2024-02_February")); !os.IsNotExist(err) {
		t.Fatalf("February file should not exist, stat err = %v", err)
	}
}

func TestInvoicePrependsTemplate(t *testing.T) {
	ctx := context.Background()
	path := writeJournal(t, invoiceJournal)
	outDir := t.TempDir()

	templatePath := filepath.Join(t.TempDir(), "template")
	if err := os.WriteFile(templatePath, []byte("ACME Consulting\nInvoice\n\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	executeCommand(t, newInvoiceCommand(ctx),
		path,
		"--year", "2024",
		"--rate", "50",
		"--out", outDir,
		"--template", templatePath,
	)

	january, err := os.ReadFile(filepath.Join(outDir, "2024-01_January"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.HasPrefix(string(january), "ACME Consulting\n") {
		t.Fatalf("January file does not start with the template:\n%s", january)
	}
}

func TestInvoiceMissingTemplateFails(t *testing.T) {
	ctx := context.Background()
	path := writeJournal(t, invoiceJournal)

	_, err := executeCommandErr(t, newInvoiceCommand(ctx),
		path,
		"--year", "2024",
		"--template", filepath.Join(t.TempDir(), "missing"),
		"--out", t.TempDir(),
	)
	if err == nil {
		t.Fatalf("missing template accepted")
	}
}
