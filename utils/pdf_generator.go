package utils

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"time"

	"aerozone/models"
	"aerozone/templates"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/shopspring/decimal"
)

var rollupTemplate = template.Must(
	template.New("rollup_report.html").
		Funcs(template.FuncMap{"qty": formatQty}).
		ParseFS(templates.FS, "rollup_report.html"),
)

type rollupReport struct {
	GeneratedAt string
	Count       int
	Short       int
	Rows        []models.RollupRow
}

func formatQty(f float64) string {
	return decimal.NewFromFloat(f).Round(3).String()
}

// RenderRollupHTML renders the rollup rows as a standalone HTML page.
func RenderRollupHTML(rows []models.RollupRow, generatedAt time.Time) ([]byte, error) {
	data := rollupReport{
		GeneratedAt: generatedAt.UTC().Format(DateLayout + " 15:04 MST"),
		Count:       len(rows),
		Rows:        rows,
	}
	for _, r := range rows {
		if r.Difference > 0 {
			data.Short++
		}
	}

	var buf bytes.Buffer
	if err := rollupTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateRollupPDF prints the rollup report with headless Chrome.
func GenerateRollupPDF(ctx context.Context, rows []models.RollupRow, generatedAt time.Time) ([]byte, error) {
	html, err := RenderRollupHTML(rows, generatedAt)
	if err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp("", "rollup_*.html")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(html); err != nil {
		tmp.Close()
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}

	cctx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	var pdfBuf []byte
	err = chromedp.Run(cctx,
		chromedp.Navigate("file://"+tmp.Name()),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithLandscape(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.7).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuf, nil
}
