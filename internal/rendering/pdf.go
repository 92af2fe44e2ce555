package rendering

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/kataras/golog"
	"github.com/ledongthuc/pdf"
)

// DefaultRenderTimeout bounds one browser print
const DefaultRenderTimeout = 60 * time.Second

// A4 paper size in inches
const (
	A4Width  = 8.27
	A4Height = 11.69
)

// PrintFunc prints the page at pageURL to PDF bytes
type PrintFunc func(ctx context.Context, pageURL string) ([]byte, error)

// PDFRenderer prints HTML documents to PDF with headless Chrome.
type PDFRenderer struct {
	// BaseDir resolves relative stylesheet and image paths. Defaults to the working directory.
	BaseDir string
	// ChromePath overrides the browser binary; CHROME_PATH is used when empty.
	ChromePath string
	Timeout    time.Duration

	print  PrintFunc
	logger *golog.Logger
}

// NewPDFRenderer creates a renderer that resolves local paths against the working directory.
func NewPDFRenderer(logger *golog.Logger) *PDFRenderer {
	r := &PDFRenderer{
		BaseDir: ".",
		Timeout: DefaultRenderTimeout,
		logger:  logging.OrDiscard(logger),
	}
	r.print = r.chromePrint
	return r
}

// WithPrintFunc replaces the browser print step
func (r *PDFRenderer) WithPrintFunc(fn PrintFunc) *PDFRenderer {
	r.print = fn
	return r
}

// Render writes document as a PDF to outPath, creating the directory as needed.
// Nothing is left at outPath on failure.
func (r *PDFRenderer) Render(ctx context.Context, document, outPath string) error {
	resolved, err := r.resolveResources(document)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return &RenderError{Message: "failed to create output directory", Path: filepath.Dir(outPath), Cause: err}
	}

	htmlPath := filepath.Join(os.TempDir(), "resume-"+uuid.NewString()+".html")
	if err := os.WriteFile(htmlPath, []byte(resolved), 0644); err != nil {
		return &RenderError{Message: "failed to write HTML", Path: htmlPath, Cause: err}
	}
	defer func() { _ = os.Remove(htmlPath) }()

	r.logger.Debugf("printing %s", htmlPath)
	pdfBytes, err := r.print(ctx, "file://"+filepath.ToSlash(htmlPath))
	if err != nil {
		return &RenderError{Message: "browser failed to print document", Cause: err}
	}

	if err := os.WriteFile(outPath, pdfBytes, 0644); err != nil {
		return &RenderError{Message: "failed to write PDF", Path: outPath, Cause: err}
	}

	pages, err := InspectPDF(outPath)
	if err != nil {
		_ = os.Remove(outPath)
		return &RenderError{Message: "generated PDF is unreadable", Path: outPath, Cause: err}
	}

	r.logger.Debugf("wrote %s (%d pages, %d bytes)", outPath, pages, len(pdfBytes))
	return nil
}

// resolveResources checks that every local stylesheet and image exists and
// rewrites their references to absolute paths.
func (r *PDFRenderer) resolveResources(document string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return "", &RenderError{Message: "failed to parse HTML", Cause: err}
	}

	baseDir, err := filepath.Abs(r.BaseDir)
	if err != nil {
		return "", &RenderError{Message: "failed to resolve base directory", Path: r.BaseDir, Cause: err}
	}

	var resolveErr error
	resolve := func(attr string) func(int, *goquery.Selection) bool {
		return func(_ int, s *goquery.Selection) bool {
			ref, ok := s.Attr(attr)
			if !ok || ref == "" || isRemote(ref) {
				return true
			}
			path, err := url.PathUnescape(ref)
			if err != nil {
				resolveErr = &RenderError{Message: "unresolvable resource", Path: ref, Cause: err}
				return false
			}
			if !filepath.IsAbs(path) {
				path = filepath.Join(baseDir, path)
			}
			if _, err := os.Stat(path); err != nil {
				resolveErr = &RenderError{Message: "unresolvable resource", Path: ref, Cause: err}
				return false
			}
			s.SetAttr(attr, filepath.ToSlash(path))
			return true
		}
	}

	doc.Find(`link[rel="stylesheet"]`).EachWithBreak(resolve("href"))
	if resolveErr != nil {
		return "", resolveErr
	}
	doc.Find("img").EachWithBreak(resolve("src"))
	if resolveErr != nil {
		return "", resolveErr
	}

	out, err := doc.Html()
	if err != nil {
		return "", &RenderError{Message: "failed to serialize HTML", Cause: err}
	}
	return out, nil
}

// isRemote reports whether ref carries a URL scheme other than a bare drive letter
func isRemote(ref string) bool {
	u, err := url.Parse(ref)
	return err == nil && len(u.Scheme) > 1
}

func (r *PDFRenderer) chromePrint(ctx context.Context, pageURL string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	chromePath := r.ChromePath
	if chromePath == "" {
		chromePath = os.Getenv("CHROME_PATH")
	}
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	if r.Timeout > 0 {
		var cancelTimeout context.CancelFunc
		browserCtx, cancelTimeout = context.WithTimeout(browserCtx, r.Timeout)
		defer cancelTimeout()
	}

	var buf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(A4Width).
				WithPaperHeight(A4Height).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// InspectPDF opens a PDF and returns its page count. A file with no pages is an error.
func InspectPDF(path string) (pages int, err error) {
	// the reader panics on some malformed cross-reference tables
	defer func() {
		if rec := recover(); rec != nil {
			pages, err = 0, fmt.Errorf("failed to read PDF: %v", rec)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer func() { _ = f.Close() }()

	pages = reader.NumPage()
	if pages < 1 {
		return 0, fmt.Errorf("PDF has no pages")
	}
	return pages, nil
}
