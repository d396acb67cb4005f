package invoice

import (
	"context"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 portrait, in inches, as Chrome's printToPDF expects.
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
)

// Converter turns an HTML document into PDF bytes. The conversion engine is
// a black box: it either returns the binary or an opaque error.
type Converter interface {
	Convert(ctx context.Context, html string) ([]byte, error)
}

// ChromeConverter renders HTML through a headless Chrome tab. A fresh
// browser context is spun up per conversion; a hung conversion therefore
// blocks only its own request.
type ChromeConverter struct{}

func NewChromeConverter() *ChromeConverter {
	return &ChromeConverter{}
}

func (cc *ChromeConverter) Convert(ctx context.Context, html string) ([]byte, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer cancelAlloc()

	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()

	var pdf []byte
	err := chromedp.Run(tabCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPaperWidth(a4WidthInches).
				WithPaperHeight(a4HeightInches).
				WithPrintBackground(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}
