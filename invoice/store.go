package invoice

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dh139/cafef/models"
	"github.com/google/uuid"
)

// Store persists rendered invoice PDFs under the invoices directory and
// hands out their public download URLs. Files are never overwritten: every
// persisted invoice gets a name no other call can produce.
type Store struct {
	Dir     string
	BaseURL string
}

func NewStore(dir, baseURL string) *Store {
	return &Store{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/")}
}

// Persist writes the PDF under a fresh time-derived name and returns the
// invoice record. The uuid suffix keeps names unique even when two invoices
// land within the same millisecond. Write failures surface as ErrStorage and
// are not retried.
func (s *Store) Persist(pdf []byte, order models.Order) (models.Invoice, error) {
	now := time.Now()
	fileName := fmt.Sprintf("invoice-%d-%s.pdf", now.UnixMilli(), uuid.NewString()[:8])

	if err := os.WriteFile(filepath.Join(s.Dir, fileName), pdf, 0644); err != nil {
		return models.Invoice{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return models.Invoice{
		FileName:    fileName,
		Items:       order.Lines,
		TotalAmount: order.Total,
		CreatedAt:   now,
	}, nil
}

// URLFor builds the public download URL for a stored invoice. Names carrying
// path separators or parent-directory hops are rejected so nothing outside
// the invoices directory can ever be addressed.
func (s *Store) URLFor(fileName string) (string, error) {
	if fileName == "" ||
		strings.ContainsAny(fileName, `/\`) ||
		strings.Contains(fileName, "..") {
		return "", ErrBadFileName
	}
	return fmt.Sprintf("%s/bills/%s", s.BaseURL, fileName), nil
}
