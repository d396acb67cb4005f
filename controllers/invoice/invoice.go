package invoicecontroller

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dh139/cafef/cart"
	"github.com/dh139/cafef/invoice"
	"github.com/dh139/cafef/models"
)

// SaveInvoiceRequest is the checkout payload: the billed lines plus the
// total the client computed. Unknown or missing fields are rejected before
// any domain object is built.
type SaveInvoiceRequest struct {
	Invoice     []models.OrderLine `json:"invoice" binding:"required,min=1,dive"`
	TotalAmount float64            `json:"totalAmount" binding:"required"`
}

// SaveInvoice runs the checkout pipeline: validate, rebuild the order,
// render the PDF, persist it, respond with the file name. Each stage runs to
// completion before the next; failures convert to a JSON error body and
// never crash the process.
func SaveInvoice(renderer *invoice.Renderer, invoices *invoice.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SaveInvoiceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invoice and total amount are required"})
			return
		}

		// Rebuild the order through the cart so the total is recomputed from
		// the lines rather than trusted from the wire.
		crt := cart.New()
		for _, line := range req.Invoice {
			crt.AddItem(line.ItemID, line.Name, line.Price)
			crt.ChangeQuantity(line.ItemID, line.Quantity-1)
		}

		order, err := crt.Finalize()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invoice has no billable items"})
			return
		}

		if math.Abs(order.Total-req.TotalAmount) > 0.005 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Total amount does not match invoice items"})
			return
		}

		pdf, err := renderer.Render(c.Request.Context(), order)
		if err != nil {
			logrus.Errorf("❌ Error generating PDF: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating PDF"})
			return
		}

		inv, err := invoices.Persist(pdf, order)
		if err != nil {
			logrus.Errorf("❌ Error saving invoice: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing invoice"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":  "Invoice saved successfully!",
			"fileName": inv.FileName,
		})
	}
}

// ShareLink hands back a WhatsApp deep link for a stored invoice. The link
// is opened by the client; the server never contacts the messaging channel.
func ShareLink(invoices *invoice.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		phone := c.Query("phone")
		fileName := c.Query("fileName")
		if phone == "" || fileName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "phone and fileName are required"})
			return
		}

		url, err := invoices.URLFor(fileName)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file name"})
			return
		}

		link, err := invoice.BuildShareLink(phone, url)
		if err != nil {
			if errors.Is(err, invoice.ErrInvalidPhone) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phone number"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"link": link})
	}
}
