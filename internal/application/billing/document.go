package billing

import (
	"bytes"
	"html/template"

	"github.com/jhoicas/fumimanager/internal/domain/entity"
)

const dateLayout = "2006-01-02"

var documentTmpl = template.Must(template.New("invoice").Parse(`<html>
  <head>
    <title>Invoice #{{.ID}}</title>
    <style>
      body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; padding: 40px; color: #333; }
      .header { display: flex; justify-content: space-between; margin-bottom: 40px; border-bottom: 2px solid #eee; padding-bottom: 20px; }
      .logo { font-size: 24px; font-weight: bold; color: #2563EB; }
      .invoice-details { text-align: right; }
      .status-badge { display: inline-block; padding: 5px 10px; border-radius: 4px; font-weight: bold; font-size: 12px; text-transform: uppercase; }
      .status-Paid { background: #d1fae5; color: #047857; border: 1px solid #a7f3d0; }
      .status-Pending { background: #fef3c7; color: #b45309; border: 1px solid #fde68a; }
      .status-Overdue { background: #fee2e2; color: #b91c1c; border: 1px solid #fca5a5; }
      .bill-to { margin-bottom: 30px; }
      table { width: 100%; border-collapse: collapse; margin-bottom: 30px; }
      th { background: #f8fafc; text-align: left; padding: 12px; border-bottom: 2px solid #e2e8f0; font-size: 12px; text-transform: uppercase; color: #64748b; }
      td { padding: 12px; border-bottom: 1px solid #e2e8f0; }
      .totals { width: 300px; margin-left: auto; }
      .row { display: flex; justify-content: space-between; padding: 8px 0; }
      .grand-total { font-size: 18px; font-weight: bold; border-top: 2px solid #333; padding-top: 10px; margin-top: 10px; }
      .footer { margin-top: 50px; padding-top: 20px; border-top: 1px solid #eee; font-size: 12px; color: #94a3b8; text-align: center; }
    </style>
  </head>
  <body>
    <div class="header">
      <div>
        <div class="logo">{{.Company.Name}}</div>
        <div style="font-size: 14px; color: #666; margin-top: 5px;">
          {{range .Company.AddressLines}}{{.}}<br>{{end}}GSTIN: {{.Company.GSTIN}}
        </div>
      </div>
      <div class="invoice-details">
        <h1 style="margin: 0; font-size: 32px; color: #1e293b;">INVOICE</h1>
        <p style="margin: 5px 0;"><strong>#{{.ID}}</strong></p>
        <p style="margin: 5px 0;">Date: {{.Date}}</p>
        <div class="status-badge status-{{.Status}}">{{.Status}}</div>
      </div>
    </div>

    <div class="bill-to">
      <h3 style="font-size: 14px; text-transform: uppercase; color: #64748b; margin-bottom: 10px;">Bill To:</h3>
      <div style="font-size: 16px; font-weight: bold;">{{.Client}}</div>
      <div style="color: #666;">{{.Address}}</div>
    </div>

    <table>
      <thead>
        <tr>
          <th style="width: 50%">Description</th>
          <th style="text-align: center">Qty</th>
          <th style="text-align: right">Unit Price</th>
          <th style="text-align: right">Total</th>
        </tr>
      </thead>
      <tbody>
        <tr>
          <td><strong>{{.Company.ServiceLabel}}</strong><br><span style="font-size: 12px; color: #666;">Standard container treatment service</span></td>
          <td style="text-align: center">{{.Items}}</td>
          <td style="text-align: right">{{.Currency}}{{.UnitPrice}}</td>
          <td style="text-align: right"><strong>{{.Currency}}{{.Amount}}</strong></td>
        </tr>
      </tbody>
    </table>

    <div class="totals">
      <div class="row">
        <span>Subtotal:</span>
        <span>{{.Currency}}{{.Amount}}</span>
      </div>
      <div class="row">
        <span>{{.Company.TaxLabel}}:</span>
        <span>{{.Currency}}{{.Tax}}</span>
      </div>
      <div class="row grand-total">
        <span>Total Due:</span>
        <span>{{.Currency}}{{.Total}}</span>
      </div>
    </div>

    <div class="footer">
      <p>This is a computer-generated invoice and does not require a signature.</p>
      <p>Thank you for your business!</p>
    </div>

    <script>
      window.onload = function() { window.print(); }
    </script>
  </body>
</html>
`))

type documentView struct {
	Company   Company
	Currency  string
	ID        string
	Date      string
	Status    string
	Client    string
	Address   string
	Items     int
	UnitPrice string
	Amount    string
	Tax       string
	Total     string
}

// RenderDocument genera el documento imprimible de la factura. La salida depende solo
// de la factura y del emisor: dos llamadas con los mismos datos producen los mismos bytes.
func RenderDocument(inv entity.Invoice, company Company) (string, error) {
	address := inv.Address
	if address == "" {
		address = "Address on file"
	}
	view := documentView{
		Company:   company,
		Currency:  company.Currency,
		ID:        inv.ID,
		Date:      inv.Date.Format(dateLayout),
		Status:    inv.Status,
		Client:    inv.Client,
		Address:   address,
		Items:     inv.Items,
		UnitPrice: FormatFixed(inv.UnitPrice()),
		Amount:    FormatAmount(inv.Amount),
		Tax:       FormatAmount(inv.Tax),
		Total:     FormatAmount(inv.Total()),
	}
	var buf bytes.Buffer
	if err := documentTmpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}
