package smtp

import (
	"context"
	"fmt"
	"html/template"

	"github.com/wneessen/go-mail"

	"github.com/matex-shoes/storefront/internal/order/domain"
)

var bodyTmpl = template.Must(template.New("order").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1>New Order Received!</h1>

  <h2>Customer Details</h2>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Phone:</strong> {{.Phone}}</p>
  <p><strong>Address:</strong> {{.Address}}</p>
  <p><strong>City:</strong> {{.City}}</p>
  <p><strong>Additional Notes:</strong> {{if .Notes}}{{.Notes}}{{else}}None{{end}}</p>

  <h2>Ordered Items</h2>
  <table style="width: 100%; border-collapse: collapse;">
    <thead>
      <tr>
        <th style="text-align: left;">Shoe ID</th>
        <th style="text-align: left;">Name</th>
        <th style="text-align: right;">Price</th>
      </tr>
    </thead>
    <tbody>
      {{range .Items}}<tr>
        <td>{{.ID}}</td>
        <td>{{.Name}}</td>
        <td style="text-align: right;">Rs. {{.Price}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>

  <h2>Order Summary</h2>
  <p><strong>Order ID:</strong> {{.ID}}</p>
  <p><strong>Total Amount:</strong> Rs. {{.Total}}</p>
  <p><strong>Payment Method:</strong> {{.PaymentMethod}}</p>
</div>`))

// Notifier emails each placed order to a fixed operator address.
type Notifier struct {
	client    *mail.Client
	from      string
	recipient string
}

func NewNotifier(host string, port int, user, pass, recipient string) (*Notifier, error) {
	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(user),
		mail.WithPassword(pass),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &Notifier{client: client, from: user, recipient: recipient}, nil
}

func (n *Notifier) Notify(ctx context.Context, o domain.Order) error {
	msg := mail.NewMsg()
	if err := msg.From(n.from); err != nil {
		return err
	}
	if err := msg.To(n.recipient); err != nil {
		return err
	}
	msg.Subject("New Order Received - MATex Shoes")
	if err := msg.SetBodyHTMLTemplate(bodyTmpl, o); err != nil {
		return fmt.Errorf("render order mail: %w", err)
	}

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send order mail: %w", err)
	}
	return nil
}
