package mail

import (
	"fmt"
	"strings"

	"foodzy/internal/model"
)

// Message bodies are built as pure functions so tests can assert on
// content without a transport.

func otpBody(code string) string {
	return fmt.Sprintf("Your OTP for Foodzy is: %s. This OTP will expire in 10 minutes.", code)
}

func orderConfirmationText(order *model.OrderResponse) string {
	return fmt.Sprintf("Your order #%s has been confirmed. Total: $%.2f", order.ID, order.Total)
}

func orderConfirmationHTML(order *model.OrderResponse) string {
	var items strings.Builder
	for _, item := range order.Items {
		items.WriteString(fmt.Sprintf(`
      <tr>
        <td style="padding: 10px; border-bottom: 1px solid #ddd;">%s</td>
        <td style="padding: 10px; border-bottom: 1px solid #ddd; text-align: center;">%d</td>
        <td style="padding: 10px; border-bottom: 1px solid #ddd; text-align: right;">$%.2f</td>
        <td style="padding: 10px; border-bottom: 1px solid #ddd; text-align: right;">$%.2f</td>
      </tr>`, item.ProductName, item.Quantity, item.Price, item.Price*float64(item.Quantity)))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
    .container { max-width: 600px; margin: 0 auto; padding: 20px; }
    .header { background-color: #E03D30; color: white; padding: 20px; text-align: center; }
    .content { padding: 20px; background-color: #f9f9f9; }
    .order-details { background-color: white; padding: 20px; margin: 20px 0; border-radius: 5px; }
    table { width: 100%%; border-collapse: collapse; margin: 20px 0; }
    th { background-color: #f4f4f4; padding: 10px; text-align: left; }
    .total { font-size: 18px; font-weight: bold; margin-top: 20px; text-align: right; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">
      <h1>Foodzy - Order Confirmation</h1>
    </div>
    <div class="content">
      <p>Dear Customer,</p>
      <p>Thank you for your order! Your order has been confirmed and will be processed shortly.</p>

      <div class="order-details">
        <h2>Order #%s</h2>
        <table>
          <thead>
            <tr>
              <th>Item</th>
              <th>Quantity</th>
              <th>Unit Price</th>
              <th>Total</th>
            </tr>
          </thead>
          <tbody>%s
          </tbody>
        </table>
        <div class="total">
          <p>Subtotal: $%.2f</p>
          <p>Delivery Charges: $%.2f</p>
          <p>Total: $%.2f</p>
        </div>
      </div>

      <p>We will send you another email when your order ships.</p>
      <p>Thank you for shopping with Foodzy!</p>
    </div>
  </div>
</body>
</html>`, order.ID, items.String(), order.Subtotal, order.DeliveryCharges, order.Total)
}
