package contract

import "example.com/creator-rates/backend/internal/models"

// PaymentDetailsText возвращает текст реквизитов для выбранного способа оплаты.
// Незаполненные реквизиты подставляются плейсхолдерами в квадратных скобках.
func PaymentDetailsText(method models.PaymentMethod, details models.PaymentDetails) string {
	switch method {
	case models.PaymentMethodBank:
		text := "Bank Name: " + fallback(details.BankName, "[BANK_NAME]") + "\n" +
			"Account Name: " + fallback(details.AccountName, "[ACCOUNT_NAME]") + "\n" +
			"Account Number: " + fallback(details.AccountNumber, "[ACCOUNT_NUMBER]") + "\n" +
			"Routing Number: " + fallback(details.RoutingNumber, "[ROUTING_NUMBER]")
		if details.SwiftBic != "" {
			text += "\nSWIFT/BIC: " + details.SwiftBic
		}
		return text
	case models.PaymentMethodPayPal:
		return "PayPal Email: " + fallback(details.PaypalEmail, "[PAYPAL_EMAIL]")
	case models.PaymentMethodVenmo:
		return "Venmo Handle: " + fallback(details.VenmoHandle, "[VENMO_HANDLE]")
	case models.PaymentMethodZelle:
		return "Zelle: " + fallback(details.ZelleInfo, "[ZELLE_INFO]")
	case models.PaymentMethodCrypto:
		return "Wallet Address: " + fallback(details.CryptoWallet, "[WALLET_ADDRESS]") + "\n" +
			"Network: " + fallback(details.CryptoNetwork, "[NETWORK]")
	case models.PaymentMethodOther:
		return fallback(details.OtherDetails, "[PAYMENT_DETAILS]")
	default:
		return ""
	}
}

func fallback(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
