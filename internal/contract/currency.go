package contract

var currencySymbols = map[string]string{
	"USD":    "$",
	"EUR":    "€",
	"GBP":    "£",
	"CAD":    "CA$",
	"AUD":    "A$",
	"JPY":    "¥",
	"CNY":    "¥",
	"INR":    "₹",
	"BRL":    "R$",
	"MXN":    "MX$",
	"USDT":   "USDT",
	"USDC":   "USDC",
	"DAI":    "DAI",
	"BUSD":   "BUSD",
	"EURC":   "EURC",
	"USDGLO": "USDGLO",
}

// CurrencySymbol возвращает символ валюты; стейблкоины выводятся тикером,
// неизвестные коды выводятся как код с пробелом.
func CurrencySymbol(currency string) string {
	if symbol, ok := currencySymbols[currency]; ok {
		return symbol
	}
	return currency + " "
}
