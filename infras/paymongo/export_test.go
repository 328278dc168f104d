package paymongo

import (
	"net/http"
	"time"

	"lodge/infras/otel"
)

func NewForTest(baseURL, secretKey, webhookSecret string, liveMode bool, tolerance time.Duration, now func() time.Time, otl otel.Otel) Gateway {
	return &client{
		baseURL:         baseURL,
		secretKey:       secretKey,
		webhookSecret:   webhookSecret,
		liveMode:        liveMode,
		tolerance:       tolerance,
		methodsAllowed:  []string{"card", "gcash"},
		defaultCurrency: "PHP",
		http:            &http.Client{Timeout: time.Second},
		otel:            otl,
		now:             now,
	}
}
